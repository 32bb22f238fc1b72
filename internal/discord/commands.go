package discord

import (
	"time"

	"golang.org/x/time/rate"

	"bruhbot/internal/command"
	"bruhbot/internal/command/general"
	"bruhbot/internal/command/voice"
)

// registerCommands builds the full command set with its middleware.
func (b *Bot) registerCommands() {
	deps := &voice.Deps{
		Engine:  b.engine,
		Voice:   b,
		Sounds:  b.sounds,
		YouTube: b.yt,
	}

	logged := command.WithCommandLogger()
	guildOnly := command.WithGuildOnly()
	limited := command.WithRateLimit(rate.Every(2*time.Second), 3)

	command.Register(&voice.PlayCommand{Deps: deps}, logged, guildOnly, limited)
	command.Register(&voice.SoundboardCommand{Deps: deps}, logged, guildOnly, limited)
	command.Register(&voice.SkipCommand{Deps: deps}, logged, guildOnly)
	command.Register(&voice.StopCommand{Deps: deps}, logged, guildOnly)
	command.Register(&voice.LoopCommand{Deps: deps}, logged, guildOnly)
	command.Register(&voice.QueueCommand{Deps: deps}, logged, guildOnly)

	command.Register(&general.BruhCommand{}, logged, limited)
	command.Register(&general.EmojiCommand{}, logged, guildOnly)
	command.Register(&general.MockCommand{}, logged, limited)
	command.Register(&general.StarCommand{}, logged, guildOnly)
	command.Register(&general.StarsCommand{}, logged, guildOnly)
	command.Register(&general.HelpCommand{}, logged)

	command.Register(&general.KillCommand{KillAll: b.engine.KillAll, Shutdown: b.requestShutdown}, logged)
	command.Register(&general.ReloadCommand{Reload: b.Reload}, logged)
}

// Reload rebuilds the command set without touching live playback. Queue
// state is exported around the swap so nothing in a voice channel is
// interrupted.
func (b *Bot) Reload() error {
	snap := b.engine.ExportState()
	command.Reset()
	b.registerCommands()
	b.engine.ImportState(snap)
	return nil
}

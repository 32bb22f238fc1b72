package voice

import (
	"fmt"
	"strings"

	"bruhbot/internal/command"
	"bruhbot/internal/playback"
)

// SoundboardCommand queues a local clip. With no argument it picks a
// random one, with "list" it prints the available names, otherwise it
// fuzzy-matches the argument against clip names.
type SoundboardCommand struct {
	Deps *Deps
}

func (c *SoundboardCommand) Name() string      { return "soundboard" }
func (c *SoundboardCommand) Aliases() []string { return []string{"sb", "clip"} }
func (c *SoundboardCommand) Description() string {
	return "Play a soundboard clip (no argument for a random one, `list` to browse)"
}
func (c *SoundboardCommand) Category() string { return "🔊 Voice" }
func (c *SoundboardCommand) OwnerOnly() bool  { return false }

func (c *SoundboardCommand) Run(ctx *command.Context) error {
	search := strings.TrimSpace(strings.Join(ctx.Args, " "))

	if search == "list" || search == "ls" {
		names, err := c.Deps.Sounds.Names()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, "The soundboard is empty.")
			return err
		}
		msg := fmt.Sprintf("**Soundboard clips**\n`%s`", strings.Join(names, "`, `"))
		_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, msg)
		return err
	}

	req, err := c.Deps.requester(ctx)
	if err != nil {
		return err
	}

	var clip playback.Clip
	if search == "" || search == "random" || search == "roulette" {
		clip, err = c.Deps.Sounds.Random()
	} else {
		clip, err = c.Deps.Sounds.Find(search)
	}
	if err != nil {
		return err
	}

	return c.Deps.Engine.RequestPlay(ctx.GuildID(), clip, req)
}

package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"bruhbot/internal/audio"
	"bruhbot/internal/command"
	"bruhbot/internal/config"
	"bruhbot/internal/playback"
	"bruhbot/internal/soundboard"
	"bruhbot/internal/storage"
	"bruhbot/internal/youtube"
)

const (
	reactionOK   = "☑️"
	reactionFail = "❌"
)

// Bot is a Discord bot
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	storage  *storage.Storage
	engine   *playback.Engine
	pipeline *audio.Pipeline
	sounds   *soundboard.Library
	yt       *youtube.Client

	mu sync.RWMutex
	// notifyChannels remembers, per guild, the text channel the last
	// voice command came from so playback events have somewhere to go.
	notifyChannels map[string]string

	shutdown context.CancelFunc
}

// NewBot wires up the playback engine, audio pipeline and clip sources.
func NewBot(cfg *config.Config, storage *storage.Storage) (*Bot, error) {
	yt, err := youtube.New(cfg.YouTubeProxy)
	if err != nil {
		return nil, fmt.Errorf("youtube client: %w", err)
	}

	b := &Bot{
		cfg:            cfg,
		storage:        storage,
		sounds:         soundboard.New(cfg.SoundboardDir),
		yt:             yt,
		notifyChannels: make(map[string]string),
	}
	b.pipeline = audio.NewPipeline(yt)
	b.engine = playback.New(&voiceConnector{bot: b})
	return b, nil
}

// Run starts the Discord bot and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.run(ctx, b.cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

// Engine exposes the playback engine for status reporting.
func (b *Bot) Engine() *playback.Engine {
	return b.engine
}

// run starts the Discord bot
func (b *Bot) run(ctx context.Context, token string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	b.shutdown = cancel

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	b.registerCommands()

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go b.pumpPlaybackEvents()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	b.engine.KillAll()
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsAll
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}
	log.Printf("[INFO] ✅ Discord bot %v is running in %d guilds.", botInfo.Username, len(r.Guilds))
}

// onMessageCreate routes prefix commands
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(strings.ToLower(m.Content), b.cfg.CommandPrefix) {
		return
	}

	fields := strings.Fields(m.Content[len(b.cfg.CommandPrefix):])
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])

	cmd, ok := command.Get(name)
	if !ok {
		b.react(s, m, reactionFail)
		msg := fmt.Sprintf("No such command. Try `%shelp`.", b.cfg.CommandPrefix)
		if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
			log.Println("[WARN] Failed to send unknown-command reply:", err)
		}
		return
	}

	if cmd.OwnerOnly() && m.Author.ID != b.cfg.OwnerID {
		b.react(s, m, reactionFail)
		return
	}

	b.rememberChannel(m.GuildID, m.ChannelID)

	ctx := &command.Context{
		Session: s,
		Message: m,
		Args:    fields[1:],
		Storage: b.storage,
		Prefix:  b.cfg.CommandPrefix,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Command %s failed: %v", name, err)
		b.react(s, m, reactionFail)
		b.sendError(s, m.ChannelID, err)
		return
	}
	b.react(s, m, reactionOK)
}

func (b *Bot) react(s *discordgo.Session, m *discordgo.MessageCreate, emoji string) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
		log.Println("[WARN] Failed to add reaction:", err)
	}
}

func (b *Bot) rememberChannel(guildID, channelID string) {
	if guildID == "" {
		return
	}
	b.mu.Lock()
	b.notifyChannels[guildID] = channelID
	b.mu.Unlock()
}

func (b *Bot) notifyChannel(guildID string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ch, ok := b.notifyChannels[guildID]
	return ch, ok
}

// requestShutdown ends Run, which takes the whole process down with it.
func (b *Bot) requestShutdown() {
	if b.shutdown != nil {
		b.shutdown()
	}
}

// UserVoiceChannel reports which voice channel a member occupies.
func (b *Bot) UserVoiceChannel(guildID, userID string) (string, bool) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return "", false
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID, true
		}
	}
	return "", false
}

package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"bruhbot/internal/audio"
	"bruhbot/internal/playback"
)

// voiceConnector joins guild voice channels on behalf of the playback
// engine.
type voiceConnector struct {
	bot *Bot
}

func (c *voiceConnector) Join(guildID, channelID string) (playback.Connection, error) {
	vc, err := c.bot.dg.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("joining voice channel %s: %w", channelID, err)
	}
	return &voiceConnection{vc: vc, pipeline: c.bot.pipeline}, nil
}

// voiceConnection streams clips into one Discord voice connection.
type voiceConnection struct {
	vc       *discordgo.VoiceConnection
	pipeline *audio.Pipeline
}

func (c *voiceConnection) ChannelID() string {
	return c.vc.ChannelID
}

func (c *voiceConnection) Play(clip playback.Clip, stop <-chan struct{}) error {
	stream, cleanup, err := c.pipeline.Open(clip)
	if err != nil {
		return fmt.Errorf("opening %s: %w", clip.Title, err)
	}
	defer cleanup()

	return audio.StreamToDiscord(stream, stop, c.vc)
}

func (c *voiceConnection) Disconnect() error {
	if err := c.vc.Disconnect(); err != nil {
		log.Println("[WARN] Voice disconnect:", err)
		return err
	}
	return nil
}

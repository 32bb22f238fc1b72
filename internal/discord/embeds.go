package discord

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"bruhbot/internal/playback"
)

const (
	embedColorPlaying = 0x2ECC71
	embedColorQueued  = 0x9B59B6
	embedColorError   = 0xE74C3C
)

// pumpPlaybackEvents turns engine events into chat messages. Events for
// a guild land in the text channel its last voice command came from.
func (b *Bot) pumpPlaybackEvents() {
	for evt := range b.engine.Events() {
		channelID, ok := b.notifyChannel(evt.EventGuildID())
		if !ok {
			continue
		}

		var msg *discordgo.MessageEmbed
		switch e := evt.(type) {
		case playback.NowPlaying:
			msg = nowPlayingEmbed(e)
		case playback.Queued:
			msg = queuedEmbed(e, b.cfg.CommandPrefix)
		case playback.PlayFailed:
			msg = embed.NewEmbed().
				SetColor(embedColorError).
				SetDescription(fmt.Sprintf("🚫 Playback failed: %v", e.Err)).
				MessageEmbed
		case playback.Drained:
			// Leaving quietly is fine.
			continue
		default:
			continue
		}

		if _, err := b.dg.ChannelMessageSendEmbed(channelID, msg); err != nil {
			log.Println("[WARN] Failed to send playback event message:", err)
		}
	}
}

func nowPlayingEmbed(e playback.NowPlaying) *discordgo.MessageEmbed {
	msg := embed.NewEmbed().
		SetColor(embedColorPlaying).
		SetAuthor("Now Playing").
		SetTitle(e.Clip.Title)
	if e.Clip.Duration > 0 {
		msg = msg.AddField("Length", formatClipDuration(e.Clip.Duration))
	}
	if e.Next != nil {
		msg = msg.AddField("Up Next", e.Next.Title)
	} else {
		msg = msg.SetFooter("Last in the queue.")
	}
	if e.Clip.ThumbnailURL != "" {
		msg = msg.SetThumbnail(e.Clip.ThumbnailURL)
	}
	return msg.MessageEmbed
}

func queuedEmbed(e playback.Queued, prefix string) *discordgo.MessageEmbed {
	msg := embed.NewEmbed().
		SetColor(embedColorQueued).
		SetTitle(fmt.Sprintf("Queued at position %d: %s", e.Position+1, e.Clip.Title)).
		SetFooter(fmt.Sprintf("Didn't mean it? `%squeue remove last`", prefix))
	return msg.MessageEmbed
}

func formatClipDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"bruhbot/internal/command"
	"bruhbot/internal/command/voice"
	"bruhbot/internal/playback"
	"bruhbot/internal/soundboard"
	"bruhbot/internal/youtube"
)

// userFacingMessage translates command errors into the scoldings members
// actually see.
func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, voice.ErrNotInVoiceChannel):
		return "You must be in a voice channel in this server to use that command."
	case errors.Is(err, playback.ErrDifferentVoiceChannel):
		return "You must be in the same voice channel as me to use that command."
	case errors.Is(err, playback.ErrNotConnected), errors.Is(err, playback.ErrNothingPlaying):
		return "You can't do that. The bot isn't even playing anything."
	case errors.Is(err, playback.ErrInvalidIndex):
		return "Only integers allowed."
	case errors.Is(err, playback.ErrIndexOutOfRange):
		return "That number does not represent an item in the queue."
	case errors.Is(err, youtube.ErrNoVideoMatch):
		return "Couldn't find anything on YouTube for that."
	case errors.Is(err, soundboard.ErrNoClips):
		return "The soundboard directory is empty."
	case errors.Is(err, command.ErrGuildOnly):
		return "That command only works in a server."
	case errors.Is(err, command.ErrRateLimited):
		return "Slow down."
	default:
		return err.Error()
	}
}

func (b *Bot) sendError(s *discordgo.Session, channelID string, err error) {
	msg := embed.NewEmbed().
		SetColor(embedColorError).
		SetDescription(fmt.Sprintf("🚫 %s", userFacingMessage(err))).
		MessageEmbed
	if _, sendErr := s.ChannelMessageSendEmbed(channelID, msg); sendErr != nil {
		log.Println("[WARN] Failed to send error message:", sendErr)
	}
}

// Package voice holds the prefix commands that drive guild audio playback.
package voice

import (
	"errors"

	"bruhbot/internal/command"
	"bruhbot/internal/playback"
	"bruhbot/internal/soundboard"
	"bruhbot/internal/youtube"
)

var (
	ErrNotInVoiceChannel = errors.New("you must be in a voice channel to do that")
)

// VoiceStateFinder reports which voice channel a guild member occupies.
type VoiceStateFinder interface {
	UserVoiceChannel(guildID, userID string) (channelID string, ok bool)
}

// Deps are the shared collaborators of every voice command.
type Deps struct {
	Engine  *playback.Engine
	Voice   VoiceStateFinder
	Sounds  *soundboard.Library
	YouTube *youtube.Client
}

// requester resolves the invoker into a playback request, refusing
// members who are not in a voice channel.
func (d *Deps) requester(ctx *command.Context) (playback.Requester, error) {
	channelID, ok := d.Voice.UserVoiceChannel(ctx.GuildID(), ctx.AuthorID())
	if !ok {
		return playback.Requester{}, ErrNotInVoiceChannel
	}
	return playback.Requester{UserID: ctx.AuthorID(), ChannelID: channelID}, nil
}

// sameChannel checks that the invoker shares the bot's voice channel.
// Commands that steer playback require this so members cannot mess with
// a session they are not part of.
func (d *Deps) sameChannel(ctx *command.Context) error {
	botChannel, connected := d.Engine.ConnectedChannel(ctx.GuildID())
	if !connected {
		return playback.ErrNotConnected
	}
	userChannel, ok := d.Voice.UserVoiceChannel(ctx.GuildID(), ctx.AuthorID())
	if !ok {
		return ErrNotInVoiceChannel
	}
	if userChannel != botChannel {
		return playback.ErrDifferentVoiceChannel
	}
	return nil
}

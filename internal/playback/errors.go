package playback

import "errors"

var (
	// ErrDifferentVoiceChannel is returned when a requester tries to add to
	// a queue the bot is playing for a different voice channel.
	ErrDifferentVoiceChannel = errors.New("already playing in a different voice channel")

	// ErrNotConnected is returned by queue operations that need an active
	// voice connection.
	ErrNotConnected = errors.New("not connected to a voice channel")

	// ErrNothingPlaying is returned by Skip when the guild is connected but
	// no play instance is in flight.
	ErrNothingPlaying = errors.New("nothing is currently playing")

	// ErrInvalidIndex is returned by Remove for targets that are neither an
	// integer nor a recognized position token.
	ErrInvalidIndex = errors.New("queue position must be an integer")

	// ErrIndexOutOfRange is returned by Remove for indices outside the queue.
	ErrIndexOutOfRange = errors.New("no queue item at that position")
)

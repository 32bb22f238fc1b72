// Package audio materializes clips into PCM and pushes them into Discord
// voice connections. Decoding is delegated to an ffmpeg child process.
package audio

import (
	"fmt"
	"io"
	"os/exec"

	"bruhbot/internal/playback"
	"bruhbot/internal/youtube"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// loudnorm keeps soundboard rips and music videos at a comparable level;
// the volume cut stops the bot from blasting over conversation.
const audioFilter = "loudnorm=I=-16:LRA=11:TP=-2.5,volume=0.3"

// Pipeline opens the decoded PCM stream for a clip. Streamed clips get
// their raw audio URL resolved here, at play time.
type Pipeline struct {
	yt *youtube.Client
}

func NewPipeline(yt *youtube.Client) *Pipeline {
	return &Pipeline{yt: yt}
}

// Open returns 48kHz s16le stereo PCM for the clip plus a cleanup func.
func (p *Pipeline) Open(clip playback.Clip) (io.ReadCloser, func(), error) {
	switch clip.Kind {
	case playback.ClipLocal:
		return ffmpegPCM(clip.Source, false)
	case playback.ClipStreamed:
		streamURL, err := p.yt.StreamURL(clip)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve stream URL: %w", err)
		}
		return ffmpegPCM(streamURL, true)
	}
	return nil, nil, fmt.Errorf("unknown clip kind %v", clip.Kind)
}

func ffmpegPCM(input string, remote bool) (io.ReadCloser, func(), error) {
	args := []string{}
	if remote {
		// Ride out short network hiccups instead of ending the clip.
		args = append(args,
			"-reconnect", "1",
			"-reconnect_streamed", "1",
			"-reconnect_delay_max", "5",
		)
	}
	args = append(args,
		"-i", input,
		"-vn",
		"-af", audioFilter,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	cmd := exec.Command("ffmpeg", args...)
	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("command start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
		cmd.Wait()
	}
	return reader, cleanup, nil
}

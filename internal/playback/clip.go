package playback

import "time"

// ClipKind tags the origin of a clip. Streamed clips carry extra display
// metadata and their audio URL is only resolved when they reach the front
// of the queue; local clips are soundboard files on disk.
type ClipKind int

const (
	ClipStreamed ClipKind = iota
	ClipLocal
)

func (k ClipKind) String() string {
	switch k {
	case ClipStreamed:
		return "streamed"
	case ClipLocal:
		return "local"
	}
	return "unknown"
}

// Clip is one playable audio unit. Immutable once enqueued.
type Clip struct {
	Kind     ClipKind
	Source   string // watch-page URL for streamed clips, file path for local ones
	Title    string
	Duration time.Duration // zero for local clips

	// Set only for streamed clips.
	ThumbnailURL string
	OriginURL    string
}

func (c Clip) IsStreamed() bool {
	return c.Kind == ClipStreamed
}

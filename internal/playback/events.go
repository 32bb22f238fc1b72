package playback

// Event is an asynchronous status notification emitted by the engine. The
// command layer consumes these to produce user-facing messages; the engine
// itself never formats text.
type Event interface {
	EventGuildID() string
}

// Queued is emitted when a clip is appended behind others.
type Queued struct {
	GuildID  string
	Clip     Clip
	Position int // zero-based queue position, usable as an undo hint
}

// NowPlaying is emitted just before a clip starts playing. Next is the
// following queue entry, or nil when this clip is the last one.
type NowPlaying struct {
	GuildID string
	Clip    Clip
	Next    *Clip
}

// Drained is emitted after the queue runs dry and the voice connection has
// been torn down.
type Drained struct {
	GuildID string
}

// PlayFailed is emitted when the audio pipeline or the connection fails
// mid-cycle. The guild stays connected but stops advancing until an
// explicit stop.
type PlayFailed struct {
	GuildID string
	Err     error
}

func (e Queued) EventGuildID() string     { return e.GuildID }
func (e NowPlaying) EventGuildID() string { return e.GuildID }
func (e Drained) EventGuildID() string    { return e.GuildID }
func (e PlayFailed) EventGuildID() string { return e.GuildID }

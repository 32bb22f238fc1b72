package playback

import (
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Connector joins voice channels. The Discord layer provides the real one;
// tests substitute fakes.
type Connector interface {
	Join(guildID, channelID string) (Connection, error)
}

// Connection is one live voice connection. Play materializes the clip's
// audio and blocks until it finishes or the stop channel closes; a stopped
// play returns nil.
type Connection interface {
	ChannelID() string
	Play(clip Clip, stop <-chan struct{}) error
	Disconnect() error
}

// Clips get a short breather between them so they are perceptibly separated.
const defaultClipGap = 3 * time.Second

// Requester identifies who asked for playback and which voice channel they
// are in. Callers validate that the channel is set before reaching the
// engine.
type Requester struct {
	UserID    string
	ChannelID string
}

// guildState holds one guild's playback state. All fields are guarded by mu
// so queue mutations and the advance cycle never observe each other
// half-done; guilds stay fully independent of one another.
type guildState struct {
	guildID string

	mu       sync.Mutex
	conn     Connection
	queue    []Clip
	loop     bool
	stopPlay chan struct{} // closed to cut the in-flight play (and gap) short; nil when idle
	skipped  bool          // front clip must be dropped even in loop mode
}

// Engine owns every guild's playback state machine: join, enqueue,
// sequential advance, loop, skip, stop and teardown.
type Engine struct {
	connector Connector
	clipGap   time.Duration
	events    chan Event

	mu     sync.Mutex
	guilds map[string]*guildState
}

func New(connector Connector) *Engine {
	return &Engine{
		connector: connector,
		clipGap:   defaultClipGap,
		events:    make(chan Event, 16),
		guilds:    make(map[string]*guildState),
	}
}

// Events returns the engine's outbound notification channel.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// guild returns the state for guildID, creating it on first access. Guilds
// joined after startup get their state the first time anyone uses voice
// commands there.
func (e *Engine) guild(guildID string) *guildState {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.guilds[guildID]
	if !ok {
		g = &guildState{guildID: guildID}
		e.guilds[guildID] = g
	}
	return g
}

// RequestPlay appends clip to the guild's queue. If the guild has no voice
// connection it joins the requester's channel and starts the advance cycle;
// if it is already playing in the requester's channel the clip just queues
// up. Playing in a different channel is refused.
func (e *Engine) RequestPlay(guildID string, clip Clip, req Requester) error {
	g := e.guild(guildID)

	g.mu.Lock()
	if g.conn != nil {
		if g.conn.ChannelID() != req.ChannelID {
			g.mu.Unlock()
			return ErrDifferentVoiceChannel
		}
		g.queue = append(g.queue, clip)
		pos := len(g.queue) - 1
		// Emitted under the lock so the Queued event always precedes the
		// NowPlaying that later consumes this clip; emit never blocks.
		e.emit(Queued{GuildID: guildID, Clip: clip, Position: pos})
		g.mu.Unlock()
		return nil
	}

	// Holding the lock across Join keeps a concurrent request for the same
	// idle guild from opening a second connection.
	g.queue = append(g.queue, clip)
	conn, err := e.connector.Join(guildID, req.ChannelID)
	if err != nil {
		g.queue = g.queue[:len(g.queue)-1]
		g.mu.Unlock()
		return fmt.Errorf("join voice channel: %w", err)
	}
	g.conn = conn
	g.mu.Unlock()

	go e.advance(g)
	return nil
}

// advance plays queued clips in order until the queue drains or something
// tears the connection down. Exactly one advance cycle runs per guild at a
// time: it is only ever started by the RequestPlay that created the
// connection.
func (e *Engine) advance(g *guildState) {
	for {
		g.mu.Lock()
		if g.conn == nil {
			// A concurrent stop already cleaned up.
			g.mu.Unlock()
			return
		}
		if len(g.queue) == 0 {
			conn := g.conn
			g.conn = nil
			g.stopPlay = nil
			g.mu.Unlock()
			if err := conn.Disconnect(); err != nil {
				log.Printf("[ERR] [%s] Voice disconnect failed: %v", g.guildID, err)
			}
			e.emit(Drained{GuildID: g.guildID})
			return
		}

		clip := g.queue[0]
		var next *Clip
		if len(g.queue) > 1 {
			n := g.queue[1]
			next = &n
		}
		stop := make(chan struct{})
		g.stopPlay = stop
		g.skipped = false
		conn := g.conn
		g.mu.Unlock()

		e.emit(NowPlaying{GuildID: g.guildID, Clip: clip, Next: next})

		err := conn.Play(clip, stop)
		if err == nil {
			select {
			case <-time.After(e.clipGap):
			case <-stop:
			}
		}

		g.mu.Lock()
		g.stopPlay = nil
		if g.conn == nil {
			// Stopped while we were playing or waiting out the gap.
			g.mu.Unlock()
			return
		}
		if err != nil {
			g.mu.Unlock()
			log.Printf("[ERR] [%s] Playback failed for %q: %v", g.guildID, clip.Title, err)
			e.emit(PlayFailed{GuildID: g.guildID, Err: err})
			return
		}
		// The front clip survives a completed play only in loop mode, and a
		// skip overrides even that. Recheck the front still matches in case
		// the queue was rearranged while we were suspended.
		if (!g.loop || g.skipped) && len(g.queue) > 0 && g.queue[0] == clip {
			g.queue = g.queue[1:]
		}
		g.mu.Unlock()
	}
}

// Skip cuts the current play instance short. The advance cycle drops the
// clip and moves on regardless of loop mode.
func (e *Engine) Skip(guildID string) error {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		return ErrNotConnected
	}
	if g.stopPlay == nil {
		return ErrNothingPlaying
	}
	g.skipped = true
	close(g.stopPlay)
	g.stopPlay = nil
	return nil
}

// SetLoop toggles replaying the front clip. Legal at any time; with a
// connection up it takes effect at the next completion boundary.
func (e *Engine) SetLoop(guildID string, enabled bool) {
	g := e.guild(guildID)
	g.mu.Lock()
	g.loop = enabled
	g.mu.Unlock()
}

// LoopEnabled reports the guild's loop flag.
func (e *Engine) LoopEnabled(guildID string) bool {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loop
}

// Stop halts playback, discards the whole queue and disconnects. Safe to
// call on an idle guild.
func (e *Engine) Stop(guildID string) error {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()
	return e.stopLocked(g)
}

func (e *Engine) stopLocked(g *guildState) error {
	if g.conn == nil {
		return nil
	}
	if g.stopPlay != nil {
		close(g.stopPlay)
		g.stopPlay = nil
	}
	g.queue = nil
	g.skipped = false
	conn := g.conn
	g.conn = nil
	return conn.Disconnect()
}

// Remove deletes one queue entry. target is a zero-based index or one of
// the tokens "first"/"next" (index 0) and "last"/"end" (last index).
// Removing index 0 while it is playing cuts it short immediately.
func (e *Engine) Remove(guildID, target string) (Clip, error) {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		return Clip{}, ErrNotConnected
	}
	idx, err := parseQueueIndex(target, len(g.queue))
	if err != nil {
		return Clip{}, err
	}
	clip := g.queue[idx]
	if idx == 0 && g.stopPlay != nil {
		// The front is mid-play: end it and let the advance cycle pop it.
		g.skipped = true
		close(g.stopPlay)
		g.stopPlay = nil
		return clip, nil
	}
	g.queue = slices.Delete(g.queue, idx, idx+1)
	return clip, nil
}

func parseQueueIndex(target string, length int) (int, error) {
	idx := 0
	switch strings.ToLower(target) {
	case "first", "next":
		idx = 0
	case "last", "end":
		idx = length - 1
	default:
		n, err := strconv.Atoi(target)
		if err != nil {
			return 0, ErrInvalidIndex
		}
		idx = n
	}
	if idx < 0 || idx >= length {
		return 0, ErrIndexOutOfRange
	}
	return idx, nil
}

// ClearQueue drops every entry behind the currently playing clip.
func (e *Engine) ClearQueue(guildID string) error {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		return ErrNotConnected
	}
	if len(g.queue) > 1 {
		g.queue = g.queue[:1]
	}
	return nil
}

// ListQueue returns a snapshot of the guild's queue, front (currently
// playing) first. Always legal, even when disconnected.
func (e *Engine) ListQueue(guildID string) []Clip {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.queue)
}

// ConnectedGuilds lists every guild that currently has a voice
// connection.
func (e *Engine) ConnectedGuilds() []string {
	e.mu.Lock()
	guilds := make([]*guildState, 0, len(e.guilds))
	for _, g := range e.guilds {
		guilds = append(guilds, g)
	}
	e.mu.Unlock()

	var connected []string
	for _, g := range guilds {
		g.mu.Lock()
		if g.conn != nil {
			connected = append(connected, g.guildID)
		}
		g.mu.Unlock()
	}
	slices.Sort(connected)
	return connected
}

// ConnectedChannel reports the voice channel the guild is connected to.
func (e *Engine) ConnectedChannel(guildID string) (string, bool) {
	g := e.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.conn == nil {
		return "", false
	}
	return g.conn.ChannelID(), true
}

// KillAll stops playback and disconnects every guild, best-effort. Used at
// process shutdown.
func (e *Engine) KillAll() {
	e.mu.Lock()
	guilds := make([]*guildState, 0, len(e.guilds))
	for _, g := range e.guilds {
		guilds = append(guilds, g)
	}
	e.mu.Unlock()

	for _, g := range guilds {
		g.mu.Lock()
		if err := e.stopLocked(g); err != nil {
			log.Printf("[ERR] [%s] Voice teardown failed: %v", g.guildID, err)
		}
		g.mu.Unlock()
	}
}

// emit delivers an event without ever blocking the advance cycle.
func (e *Engine) emit(evt Event) {
	select {
	case e.events <- evt:
	default:
		log.Printf("[WARN] [%s] Playback event dropped (channel full): %T", evt.EventGuildID(), evt)
	}
}

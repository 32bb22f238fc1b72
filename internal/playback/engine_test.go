package playback

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeConn is a scripted voice connection. With holdFor zero, Play blocks
// until the engine closes the stop channel; otherwise it "finishes" after
// holdFor unless stopped first.
type fakeConn struct {
	channelID string
	holdFor   time.Duration
	playErr   error

	mu           sync.Mutex
	played       []string
	disconnected bool
}

func (c *fakeConn) ChannelID() string { return c.channelID }

func (c *fakeConn) Play(clip Clip, stop <-chan struct{}) error {
	c.mu.Lock()
	c.played = append(c.played, clip.Title)
	c.mu.Unlock()

	if c.playErr != nil {
		return c.playErr
	}
	if c.holdFor == 0 {
		<-stop
		return nil
	}
	select {
	case <-stop:
	case <-time.After(c.holdFor):
	}
	return nil
}

func (c *fakeConn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected = true
	return nil
}

func (c *fakeConn) playedTitles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.played))
	copy(out, c.played)
	return out
}

func (c *fakeConn) isDisconnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnected
}

type fakeConnector struct {
	holdFor time.Duration
	playErr error

	mu    sync.Mutex
	joins int
	conns []*fakeConn
}

func (f *fakeConnector) Join(guildID, channelID string) (Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joins++
	c := &fakeConn{channelID: channelID, holdFor: f.holdFor, playErr: f.playErr}
	f.conns = append(f.conns, c)
	return c, nil
}

func (f *fakeConnector) joinCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.joins
}

func (f *fakeConnector) lastConn() *fakeConn {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.conns) == 0 {
		return nil
	}
	return f.conns[len(f.conns)-1]
}

func newTestEngine(c Connector) *Engine {
	e := New(c)
	e.clipGap = 2 * time.Millisecond
	return e
}

func nextEvent(t *testing.T, e *Engine) Event {
	t.Helper()
	select {
	case evt := <-e.Events():
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for playback event")
		return nil
	}
}

func expectNowPlaying(t *testing.T, e *Engine, title string) NowPlaying {
	t.Helper()
	evt := nextEvent(t, e)
	np, ok := evt.(NowPlaying)
	if !ok {
		t.Fatalf("expected NowPlaying, got %T (%+v)", evt, evt)
	}
	if np.Clip.Title != title {
		t.Fatalf("expected NowPlaying for %q, got %q", title, np.Clip.Title)
	}
	return np
}

func expectDrained(t *testing.T, e *Engine) {
	t.Helper()
	evt := nextEvent(t, e)
	if _, ok := evt.(Drained); !ok {
		t.Fatalf("expected Drained, got %T (%+v)", evt, evt)
	}
}

func expectNoEventsFor(t *testing.T, e *Engine, d time.Duration) {
	t.Helper()
	select {
	case evt := <-e.Events():
		t.Fatalf("expected no events, got %T (%+v)", evt, evt)
	case <-time.After(d):
	}
}

func localClip(title string) Clip {
	return Clip{Kind: ClipLocal, Source: "soundboard/" + title + ".mp3", Title: title}
}

func requesterIn(channel string) Requester {
	return Requester{UserID: "user-1", ChannelID: channel}
}

func TestRequestPlayConnectsAndDrains(t *testing.T) {
	conn := &fakeConnector{holdFor: 5 * time.Millisecond}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("airhorn"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay: %v", err)
	}

	np := expectNowPlaying(t, e, "airhorn")
	if np.Next != nil {
		t.Fatalf("expected no next clip, got %q", np.Next.Title)
	}
	expectDrained(t, e)

	if got := conn.joinCount(); got != 1 {
		t.Fatalf("expected 1 join, got %d", got)
	}
	if !conn.lastConn().isDisconnected() {
		t.Fatal("expected disconnect after drain")
	}
	if _, ok := e.ConnectedChannel("g1"); ok {
		t.Fatal("guild should be idle after drain")
	}
}

func TestConcurrentRequestPlaySingleConnection(t *testing.T) {
	conn := &fakeConnector{} // plays block until stopped
	e := newTestEngine(conn)

	var wg sync.WaitGroup
	for _, title := range []string{"first", "second"} {
		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			if err := e.RequestPlay("g1", localClip(title), requesterIn("vc-x")); err != nil {
				t.Errorf("RequestPlay(%s): %v", title, err)
			}
		}(title)
	}
	wg.Wait()

	if got := conn.joinCount(); got != 1 {
		t.Fatalf("expected exactly 1 connection, got %d", got)
	}
	if got := len(e.ListQueue("g1")); got != 2 {
		t.Fatalf("expected 2 queued clips, got %d", got)
	}

	// One clip started playing, the other was queued behind it.
	sawQueued := false
	for i := 0; i < 2; i++ {
		switch evt := nextEvent(t, e).(type) {
		case NowPlaying:
		case Queued:
			sawQueued = true
			if evt.Position != 1 {
				t.Fatalf("expected queue position 1, got %d", evt.Position)
			}
		default:
			t.Fatalf("unexpected event %T", evt)
		}
	}
	if !sawQueued {
		t.Fatal("expected a Queued event for the second clip")
	}

	if err := e.Stop("g1"); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestRequestPlayAppendsWhenConnected(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(a): %v", err)
	}
	expectNowPlaying(t, e, "a")

	if err := e.RequestPlay("g1", localClip("b"), Requester{UserID: "user-2", ChannelID: "vc-x"}); err != nil {
		t.Fatalf("RequestPlay(b): %v", err)
	}

	evt := nextEvent(t, e)
	q, ok := evt.(Queued)
	if !ok {
		t.Fatalf("expected Queued, got %T", evt)
	}
	if q.Clip.Title != "b" || q.Position != 1 {
		t.Fatalf("unexpected Queued event: %+v", q)
	}
	if got := conn.joinCount(); got != 1 {
		t.Fatalf("expected no second connect, got %d joins", got)
	}

	_ = e.Stop("g1")
}

func TestQueuedPrecedesNowPlayingForSameClip(t *testing.T) {
	conn := &fakeConnector{holdFor: time.Millisecond}
	e := newTestEngine(conn)

	titles := []string{"a", "b", "c", "d", "e", "f"}
	for _, title := range titles {
		if err := e.RequestPlay("g1", localClip(title), requesterIn("vc-x")); err != nil {
			t.Fatalf("RequestPlay(%s): %v", title, err)
		}
	}

	// Collect the whole event stream; playback is over once it goes quiet.
	var stream []Event
collect:
	for {
		select {
		case evt := <-e.Events():
			stream = append(stream, evt)
		case <-time.After(200 * time.Millisecond):
			break collect
		}
	}

	queuedAt := map[string]int{}
	playingAt := map[string]int{}
	for i, evt := range stream {
		switch ev := evt.(type) {
		case Queued:
			if _, seen := queuedAt[ev.Clip.Title]; !seen {
				queuedAt[ev.Clip.Title] = i
			}
		case NowPlaying:
			if _, seen := playingAt[ev.Clip.Title]; !seen {
				playingAt[ev.Clip.Title] = i
			}
		}
	}

	for title, qi := range queuedAt {
		pi, played := playingAt[title]
		if played && pi < qi {
			t.Errorf("NowPlaying for %q at index %d arrived before its Queued at %d", title, pi, qi)
		}
	}
}

func TestRequestPlayDifferentChannelRefused(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(a): %v", err)
	}
	expectNowPlaying(t, e, "a")

	err := e.RequestPlay("g1", localClip("b"), Requester{UserID: "user-2", ChannelID: "vc-y"})
	if !errors.Is(err, ErrDifferentVoiceChannel) {
		t.Fatalf("expected ErrDifferentVoiceChannel, got %v", err)
	}
	if got := len(e.ListQueue("g1")); got != 1 {
		t.Fatalf("queue should be unchanged, got %d entries", got)
	}

	_ = e.Stop("g1")
}

func TestSkipAdvancesToNext(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(a): %v", err)
	}
	expectNowPlaying(t, e, "a")
	if err := e.RequestPlay("g1", localClip("b"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(b): %v", err)
	}
	nextEvent(t, e) // Queued{b}

	if err := e.Skip("g1"); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	expectNowPlaying(t, e, "b")

	queue := e.ListQueue("g1")
	if len(queue) != 1 || queue[0].Title != "b" {
		t.Fatalf("expected queue [b], got %+v", queue)
	}
	if played := conn.lastConn().playedTitles(); len(played) != 2 || played[0] != "a" || played[1] != "b" {
		t.Fatalf("expected play order [a b], got %v", played)
	}

	_ = e.Stop("g1")
}

func TestSkipWithLoopDropsClipAndDrains(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	e.SetLoop("g1", true)
	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay: %v", err)
	}
	expectNowPlaying(t, e, "a")

	if err := e.Skip("g1"); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	expectDrained(t, e)

	if got := len(e.ListQueue("g1")); got != 0 {
		t.Fatalf("expected empty queue, got %d entries", got)
	}
	if !conn.lastConn().isDisconnected() {
		t.Fatal("expected disconnect after skipping the only looped clip")
	}
}

func TestLoopReplaysFrontClip(t *testing.T) {
	conn := &fakeConnector{holdFor: 3 * time.Millisecond}
	e := newTestEngine(conn)

	e.SetLoop("g1", true)
	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay: %v", err)
	}

	// The same clip keeps reappearing while loop mode is on.
	expectNowPlaying(t, e, "a")
	expectNowPlaying(t, e, "a")
	expectNowPlaying(t, e, "a")

	e.SetLoop("g1", false)
	for {
		evt := nextEvent(t, e)
		if _, ok := evt.(Drained); ok {
			break
		}
		if np, ok := evt.(NowPlaying); !ok || np.Clip.Title != "a" {
			t.Fatalf("unexpected event while draining: %T (%+v)", evt, evt)
		}
	}
}

func TestStopClearsQueueAndSilencesAdvance(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(a): %v", err)
	}
	expectNowPlaying(t, e, "a")
	for _, title := range []string{"b", "c"} {
		if err := e.RequestPlay("g1", localClip(title), requesterIn("vc-x")); err != nil {
			t.Fatalf("RequestPlay(%s): %v", title, err)
		}
		nextEvent(t, e) // Queued
	}

	if err := e.Stop("g1"); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if got := len(e.ListQueue("g1")); got != 0 {
		t.Fatalf("expected empty queue after stop, got %d", got)
	}
	if !conn.lastConn().isDisconnected() {
		t.Fatal("expected disconnect after stop")
	}
	// The in-flight advance cycle wakes up but must not emit anything.
	expectNoEventsFor(t, e, 50*time.Millisecond)
}

func TestStopIdleIsIdempotent(t *testing.T) {
	e := newTestEngine(&fakeConnector{})
	if err := e.Stop("g1"); err != nil {
		t.Fatalf("Stop on idle guild: %v", err)
	}
}

func TestSkipWithoutConnection(t *testing.T) {
	e := newTestEngine(&fakeConnector{})
	if err := e.Skip("g1"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestRemoveTargets(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(a): %v", err)
	}
	expectNowPlaying(t, e, "a")
	for _, title := range []string{"b", "c"} {
		if err := e.RequestPlay("g1", localClip(title), requesterIn("vc-x")); err != nil {
			t.Fatalf("RequestPlay(%s): %v", title, err)
		}
		nextEvent(t, e) // Queued
	}

	removed, err := e.Remove("g1", "last")
	if err != nil {
		t.Fatalf("Remove(last): %v", err)
	}
	if removed.Title != "c" {
		t.Fatalf("Remove(last) removed %q, want c", removed.Title)
	}

	if _, err := e.Remove("g1", "7"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := e.Remove("g1", "third"); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}

	// Removing the currently playing front cuts it short.
	removed, err = e.Remove("g1", "first")
	if err != nil {
		t.Fatalf("Remove(first): %v", err)
	}
	if removed.Title != "a" {
		t.Fatalf("Remove(first) removed %q, want a", removed.Title)
	}
	expectNowPlaying(t, e, "b")

	_ = e.Stop("g1")
}

func TestRemoveWithoutConnection(t *testing.T) {
	e := newTestEngine(&fakeConnector{})
	if _, err := e.Remove("g1", "0"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestClearQueueKeepsPlayingClip(t *testing.T) {
	conn := &fakeConnector{}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(a): %v", err)
	}
	expectNowPlaying(t, e, "a")
	if err := e.RequestPlay("g1", localClip("b"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay(b): %v", err)
	}
	nextEvent(t, e) // Queued

	if err := e.ClearQueue("g1"); err != nil {
		t.Fatalf("ClearQueue: %v", err)
	}
	queue := e.ListQueue("g1")
	if len(queue) != 1 || queue[0].Title != "a" {
		t.Fatalf("expected queue [a], got %+v", queue)
	}

	_ = e.Stop("g1")
}

func TestPlayFailureLeavesGuildConnected(t *testing.T) {
	conn := &fakeConnector{playErr: errors.New("ffmpeg exploded")}
	e := newTestEngine(conn)

	if err := e.RequestPlay("g1", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay: %v", err)
	}
	expectNowPlaying(t, e, "a")

	evt := nextEvent(t, e)
	if _, ok := evt.(PlayFailed); !ok {
		t.Fatalf("expected PlayFailed, got %T", evt)
	}

	// Degraded but connected: an explicit stop recovers the guild.
	if _, ok := e.ConnectedChannel("g1"); !ok {
		t.Fatal("guild should stay connected after a play failure")
	}
	if err := e.Stop("g1"); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if _, ok := e.ConnectedChannel("g1"); ok {
		t.Fatal("guild should be idle after stop")
	}
}

func TestExportImportPreservesState(t *testing.T) {
	conn := &fakeConnector{}
	e1 := newTestEngine(conn)

	e1.SetLoop("g-loop", true)
	if err := e1.RequestPlay("g-live", localClip("a"), requesterIn("vc-x")); err != nil {
		t.Fatalf("RequestPlay: %v", err)
	}
	expectNowPlaying(t, e1, "a")

	e2 := newTestEngine(conn)
	e2.ImportState(e1.ExportState())

	if !e2.LoopEnabled("g-loop") {
		t.Fatal("loop flag lost across export/import")
	}
	if got := len(e2.ListQueue("g-live")); got != 1 {
		t.Fatalf("queue lost across export/import, got %d entries", got)
	}
	if _, ok := e2.ConnectedChannel("g-live"); !ok {
		t.Fatal("live connection lost across export/import")
	}

	// The successor engine can tear down a connection the predecessor made.
	if err := e2.Stop("g-live"); err != nil {
		t.Fatalf("Stop via successor engine: %v", err)
	}
	if !conn.lastConn().isDisconnected() {
		t.Fatal("expected disconnect via successor engine")
	}
}

func TestParseQueueIndex(t *testing.T) {
	tests := []struct {
		target  string
		length  int
		want    int
		wantErr error
	}{
		{"first", 3, 0, nil},
		{"next", 3, 0, nil},
		{"last", 3, 2, nil},
		{"end", 3, 2, nil},
		{"LAST", 3, 2, nil},
		{"1", 3, 1, nil},
		{"0", 1, 0, nil},
		{"7", 3, 0, ErrIndexOutOfRange},
		{"-1", 3, 0, ErrIndexOutOfRange},
		{"last", 0, 0, ErrIndexOutOfRange},
		{"banana", 3, 0, ErrInvalidIndex},
		{"1.5", 3, 0, ErrInvalidIndex},
	}
	for _, tt := range tests {
		got, err := parseQueueIndex(tt.target, tt.length)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("parseQueueIndex(%q, %d) error = %v, want %v", tt.target, tt.length, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseQueueIndex(%q, %d) = %d, want %d", tt.target, tt.length, got, tt.want)
		}
	}
}

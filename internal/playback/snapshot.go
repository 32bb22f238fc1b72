package playback

// Snapshot carries every guild's playback state across a reload of the
// command-handling layer without dropping live voice connections or queues.
// It is opaque to callers: export from the old engine, import into the new
// one, and in-flight advance cycles keep running against the same state.
type Snapshot struct {
	guilds map[string]*guildState
}

// ExportState detaches the engine's guild map for handoff. The engine keeps
// serving the same states until ImportState hands them to a successor.
func (e *Engine) ExportState() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Snapshot{guilds: e.guilds}
}

// ImportState adopts a previously exported snapshot. A nil or empty
// snapshot leaves the engine with a fresh state map.
func (e *Engine) ImportState(s *Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil || s.guilds == nil {
		e.guilds = make(map[string]*guildState)
		return
	}
	e.guilds = s.guilds
}

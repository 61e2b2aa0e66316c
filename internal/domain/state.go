package domain

// State is the per-installation session document. It is loaded once per hook
// invocation, mutated through the methods below, and written back wholesale
// only when dirty. Entries are never pruned for lapsed sessions; the store
// grows for the lifetime of an installation.
type State struct {
	AgentSessions    []string
	SessionPacks     map[string]string
	PromptTimestamps map[string][]float64
	LastPlayed       map[string]string

	dirty bool
}

// Dirty reports whether any mutation happened since the document was loaded.
func (s *State) Dirty() bool {
	return s.dirty
}

// AgentSession reports whether the session was ever flagged as delegated.
func (s *State) AgentSession(sessionID string) bool {
	for _, id := range s.AgentSessions {
		if id == sessionID {
			return true
		}
	}
	return false
}

// MarkAgentSession flags a session as delegated. The flag is monotonic: once
// recorded it is never removed within the document's lifetime.
func (s *State) MarkAgentSession(sessionID string) {
	if s.AgentSession(sessionID) {
		return
	}
	s.AgentSessions = append(s.AgentSessions, sessionID)
	s.dirty = true
}

// PackFor returns the pack pinned to a session, if any.
func (s *State) PackFor(sessionID string) (string, bool) {
	pack, ok := s.SessionPacks[sessionID]
	return pack, ok
}

// AssignPack pins a pack to a session for its lifetime.
func (s *State) AssignPack(sessionID, pack string) {
	if s.SessionPacks == nil {
		s.SessionPacks = make(map[string]string)
	}
	s.SessionPacks[sessionID] = pack
	s.dirty = true
}

// RecordPrompt prunes the session's prompt timestamps to the sliding window,
// appends now, and returns the resulting count. Timestamps are epoch seconds.
// The list is not reset when the count crosses the annoyed threshold; it
// drains only as entries age out of the window.
func (s *State) RecordPrompt(sessionID string, now, windowSeconds float64) int {
	if s.PromptTimestamps == nil {
		s.PromptTimestamps = make(map[string][]float64)
	}

	cutoff := now - windowSeconds
	kept := make([]float64, 0, len(s.PromptTimestamps[sessionID])+1)
	for _, ts := range s.PromptTimestamps[sessionID] {
		if ts > cutoff {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now)

	s.PromptTimestamps[sessionID] = kept
	s.dirty = true
	return len(kept)
}

// LastPlayedFile returns the most recently chosen file for a category.
func (s *State) LastPlayedFile(category string) string {
	return s.LastPlayed[category]
}

// RecordPlayed stores the chosen file as the category's last played sound.
func (s *State) RecordPlayed(category, file string) {
	if s.LastPlayed == nil {
		s.LastPlayed = make(map[string]string)
	}
	s.LastPlayed[category] = file
	s.dirty = true
}

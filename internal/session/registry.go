package session

import (
	"sort"
	"sync"
)

// Registry maps project names to at most one session each, plus retained
// terminal-state records until the caller clears them.
//
// Mutations for the same project are serialized through a per-project lock
// so a user action and the liveness poller cannot race; different projects
// proceed independently.
type Registry struct {
	mu    sync.Mutex
	slots map[string]*slot
}

// slot holds one project's session and its serialization lock.
type slot struct {
	mu   sync.Mutex
	sess *Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]*slot)}
}

// acquire returns the project's slot, creating it on demand, with its lock
// held. The caller must call release.
func (r *Registry) acquire(project string) *slot {
	r.mu.Lock()
	s, ok := r.slots[project]
	if !ok {
		s = &slot{}
		r.slots[project] = s
	}
	r.mu.Unlock()

	s.mu.Lock()
	return s
}

func (s *slot) release() {
	s.mu.Unlock()
}

// Get returns a copy of the project's session record, or nil.
func (r *Registry) Get(project string) *Session {
	s := r.acquire(project)
	defer s.release()
	if s.sess == nil {
		return nil
	}
	copy := *s.sess
	return &copy
}

// List returns copies of all session records, most recently started first.
func (r *Registry) List() []Session {
	r.mu.Lock()
	slots := make([]*slot, 0, len(r.slots))
	for _, s := range r.slots {
		slots = append(slots, s)
	}
	r.mu.Unlock()

	out := make([]Session, 0, len(slots))
	for _, s := range slots {
		s.mu.Lock()
		if s.sess != nil {
			out = append(out, *s.sess)
		}
		s.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// Clear removes a terminal-state record. Live sessions are not cleared.
//
// Returns:
//   - bool: Whether a record was removed.
func (r *Registry) Clear(project string) bool {
	s := r.acquire(project)
	defer s.release()
	if s.sess == nil || s.sess.State.Live() {
		return false
	}
	s.sess = nil
	return true
}

// Restore loads session records from a snapshot, replacing the registry
// content. Records keep their persisted state; the next liveness sweep
// corrects any session that died while untracked.
func (r *Registry) Restore(sessions []Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[string]*slot, len(sessions))
	for i := range sessions {
		copy := sessions[i]
		r.slots[copy.Project] = &slot{sess: &copy}
	}
}

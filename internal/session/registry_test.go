package session

import (
	"sync"
	"testing"
	"time"
)

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	s := r.acquire("p1")
	s.sess = &Session{ID: "a", Project: "p1", State: StateRunning}
	s.release()

	got := r.Get("p1")
	if got == nil || got.ID != "a" {
		t.Fatalf("Get() = %+v", got)
	}
	got.State = StateEnded
	if r.Get("p1").State != StateRunning {
		t.Error("mutating the returned copy leaked into the registry")
	}
	if r.Get("other") != nil {
		t.Error("Get() of unknown project should be nil")
	}
}

func TestRegistryListOrdersByStartTime(t *testing.T) {
	r := NewRegistry()
	base := time.Now()
	for i, name := range []string{"old", "mid", "new"} {
		s := r.acquire(name)
		s.sess = &Session{ID: name, Project: name, StartedAt: base.Add(time.Duration(i) * time.Minute)}
		s.release()
	}

	got := r.List()
	if len(got) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(got))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if got[i].Project != want {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].Project, want)
		}
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()

	live := r.acquire("live")
	live.sess = &Session{ID: "l", Project: "live", State: StateRunning}
	live.release()
	done := r.acquire("done")
	done.sess = &Session{ID: "d", Project: "done", State: StateEnded}
	done.release()

	if r.Clear("live") {
		t.Error("Clear() must refuse to remove a live session")
	}
	if r.Get("live") == nil {
		t.Error("live session vanished")
	}

	if !r.Clear("done") {
		t.Error("Clear() should remove a terminal-state record")
	}
	if r.Get("done") != nil {
		t.Error("cleared record still present")
	}
	if r.Clear("done") {
		t.Error("Clear() of an empty slot should report nothing removed")
	}
}

func TestRegistryRestore(t *testing.T) {
	r := NewRegistry()
	r.Restore([]Session{
		{ID: "a", Project: "p1", State: StateRunning, PID: 42},
		{ID: "b", Project: "p2", State: StateEnded},
	})

	if got := r.Get("p1"); got == nil || got.PID != 42 || got.State != StateRunning {
		t.Errorf("restored p1 = %+v", got)
	}
	if got := r.Get("p2"); got == nil || got.State != StateEnded {
		t.Errorf("restored p2 = %+v", got)
	}
	if len(r.List()) != 2 {
		t.Errorf("List() after Restore = %d records, want 2", len(r.List()))
	}
}

// Concurrent acquires for the same project must serialize so only one
// session can be registered per project.
func TestRegistrySerializesPerProject(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	registered := 0

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := r.acquire("p1")
			defer s.release()
			if s.sess == nil || !s.sess.State.Live() {
				s.sess = &Session{ID: "x", Project: "p1", State: StateRunning}
				registered++
			}
		}()
	}
	wg.Wait()

	if registered != 1 {
		t.Errorf("registered %d sessions for one project, want 1", registered)
	}
}

package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStateFileRoundtrip(t *testing.T) {
	dir := t.TempDir()
	sf := NewStateFile(dir)

	in := []Session{
		{ID: "a", Project: "p1", Provider: "claude", PID: 42, Comm: "xterm", State: StateRunning, StartedAt: time.Now().Truncate(time.Second)},
		{ID: "b", Project: "p2", Provider: "codex", State: StateEnded, EndedAt: time.Now().Truncate(time.Second)},
	}
	if err := sf.Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := sf.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Load() returned %d sessions, want 2", len(out))
	}
	if out[0].ID != "a" || out[0].PID != 42 || out[0].State != StateRunning {
		t.Errorf("first session = %+v", out[0])
	}
	if out[1].State != StateEnded || out[1].EndedAt.IsZero() {
		t.Errorf("second session = %+v", out[1])
	}
}

func TestStateFileMissingIsEmpty(t *testing.T) {
	sf := NewStateFile(t.TempDir())
	out, err := sf.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out != nil {
		t.Errorf("Load() = %v, want nil", out)
	}
}

func TestStateFileCorruptFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStateFile(dir).Load(); err == nil {
		t.Error("Load() of corrupt snapshot should fail")
	}
}

func TestMergeSnapshots(t *testing.T) {
	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		local     []Session
		persisted []Session
		want      map[string]string // project -> surviving session ID
	}{
		{
			name:      "record from a concurrent launch survives the save",
			local:     []Session{{ID: "a", Project: "p1", StartedAt: base}},
			persisted: []Session{{ID: "b", Project: "p2", StartedAt: base.Add(time.Second)}},
			want:      map[string]string{"p1": "a", "p2": "b"},
		},
		{
			name:      "same session keeps the in-memory state",
			local:     []Session{{ID: "a", Project: "p1", State: StateStopped, StartedAt: base}},
			persisted: []Session{{ID: "a", Project: "p1", State: StateRunning, StartedAt: base}},
			want:      map[string]string{"p1": "a"},
		},
		{
			name:      "newer session on disk replaces an older local record",
			local:     []Session{{ID: "a", Project: "p1", StartedAt: base}},
			persisted: []Session{{ID: "b", Project: "p1", StartedAt: base.Add(time.Minute)}},
			want:      map[string]string{"p1": "b"},
		},
		{
			name:      "stale session on disk loses to a newer local record",
			local:     []Session{{ID: "b", Project: "p1", StartedAt: base.Add(time.Minute)}},
			persisted: []Session{{ID: "a", Project: "p1", StartedAt: base}},
			want:      map[string]string{"p1": "b"},
		},
		{
			name:      "empty snapshot on disk is a no-op",
			local:     []Session{{ID: "a", Project: "p1", StartedAt: base}},
			persisted: nil,
			want:      map[string]string{"p1": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeSnapshots(tt.local, tt.persisted)
			if len(got) != len(tt.want) {
				t.Fatalf("MergeSnapshots() returned %d records, want %d: %+v", len(got), len(tt.want), got)
			}
			for _, s := range got {
				if want, ok := tt.want[s.Project]; !ok {
					t.Errorf("unexpected project %q in merge", s.Project)
				} else if s.ID != want {
					t.Errorf("project %q kept session %q, want %q", s.Project, s.ID, want)
				}
			}
		})
	}
}

// Same-session merge must keep the fresher in-memory state fields, not
// just the identity.
func TestMergeSnapshotsKeepsLocalState(t *testing.T) {
	started := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	local := []Session{{ID: "a", Project: "p1", State: StateStopped, StartedAt: started, EndedAt: started.Add(time.Hour)}}
	persisted := []Session{{ID: "a", Project: "p1", State: StateRunning, StartedAt: started}}

	got := MergeSnapshots(local, persisted)
	if len(got) != 1 || got[0].State != StateStopped || got[0].EndedAt.IsZero() {
		t.Errorf("MergeSnapshots() = %+v, want the stopped record", got)
	}
}

func TestStateFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	sf := NewStateFile(dir)
	if err := sf.Save([]Session{{ID: "a", Project: "p1"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, stateFileName)); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}

package session

import (
	"context"
	"testing"
	"time"
)

func TestPollerSweepsImmediately(t *testing.T) {
	m, fos, _ := newTestManager(t)
	sess, err := m.Launch("p1", "", false)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	delete(fos.alive, sess.PID)

	changes := make(chan Session, 1)
	p := NewPoller(m, time.Hour) // only the immediate sweep matters
	p.OnChange = func(s Session) { changes <- s }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case got := <-changes:
		if got.Project != "p1" || got.State != StateEnded {
			t.Errorf("OnChange got %+v", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not report the dead session")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}

func TestNewPollerDefaultInterval(t *testing.T) {
	p := NewPoller(nil, 0)
	if p.interval != DefaultPollInterval {
		t.Errorf("interval = %v, want %v", p.interval, DefaultPollInterval)
	}
	p = NewPoller(nil, time.Second)
	if p.interval != time.Second {
		t.Errorf("interval = %v, want 1s", p.interval)
	}
}

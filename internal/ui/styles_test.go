package ui

import "testing"

func TestStateStyle(t *testing.T) {
	tests := []struct {
		state string
		want  interface{}
	}{
		{"running", Green},
		{"starting", Teal},
		{"stopped", Amber},
		{"failed", Red},
		{"ended", DimGray},
		{"garbage", DimGray}, // unknown states render like ended
	}

	for _, tt := range tests {
		if got := StateStyle(tt.state).GetForeground(); got != tt.want {
			t.Errorf("StateStyle(%q) foreground = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestQuietModeToggle(t *testing.T) {
	SetQuietMode(true)
	if !Quiet() {
		t.Error("Quiet() = false after SetQuietMode(true)")
	}
	SetQuietMode(false)
	if Quiet() {
		t.Error("Quiet() = true after SetQuietMode(false)")
	}
}

package main

import "testing"

func TestTypedValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want interface{}
	}{
		{name: "bool true", raw: "true", want: true},
		{name: "bool false", raw: "false", want: false},
		{name: "integer", raw: "42", want: int64(42)},
		{name: "float", raw: "1.5", want: 1.5},
		{name: "string", raw: "konsole", want: "konsole"},
		{name: "path stays string", raw: "/home/user/projects", want: "/home/user/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typedValue(tt.raw); got != tt.want {
				t.Errorf("typedValue(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}

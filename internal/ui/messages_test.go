package ui

import "testing"

func TestCalculateColumnWidths(t *testing.T) {
	tests := []struct {
		name      string
		headers   []string
		rows      [][]string
		minWidths map[int]int
		maxWidths map[int]int
		want      []int
	}{
		{
			name:    "headers alone set the width",
			headers: []string{"PROJECT", "PID"},
			rows:    [][]string{{"app", "42"}},
			want:    []int{7, 3},
		},
		{
			name:    "widest cell wins over header",
			headers: []string{"NAME"},
			rows:    [][]string{{"a"}, {"a-much-longer-name"}},
			want:    []int{18},
		},
		{
			name:      "min width raises a narrow column",
			headers:   []string{"ST"},
			rows:      [][]string{{"ok"}},
			minWidths: map[int]int{0: 8},
			want:      []int{8},
		},
		{
			name:      "max width caps a wide column",
			headers:   []string{"DIR"},
			rows:      [][]string{{"/home/user/projects/very/deep/checkout"}},
			maxWidths: map[int]int{0: 10},
			want:      []int{10},
		},
		{
			name:    "short rows do not panic",
			headers: []string{"A", "B", "C"},
			rows:    [][]string{{"only-one"}},
			want:    []int{8, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.headers...)
			for _, row := range tt.rows {
				table.AddRow(row...)
			}
			for col, w := range tt.minWidths {
				table.SetMinWidth(col, w)
			}
			for col, w := range tt.maxWidths {
				table.SetMaxWidth(col, w)
			}

			got := table.calculateColumnWidths()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d widths, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("column %d width = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
		{"abcd", 3, "abc"},
	}

	for _, tt := range tests {
		if got := truncateWithEllipsis(tt.s, tt.width); got != tt.want {
			t.Errorf("truncateWithEllipsis(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"abcde", 5, "abcde"},
		{"abcdef", 5, "abcdef"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.s, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

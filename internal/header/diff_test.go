package header

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
		found    []string
		want     []string
	}{
		{
			name:     "identical lines collapse",
			expected: []string{"# a", "# b"},
			found:    []string{"# a", "# b"},
			want:     []string{"  # a", "  # b"},
		},
		{
			name:     "mismatching line shows both sides",
			expected: []string{"# a", "# b"},
			found:    []string{"# a", "# c"},
			want:     []string{"  # a", "- # b", "+ # c"},
		},
		{
			name:     "found shorter than expected",
			expected: []string{"# a", "# b", "# c"},
			found:    []string{"# a"},
			want:     []string{"  # a", "- # b", "- # c"},
		},
		{
			name:     "found longer than expected",
			expected: []string{"# a"},
			found:    []string{"# a", "# extra"},
			want:     []string{"  # a", "+ # extra"},
		},
		{
			name:     "nothing found",
			expected: []string{"# a"},
			found:    nil,
			want:     []string{"- # a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diff(tt.expected, tt.found); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Diff() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	lines := Lines()
	if len(lines) != 4 {
		t.Fatalf("template has %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if line == "" || line[0] != '#' {
			t.Fatalf("line %d is not a comment line: %q", i, line)
		}
	}
	if !isMarkerLine(lines[0]) {
		t.Fatalf("first template line is not a marker line: %q", lines[0])
	}
}

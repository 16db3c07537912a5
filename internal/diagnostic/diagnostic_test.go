package diagnostic

import (
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	d := New("input.m", "expected ']', got end of input", 1, 5, "f[1+")
	expected := "input.m:1:5 failure: expected ']', got end of input"
	if d.Error() != expected {
		t.Errorf("wrong header. expected=%q, got=%q", expected, d.Error())
	}
}

func TestRender(t *testing.T) {
	d := New("input.m", "unexpected '*' in expression", 2, 3, "1 +\n2 * * 3")
	got := d.Render()
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "input.m:2:3 failure: unexpected '*' in expression" {
		t.Errorf("wrong header line: %q", lines[0])
	}
	if lines[1] != "  2 * * 3" {
		t.Errorf("wrong excerpt line: %q", lines[1])
	}
	if lines[2] != "    ^" {
		t.Errorf("wrong caret line: %q", lines[2])
	}
}

func TestRenderCaretColumn(t *testing.T) {
	tests := []struct {
		name   string
		col    int
		source string
		caret  string
	}{
		{"first column", 1, "x $", "  ^"},
		{"mid line", 3, "x $", "    ^"},
		{"past end of line clamps", 99, "ab", "    ^"},
		{"zero clamps to one", 0, "ab", "  ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("t", "msg", 1, tt.col, tt.source)
			lines := strings.Split(d.Render(), "\n")
			caret := lines[len(lines)-1]
			if caret != tt.caret {
				t.Errorf("wrong caret line. expected=%q, got=%q", tt.caret, caret)
			}
		})
	}
}

func TestRenderLineOutOfRange(t *testing.T) {
	d := New("t", "msg", 9, 1, "one line only")
	if d.Render() != d.Error() {
		t.Errorf("out-of-range line must render the header only, got %q", d.Render())
	}
}

func TestRenderReplacesTabs(t *testing.T) {
	d := New("t", "msg", 1, 2, "\tx")
	lines := strings.Split(d.Render(), "\n")
	if strings.Contains(lines[1], "\t") {
		t.Errorf("excerpt must not contain tabs: %q", lines[1])
	}
}

package domain

import "testing"

func TestMessageLines(t *testing.T) {
	m := Message{Content: "one\r\ntwo\nthree"}
	got := m.Lines()
	if len(got) != 3 || got[0] != "one" || got[2] != "three" {
		t.Fatalf("unexpected lines: %#v", got)
	}

	empty := Message{}
	if lines := empty.Lines(); len(lines) != 1 || lines[0] != "" {
		t.Fatalf("empty message should yield a single empty line, got %#v", lines)
	}
}

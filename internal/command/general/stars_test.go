package general

import (
	"strings"
	"testing"
)

func TestStarCount(t *testing.T) {
	if got := starCount(1); got != "1 gold star" {
		t.Fatalf("got %q", got)
	}
	if got := starCount(3); got != "3 gold stars" {
		t.Fatalf("got %q", got)
	}
	if got := starCount(0); got != "0 gold stars" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatStarBoardOrdering(t *testing.T) {
	board := formatStarBoard(map[string]int{
		"user-a": 2,
		"user-b": 5,
		"user-c": 2,
	})

	lines := strings.Split(strings.TrimSpace(board), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "user-b") {
		t.Errorf("highest count should lead: %q", lines[1])
	}
	if !strings.Contains(lines[2], "user-a") || !strings.Contains(lines[3], "user-c") {
		t.Errorf("ties should break by user id: %q / %q", lines[2], lines[3])
	}
}

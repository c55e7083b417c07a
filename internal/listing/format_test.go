package listing

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0"},
		{-5, "-5"},
		{1, "1"},
		{999, "999"},
		{1000, "1000"},
		{1001, "1.00k"},
		{1500, "1.50k"},
		{12345, "12.35k"},
		{999999, "1000.00k"},
		{1500000, "1.50m"},
		{2500000000, "2.50b"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTruncateTitle(t *testing.T) {
	short := strings.Repeat("a", 85)
	if got := TruncateTitle(short); got != short {
		t.Errorf("Expected 85-char title verbatim, got %q", got)
	}

	long := strings.Repeat("a", 86)
	got := TruncateTitle(long)
	if utf8.RuneCountInString(got) != 88 {
		t.Errorf("Expected truncated title length 88, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
	if got[:85] != long[:85] {
		t.Error("Truncated title should keep the first 85 characters")
	}
}

func TestTruncateTitleMultibyte(t *testing.T) {
	long := strings.Repeat("é", 100)
	got := TruncateTitle(long)
	if utf8.RuneCountInString(got) != 88 {
		t.Errorf("Expected 88 runes, got %d", utf8.RuneCountInString(got))
	}
}

func TestTruncateBody(t *testing.T) {
	short := strings.Repeat("b", 500)
	if got := TruncateBody(short); got != short {
		t.Errorf("Expected 500-char body verbatim, got %d chars", len(got))
	}

	long := strings.Repeat("b", 501)
	got := TruncateBody(long)
	if !strings.HasPrefix(got, strings.Repeat("b", 500)) {
		t.Error("Truncated body should keep exactly the first 500 characters")
	}
	if strings.Count(got, "b") != 500 {
		t.Errorf("Expected exactly 500 body characters, got %d", strings.Count(got, "b"))
	}
	if !strings.HasSuffix(got, TruncationMarker) {
		t.Errorf("Expected truncation marker suffix, got %q", got)
	}
}

func TestSubredditDisplayForms(t *testing.T) {
	if got := DisplaySubreddit("golang"); got != "/r/golang" {
		t.Errorf("DisplaySubreddit = %q, want /r/golang", got)
	}
	if got := StripSubredditPrefix("r/golang"); got != "golang" {
		t.Errorf("StripSubredditPrefix = %q, want golang", got)
	}
	if got := StripSubredditPrefix("all"); got != "all" {
		t.Errorf("StripSubredditPrefix without prefix = %q, want all", got)
	}
}

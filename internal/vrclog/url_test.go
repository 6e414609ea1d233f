package vrclog

import "testing"

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url extra params", "https://youtube.com/watch?t=10&v=abc123", "abc123"},
		{"short url", "https://youtu.be/abc123", "abc123"},
		{"short url with query", "https://youtu.be/abc123?t=42", "abc123"},
		{"shorts", "https://www.youtube.com/shorts/abc123", "abc123"},
		{"embed", "https://www.youtube.com/embed/abc123", "abc123"},
		{"music subdomain", "https://music.youtube.com/watch?v=abc123", "abc123"},
		{"not youtube", "https://vimeo.com/12345", ""},
		{"resolved stream url", "https://r4.googlevideo.com/videoplayback?id=x", ""},
		{"bare host", "https://www.youtube.com", ""},
		{"garbage", "://not-a-url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractYouTubeID(tt.url); got != tt.want {
				t.Errorf("ExtractYouTubeID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	if got := WatchURL("abc123"); got != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("WatchURL = %q", got)
	}
	if got := WatchURL(""); got != "" {
		t.Errorf("WatchURL(\"\") = %q, want empty", got)
	}
}

func TestDurationParam(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"integer", "x https://host/v?dur=180 y", 180, true},
		{"fractional", "https://host/v?a=1&dur=95.7", 95.7, true},
		{"absent", "https://host/v?a=1", 0, false},
		{"no url", "dur=180 without a url", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := durationParam(tt.text)
			if tt.ok {
				if got == nil || *got != tt.want {
					t.Fatalf("durationParam(%q) = %v, want %v", tt.text, got, tt.want)
				}
				return
			}
			if got != nil {
				t.Fatalf("durationParam(%q) = %v, want nil", tt.text, *got)
			}
		})
	}
}

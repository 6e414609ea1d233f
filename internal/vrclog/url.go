package vrclog

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	anyURLPattern   = regexp.MustCompile(`https?://\S+`)
	durParamPattern = regexp.MustCompile(`[?&]dur=(\d+(?:\.\d+)?)`)
)

// ExtractYouTubeID returns the video id embedded in a YouTube URL, or ""
// when the URL does not identify a YouTube video. Recognized shapes:
// youtu.be/<id>, youtube.com/watch?v=<id>, youtube.com/shorts/<id>,
// youtube.com/embed/<id>.
func ExtractYouTubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Host)

	if strings.Contains(host, "youtu.be") {
		if parts := splitPath(u.Path); len(parts) > 0 {
			return parts[0]
		}
		return ""
	}
	if strings.Contains(host, "youtube.com") {
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		parts := splitPath(u.Path)
		if len(parts) >= 2 && (parts[0] == "shorts" || parts[0] == "embed") {
			return parts[1]
		}
	}
	return ""
}

// WatchURL returns the canonical watch page for a YouTube video id.
func WatchURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + videoID
}

// durationParam scans text for a URL carrying a dur= query parameter and
// returns the parsed duration in seconds. VRChat's resolved stream URLs
// embed the video duration this way.
func durationParam(text string) *float64 {
	rawURL := anyURLPattern.FindString(text)
	if rawURL == "" {
		return nil
	}
	m := durParamPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return nil
	}
	dur, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &dur
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

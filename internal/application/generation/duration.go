package generation

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultAudioSeconds = 8
	maxAudioSeconds     = 30
)

var (
	clockPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	secondsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(m|min|minutes?|s|sec|secs|seconds?)?\b`)
)

// durationSeconds reads a loose duration like "30 seconds", "1 min" or "0:45", clamped to the audio model limit.
func durationSeconds(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	seconds := 0

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		mins, _ := strconv.Atoi(m[1])
		secs, _ := strconv.Atoi(m[2])
		seconds = mins*60 + secs
	} else if m := secondsPattern.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		if strings.HasPrefix(m[2], "m") {
			v *= 60
		}
		seconds = int(v)
	}

	switch {
	case seconds <= 0:
		return defaultAudioSeconds
	case seconds > maxAudioSeconds:
		return maxAudioSeconds
	default:
		return seconds
	}
}

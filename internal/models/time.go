package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime renders a duration in seconds as "M:SS". Negative input is
// clamped to zero.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ParseTime parses "M:SS" or a bare integer count of seconds. Empty input
// parses to 0.
func ParseTime(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	parts := strings.Split(text, ":")
	switch len(parts) {
	case 1:
		secs, err := strconv.Atoi(parts[0])
		if err != nil || secs < 0 {
			return 0, fmt.Errorf("Invalid duration %q", text)
		}
		return secs, nil
	case 2:
		mins, err := strconv.Atoi(parts[0])
		if err != nil || mins < 0 {
			return 0, fmt.Errorf("Invalid duration %q", text)
		}
		secs, err := strconv.Atoi(parts[1])
		if err != nil || secs < 0 {
			return 0, fmt.Errorf("Invalid duration %q", text)
		}
		return mins*60 + secs, nil
	default:
		return 0, fmt.Errorf("Invalid duration %q", text)
	}
}

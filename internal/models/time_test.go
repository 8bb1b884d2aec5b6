package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:00", FormatTime(0))
	assert.Equal(t, "0:05", FormatTime(5))
	assert.Equal(t, "1:00", FormatTime(60))
	assert.Equal(t, "5:30", FormatTime(330))
	assert.Equal(t, "60:00", FormatTime(3600))
	assert.Equal(t, "0:00", FormatTime(-10))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"5:30", 330},
		{"125", 125},
		{"0:59", 59},
		{"10:00", 600},
		{"0", 0},
	}
	for _, tt := range tests {
		got, err := ParseTime(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "1:2:3", "5:xx", "-10", "1:-5"} {
		_, err := ParseTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// formatTime(parseTime(s)) == s for well-formed M:SS with SS < 60.
	for _, s := range []string{"0:00", "0:59", "5:30", "12:05", "90:00"} {
		secs, err := ParseTime(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTime(secs))
	}

	// And the other direction over a spread of second counts.
	for secs := 0; secs < 4000; secs += 37 {
		back, err := ParseTime(FormatTime(secs))
		require.NoError(t, err, fmt.Sprintf("seconds %d", secs))
		assert.Equal(t, secs, back)
	}
}

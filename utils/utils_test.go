package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderImageEmbedsTimestamp(t *testing.T) {
	url := PlaceholderImage()
	assert.Regexp(t, regexp.MustCompile(`^https://picsum\.photos/seed/\d+/600/400$`), url)
}

func TestToday(t *testing.T) {
	got, err := time.Parse(DateLayout, Today())
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, 48*time.Hour)
}

func TestExcerpt(t *testing.T) {
	t.Run("short content untouched", func(t *testing.T) {
		assert.Equal(t, "short", Excerpt("short", 140))
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		long := ""
		for range 30 {
			long += "abcdefghij"
		}
		got := Excerpt(long, 140)
		assert.Len(t, got, 143)
		assert.Equal(t, "...", got[140:])
	})
}

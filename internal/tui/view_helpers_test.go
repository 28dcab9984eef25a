package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "bookings", fitText("bookings", 20))
	assert.Equal(t, "book...", fitText("bookings", 7))
	assert.Equal(t, "bo", fitText("bookings", 2))
	assert.Equal(t, "ÄÖ...", fitText("ÄÖÜäöü", 5))
	assert.Equal(t, "bookings", fitText("bookings", 0))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "never", formatTime(time.Time{}))
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
	assert.Equal(t, "2026-03-04 05:06:07", formatTime(at))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("DCMS SYNC", "", "r: refresh")

	assert.Contains(t, page, "DCMS SYNC")
	assert.Contains(t, page, "r: refresh  q: quit")
	assert.Contains(t, page, "-")
}

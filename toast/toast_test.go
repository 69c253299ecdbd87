package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStackExpiry(t *testing.T) {
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	s := NewStack(time.Second)

	s.Push(now, InfoNotice("Wallet disconnected"))
	s.Push(now.Add(500*time.Millisecond), SuccessNotice("Connected to 0x1234...7890"))

	visible := s.Visible(now.Add(900 * time.Millisecond))
	assert.Len(t, visible, 2)
	assert.Equal(t, Info, visible[0].Level)

	visible = s.Visible(now.Add(1200 * time.Millisecond))
	assert.Len(t, visible, 1)
	assert.Equal(t, "Connected to 0x1234...7890", visible[0].Text)

	assert.True(t, s.Prune(now.Add(1200*time.Millisecond)))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Prune(now.Add(2*time.Second)))
	assert.Equal(t, 0, s.Len())
}

func TestStackVisibleCap(t *testing.T) {
	now := time.Now()
	s := NewStack(0)
	for _, text := range []string{"a", "b", "c", "d"} {
		s.Push(now, ErrorNotice(text))
	}

	visible := s.Visible(now)
	assert.Len(t, visible, 3)
	assert.Equal(t, "b", visible[0].Text)
	assert.Equal(t, "d", visible[2].Text)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
}

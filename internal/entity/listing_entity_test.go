package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveExpiration(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	explicit := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	days := 30

	t.Run("explicit date wins over auto days", func(t *testing.T) {
		l := &Listing{CreatedAt: created, ExpiresAt: &explicit, AutoExpireDays: &days}
		got, ok := l.EffectiveExpiration()
		require.True(t, ok)
		assert.Equal(t, explicit, got)
	})

	t.Run("auto days count from creation", func(t *testing.T) {
		l := &Listing{CreatedAt: created, AutoExpireDays: &days}
		got, ok := l.EffectiveExpiration()
		require.True(t, ok)
		assert.Equal(t, created.AddDate(0, 0, 30), got)
	})

	t.Run("neither set never expires", func(t *testing.T) {
		l := &Listing{CreatedAt: created}
		_, ok := l.EffectiveExpiration()
		assert.False(t, ok)
	})

	t.Run("zero auto days never expires", func(t *testing.T) {
		zero := 0
		l := &Listing{CreatedAt: created, AutoExpireDays: &zero}
		_, ok := l.EffectiveExpiration()
		assert.False(t, ok)
	})
}

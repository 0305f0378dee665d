package learning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nima/farsiflash/internal/learning"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		title string
	}{
		{0, 1, "Beginner"},
		{99, 1, "Beginner"},
		{100, 2, "Newcomer"},
		{250, 3, "Student"},
		{1500, 5, "Explorer"},
		{12000, 10, "Sage"},
		{999999, 10, "Sage"},
		{-50, 1, "Beginner"},
	}

	for _, tt := range tests {
		l := learning.LevelFor(tt.xp)
		assert.Equal(t, tt.level, l.Level, "xp=%d", tt.xp)
		assert.Equal(t, tt.title, l.Title, "xp=%d", tt.xp)
		assert.NotEmpty(t, l.TitlePersian)
		assert.NotEmpty(t, l.TitlePhonetic)
	}
}

func TestProgressToNext(t *testing.T) {
	assert.Equal(t, 0, learning.ProgressToNext(0))
	assert.Equal(t, 50, learning.ProgressToNext(50), "halfway from 0 to 100")
	assert.Equal(t, 0, learning.ProgressToNext(100), "fresh tier starts at zero")
	assert.Equal(t, 50, learning.ProgressToNext(175), "halfway from 100 to 250")
	assert.Equal(t, 100, learning.ProgressToNext(12000), "top tier pins at 100")
	assert.Equal(t, 100, learning.ProgressToNext(50000))
	assert.Equal(t, 0, learning.ProgressToNext(-10))
}

func TestLevels_AscendingThresholds(t *testing.T) {
	ladder := learning.Levels()
	assert.Len(t, ladder, 10)
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, ladder[i].MinXP, ladder[i-1].MinXP)
		assert.Equal(t, i+1, ladder[i].Level)
	}
}

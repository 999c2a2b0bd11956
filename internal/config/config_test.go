package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	Setup()
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 64, Settings.Search.TTSize)
	assert.Equal(t, 100, Settings.Eval.PawnValue)
	assert.True(t, Settings.Book.UseBook)
	assert.NotEmpty(t, Settings.Book.TierPriority)
}

func TestStringRendersAllSections(t *testing.T) {
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search Config")
	assert.Contains(t, s, "Eval Config")
	assert.Contains(t, s, "Book Config")
}

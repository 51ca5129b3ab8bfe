package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haveanidea/api/internal/models"
)

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.SeedDemoData())

	var first int64
	require.NoError(t, d.db.Model(&models.Idea{}).Count(&first).Error)
	assert.Greater(t, first, int64(0))

	require.NoError(t, d.SeedDemoData())

	var second int64
	require.NoError(t, d.db.Model(&models.Idea{}).Count(&second).Error)
	assert.Equal(t, first, second, "seeding a non-empty table is a no-op")

	ideas, err := d.ListIdeas(IdeaFilter{})
	require.NoError(t, err)
	for _, idea := range ideas {
		assert.NotEmpty(t, idea.DecodeMessages(), "seeded rows carry a valid message history")
	}
}

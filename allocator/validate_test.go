package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {

	a, err := New(testBase, testTotal)
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	_, err = a.Allocate(10, true)
	require.NoError(t, err)
	_, err = a.Allocate(100000, true)
	require.NoError(t, err)
	a.Available()
	require.NoError(t, a.Validate())

	t.Run("overlap", func(t *testing.T) {
		a, _ := New(testBase, testTotal)
		a.blocks.ReplaceOrInsert(&Block{address: testBase, size: 64})
		a.blocks.ReplaceOrInsert(&Block{address: testBase + 32, size: 64})
		assert.ErrorIs(t, a.Validate(), ErrCorrupted)
	})

	t.Run("out of range", func(t *testing.T) {
		a, _ := New(testBase, testTotal)
		a.blocks.ReplaceOrInsert(&Block{address: testBase + testTotal - 8, size: 16})
		assert.ErrorIs(t, a.Validate(), ErrCorrupted)
	})

	t.Run("strict not aligned", func(t *testing.T) {
		a, _ := New(testBase, testTotal)
		a.blocks.ReplaceOrInsert(&Block{address: testBase + 64, size: 8, strict: true})
		assert.ErrorIs(t, a.Validate(), ErrCorrupted)
	})

	t.Run("stale stats", func(t *testing.T) {
		a, _ := New(testBase, testTotal)
		a.blocks.ReplaceOrInsert(&Block{address: testBase, size: 64})
		assert.ErrorIs(t, a.Validate(), ErrCorrupted)
	})
}

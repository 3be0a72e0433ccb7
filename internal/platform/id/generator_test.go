package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_ProducesDistinctUUIDs(t *testing.T) {
	gen := NewUUIDGenerator()
	first, second := gen.NewID(), gen.NewID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestStatic(t *testing.T) {
	assert.Equal(t, "fixed", Static("fixed").NewID())
}

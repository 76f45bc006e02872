package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_ValueAndScan(t *testing.T) {
	meta := JSON{"entity": "feedback", "entity_id": "7"}

	v, err := meta.Value()
	require.NoError(t, err)

	var got JSON
	require.NoError(t, got.Scan(v))
	assert.Equal(t, "feedback", got["entity"])
	assert.Equal(t, "7", got["entity_id"])
}

func TestJSON_EmptyIsNull(t *testing.T) {
	v, err := JSON{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	got := JSON{"stale": true}
	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)
}

func TestJSON_ScanRejectsUnknownTypes(t *testing.T) {
	var got JSON
	assert.Error(t, got.Scan(42))
	assert.Error(t, got.Scan("not json"))
}

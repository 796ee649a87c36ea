package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidKind(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, ValidKind(k), "kind %q", k)
	}
	assert.False(t, ValidKind(KindAny), "the filter sentinel is not storable")
	assert.False(t, ValidKind(Kind("wire")))
}

func TestTimestampFormat(t *testing.T) {
	ts, err := time.Parse(TimestampFormat, "2024-01-02 15:04:05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), ts)

	_, err = time.Parse(TimestampFormat, "2024-01-02")
	assert.Error(t, err)
}

package redisx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutAddr(t *testing.T) {
	assert.Nil(t, New(""))
}

func TestNewAppliesTimeout(t *testing.T) {
	r := New("localhost:6379")
	require.NotNil(t, r)
	defer r.Close()

	assert.Equal(t, 2*time.Second, r.Options().ReadTimeout)
	assert.Equal(t, 2*time.Second, r.Options().WriteTimeout)
}

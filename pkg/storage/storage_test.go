package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_LocalFS(t *testing.T) {
	client, err := NewClient(&Config{
		Type:     LOCAL,
		SavePath: t.TempDir(),
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_Memory(t *testing.T) {
	client, err := NewClient(&Config{Type: Memory})
	require.NoError(t, err)

	_, err = client.SendContent("a/b.md", []byte("x"), time.Time{})
	require.NoError(t, err)
	assert.True(t, client.IsExist("a/b.md"))
}

func TestNewClient_InvalidType(t *testing.T) {
	_, err := NewClient(&Config{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewClient(nil)
	assert.Error(t, err)
}

package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsBackend(t *testing.T) {
	p, err := New(&Config{Backend: "openai", APIKey: "sk-test"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	p, err = New(&Config{Backend: "gemini"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())

	p, err = New(&Config{Backend: "ollama"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(&Config{Backend: "palm"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = New(nil, nil)
	assert.Error(t, err)
}

func TestNew_OpenAIRequiresKey(t *testing.T) {
	_, err := New(&Config{Backend: "openai"}, nil)
	assert.Error(t, err)
}

func TestStubsReturnEmpty(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{"gemini", "ollama"} {
		p, err := New(&Config{Backend: backend}, nil)
		require.NoError(t, err)
		assert.Empty(t, p.Summarize(ctx, "some note", "en"))
		assert.Empty(t, p.ExtractTags(ctx, "some note"))
		assert.Empty(t, p.DigestMany(ctx, []string{"a", "b"}))
	}
}

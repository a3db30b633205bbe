package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTodoPayload(t *testing.T) {
	payload, err := decodeTodoPayload([]byte(`{"title":"Buy milk"}`))
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", payload.Title)
	assert.Nil(t, payload.Description)
	assert.False(t, payload.completed())

	payload, err = decodeTodoPayload([]byte(`{"title":"t","description":null,"completed":true}`))
	require.NoError(t, err)
	assert.Nil(t, payload.Description)
	assert.True(t, payload.completed())

	payload, err = decodeTodoPayload([]byte(`{"title":"t","description":""}`))
	require.NoError(t, err)
	require.NotNil(t, payload.Description)
	assert.Empty(t, *payload.Description)
}

func TestDecodeTodoPayload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPath string
	}{
		{"missing title", `{}`, "body"},
		{"null title", `{"title":null}`, "body.title"},
		{"bool completed as string", `{"title":"t","completed":"true"}`, "body.completed"},
		{"array body", `[]`, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTodoPayload([]byte(tt.body))
			var pe *PayloadError
			require.True(t, errors.As(err, &pe), "expected PayloadError, got %v", err)
			assert.Equal(t, tt.wantPath, pe.Path)
			assert.NotEmpty(t, pe.Message)
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "body", jsonPointerToPath(""))
	assert.Equal(t, "body.title", jsonPointerToPath("/title"))
	assert.Equal(t, "body.a.0", jsonPointerToPath("/a/0"))
}

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Text(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "auth")
	assert.Contains(t, out, "Authentication Suite")
	assert.Contains(t, out, "full")
	assert.Contains(t, out, "Full Integration Suite")
}

func TestList_JSON(t *testing.T) {
	out, err := executeCommand(t, "list", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []suiteInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Data, 12)
	for _, info := range resp.Data {
		assert.NotEmpty(t, info.Name)
		assert.Positive(t, info.Steps)
	}
}

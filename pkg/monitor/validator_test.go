package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedwatch/pkg/domain"
)

const feedURL = "https://acme.dev/.well-known/mcp.llmfeed.json"

func TestValidate_CleanManifest(t *testing.T) {
	doc := []byte(`{
		"feed_type": "mcp",
		"metadata": {"title": "Acme", "origin": "https://acme.dev"},
		"capabilities": [{"name": "search", "path": "/api/search"}],
		"trust": {"signed_blocks": ["metadata", "capabilities"]}
	}`)

	res := Validate(doc, feedURL)
	assert.True(t, res.Valid)
	assert.Equal(t, 100, res.Score)
	assert.Zero(t, res.ErrorCount)
	assert.Zero(t, res.WarningCount)
	assert.Equal(t, 1, res.CapabilitiesCount)
	assert.True(t, res.Consistent())
}

func TestValidate_InvalidJSON(t *testing.T) {
	res := Validate([]byte("not json"), feedURL)
	assert.False(t, res.Valid)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, 75, res.Score)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "INVALID_JSON", res.Issues[0].Code)
}

func TestValidate_MissingFields(t *testing.T) {
	res := Validate([]byte(`{}`), feedURL)

	codes := make([]string, 0, len(res.Issues))
	for _, iss := range res.Issues {
		codes = append(codes, iss.Code)
	}
	assert.Contains(t, codes, "MISSING_FEED_TYPE")
	assert.Contains(t, codes, "MISSING_METADATA")
	assert.Contains(t, codes, "NO_CAPABILITIES")
	assert.Contains(t, codes, "UNSIGNED_FEED")

	assert.False(t, res.Valid)
	// 2 errors and 1 warning: 100 - 2*25 - 10
	assert.Equal(t, 2, res.ErrorCount)
	assert.Equal(t, 1, res.WarningCount)
	assert.Equal(t, 40, res.Score)
	assert.True(t, res.Consistent())
}

func TestValidate_OriginMismatch(t *testing.T) {
	doc := []byte(`{
		"feed_type": "mcp",
		"metadata": {"title": "Acme", "origin": "https://other.example.com"},
		"capabilities": [{"name": "search", "path": "/api/search"}],
		"signature": {"alg": "ed25519"}
	}`)

	res := Validate(doc, feedURL)
	assert.True(t, res.Valid, "origin mismatch is a warning, not an error")
	assert.Equal(t, 90, res.Score)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "ORIGIN_MISMATCH", res.Issues[0].Code)
	assert.Equal(t, domain.IssueWarning, res.Issues[0].Type)
	assert.NotEmpty(t, res.Issues[0].Suggestion)
}

func TestValidate_InvalidCapability(t *testing.T) {
	doc := []byte(`{
		"feed_type": "mcp",
		"metadata": {"title": "Acme", "origin": "https://acme.dev"},
		"capabilities": [{"name": "search"}, {"name": "ask", "path": "/api/ask"}],
		"trust": {}
	}`)

	res := Validate(doc, feedURL)
	assert.False(t, res.Valid)
	assert.Equal(t, 2, res.CapabilitiesCount)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "INVALID_CAPABILITY", res.Issues[0].Code)
	assert.Equal(t, "capabilities[0]", res.Issues[0].Path)
}

func TestValidate_ScoreFloor(t *testing.T) {
	// broken manifest with every class of problem must not go negative
	res := Validate([]byte(`{"capabilities":[{},{},{},{}]}`), feedURL)
	assert.GreaterOrEqual(t, res.Score, 0)
	assert.False(t, res.Valid)
}

func TestValidate_InfoIssuesDoNotAffectScore(t *testing.T) {
	doc := []byte(`{
		"feed_type": "mcp",
		"metadata": {"title": "Acme", "origin": "https://acme.dev"},
		"capabilities": [{"name": "search", "path": "/api/search"}]
	}`)

	res := Validate(doc, feedURL)
	assert.True(t, res.Valid)
	assert.Equal(t, 100, res.Score, "unsigned feed note is informational")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "UNSIGNED_FEED", res.Issues[0].Code)
	assert.Equal(t, domain.IssueInfo, res.Issues[0].Type)
}

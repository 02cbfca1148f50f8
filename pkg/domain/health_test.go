package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationResult_DerivesCounts(t *testing.T) {
	issues := []ValidationIssue{
		{Type: IssueError, Code: "MISSING_FEED_TYPE", Message: "feed_type is required"},
		{Type: IssueError, Code: "MISSING_ORIGIN", Message: "metadata.origin is required"},
		{Type: IssueWarning, Code: "NO_CAPABILITIES", Message: "no capabilities declared"},
		{Type: IssueInfo, Code: "UNSIGNED_FEED", Message: "feed carries no signature"},
	}

	res := NewValidationResult(issues, 40, 0)

	assert.Equal(t, 2, res.ErrorCount)
	assert.Equal(t, 1, res.WarningCount, "info issues are not warnings")
	assert.False(t, res.Valid)
	assert.Equal(t, 40, res.Score)
	assert.True(t, res.Consistent())
}

func TestNewValidationResult_NoErrorsIsValid(t *testing.T) {
	res := NewValidationResult([]ValidationIssue{
		{Type: IssueWarning, Code: "MISSING_TITLE", Message: "metadata.title is missing"},
	}, 90, 2)

	assert.True(t, res.Valid)
	assert.Equal(t, 0, res.ErrorCount)
	assert.Equal(t, 1, res.WarningCount)
}

func TestValidationResult_Consistent_DetectsDivergence(t *testing.T) {
	res := ValidationResult{
		ErrorCount: 3, // claims three errors
		Issues: []ValidationIssue{
			{Type: IssueError, Code: "INVALID_JSON", Message: "document is not valid JSON"},
		},
	}
	assert.False(t, res.Consistent())
}

func TestValidationResult_IssuesOfType(t *testing.T) {
	res := NewValidationResult([]ValidationIssue{
		{Type: IssueError, Code: "A"},
		{Type: IssueWarning, Code: "B"},
		{Type: IssueError, Code: "C"},
	}, 40, 0)

	errs := res.IssuesOfType(IssueError)
	assert.Len(t, errs, 2)
	assert.Equal(t, "A", errs[0].Code, "declaration order preserved")
	assert.Equal(t, "C", errs[1].Code)
}

func TestValidationResult_Suggestions(t *testing.T) {
	res := NewValidationResult([]ValidationIssue{
		{Type: IssueError, Code: "A", Suggestion: "add a feed_type field"},
		{Type: IssueWarning, Code: "B"},
		{Type: IssueWarning, Code: "C", Suggestion: "declare at least one capability"},
	}, 40, 0)

	assert.Equal(t, []string{"add a feed_type field", "declare at least one capability"}, res.Suggestions())
}

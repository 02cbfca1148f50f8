package monitor

import (
	"encoding/json"
	"fmt"

	"feedwatch/pkg/domain"
)

// scoring weights for validation issues
const (
	errorPenalty   = 25
	warningPenalty = 10
)

// manifest is the subset of an llmfeed document the validator inspects
type manifest struct {
	FeedType string `json:"feed_type"`
	Metadata *struct {
		Title  string `json:"title"`
		Origin string `json:"origin"`
	} `json:"metadata"`
	Capabilities []struct {
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"capabilities"`
	Trust     map[string]interface{} `json:"trust"`
	Signature map[string]interface{} `json:"signature"`
}

// Validate checks a fetched feed document against the llmfeed manifest
// shape and produces a scored result. Signature presence is noted as info
// only; cryptographic verification is out of scope here.
func Validate(data []byte, feedURL string) domain.ValidationResult {
	var issues []domain.ValidationIssue

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		issues = append(issues, domain.ValidationIssue{
			Type:       domain.IssueError,
			Code:       "INVALID_JSON",
			Message:    "document is not valid JSON",
			Suggestion: "publish the feed as a well-formed JSON document",
		})
		return domain.NewValidationResult(issues, scoreFor(issues), 0)
	}

	if m.FeedType == "" {
		issues = append(issues, domain.ValidationIssue{
			Type:       domain.IssueError,
			Code:       "MISSING_FEED_TYPE",
			Message:    "feed_type is missing",
			Path:       "feed_type",
			Suggestion: "declare a feed_type such as \"mcp\" or \"export\"",
		})
	}

	switch {
	case m.Metadata == nil:
		issues = append(issues, domain.ValidationIssue{
			Type:       domain.IssueError,
			Code:       "MISSING_METADATA",
			Message:    "metadata block is missing",
			Path:       "metadata",
			Suggestion: "add a metadata block with title and origin",
		})
	default:
		if m.Metadata.Title == "" {
			issues = append(issues, domain.ValidationIssue{
				Type:    domain.IssueWarning,
				Code:    "MISSING_TITLE",
				Message: "metadata.title is missing",
				Path:    "metadata.title",
			})
		}
		switch {
		case m.Metadata.Origin == "":
			issues = append(issues, domain.ValidationIssue{
				Type:       domain.IssueError,
				Code:       "MISSING_ORIGIN",
				Message:    "metadata.origin is missing",
				Path:       "metadata.origin",
				Suggestion: "set metadata.origin to the canonical feed URL",
			})
		case !sameDomain(m.Metadata.Origin, feedURL):
			issues = append(issues, domain.ValidationIssue{
				Type:       domain.IssueWarning,
				Code:       "ORIGIN_MISMATCH",
				Message:    "metadata.origin does not match the feed's host",
				Path:       "metadata.origin",
				Suggestion: "set metadata.origin to the canonical feed URL",
			})
		}
	}

	if len(m.Capabilities) == 0 {
		issues = append(issues, domain.ValidationIssue{
			Type:       domain.IssueWarning,
			Code:       "NO_CAPABILITIES",
			Message:    "feed declares no capabilities",
			Path:       "capabilities",
			Suggestion: "declare at least one capability so agents can use the feed",
		})
	}
	for i, capability := range m.Capabilities {
		if capability.Name == "" || capability.Path == "" {
			issues = append(issues, domain.ValidationIssue{
				Type:    domain.IssueError,
				Code:    "INVALID_CAPABILITY",
				Message: "capability entry is missing name or path",
				Path:    fmt.Sprintf("capabilities[%d]", i),
			})
		}
	}

	if m.Trust == nil && m.Signature == nil {
		issues = append(issues, domain.ValidationIssue{
			Type:       domain.IssueInfo,
			Code:       "UNSIGNED_FEED",
			Message:    "feed carries no trust or signature block",
			Suggestion: "sign the feed to let agents verify its provenance",
		})
	}

	return domain.NewValidationResult(issues, scoreFor(issues), len(m.Capabilities))
}

// scoreFor computes the 0-100 score from issue severities
func scoreFor(issues []domain.ValidationIssue) int {
	score := 100
	for _, iss := range issues {
		switch iss.Type {
		case domain.IssueError:
			score -= errorPenalty
		case domain.IssueWarning:
			score -= warningPenalty
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// sameDomain compares the host parts of two URLs
func sameDomain(a, b string) bool {
	da, db := domain.DomainOf(a), domain.DomainOf(b)
	return da != "" && da == db
}


package domain

import "time"

// IssueType classifies a validation issue by severity
type IssueType string

// issue severities, ordered from most to least severe
const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
	IssueInfo    IssueType = "info"
)

// ValidationIssue is a single problem found in a feed document
type ValidationIssue struct {
	Type       IssueType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Path       string    `json:"path,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// ValidationResult is the outcome of validating one feed document.
// Issues is the source of truth; ErrorCount and WarningCount are derived
// from it at construction time.
type ValidationResult struct {
	Valid             bool              `json:"valid"`
	Score             int               `json:"score"`
	ErrorCount        int               `json:"error_count"`
	WarningCount      int               `json:"warning_count"`
	Issues            []ValidationIssue `json:"issues"`
	CapabilitiesCount int               `json:"capabilities_count"`
}

// NewValidationResult builds a result with counts derived from the issue
// list, keeping them consistent by construction
func NewValidationResult(issues []ValidationIssue, score, capabilities int) ValidationResult {
	res := ValidationResult{
		Score:             score,
		Issues:            issues,
		CapabilitiesCount: capabilities,
	}
	for _, iss := range issues {
		switch iss.Type {
		case IssueError:
			res.ErrorCount++
		case IssueWarning:
			res.WarningCount++
		}
	}
	res.Valid = res.ErrorCount == 0
	return res
}

// Consistent reports whether the stored counts match the issue list,
// for results that came from outside NewValidationResult
func (v *ValidationResult) Consistent() bool {
	errors, warnings := 0, 0
	for _, iss := range v.Issues {
		switch iss.Type {
		case IssueError:
			errors++
		case IssueWarning:
			warnings++
		}
	}
	return v.ErrorCount == errors && v.WarningCount == warnings
}

// IssuesOfType returns issues matching the given severity, in declaration order
func (v *ValidationResult) IssuesOfType(t IssueType) []ValidationIssue {
	var out []ValidationIssue
	for _, iss := range v.Issues {
		if iss.Type == t {
			out = append(out, iss)
		}
	}
	return out
}

// Suggestions returns non-empty suggestions in issue declaration order
func (v *ValidationResult) Suggestions() []string {
	var out []string
	for _, iss := range v.Issues {
		if iss.Suggestion != "" {
			out = append(out, iss.Suggestion)
		}
	}
	return out
}

// HealthCheck is one point-in-time observation of a feed, immutable once recorded
type HealthCheck struct {
	ID             int64             `json:"id"`
	FeedID         int64             `json:"feed_id"`
	Timestamp      time.Time         `json:"timestamp"`
	Reachable      bool              `json:"reachable"`
	HTTPStatus     *int              `json:"http_status,omitempty"`
	ResponseTimeMs *int64            `json:"response_time_ms,omitempty"`
	Validation     *ValidationResult `json:"validation,omitempty"`
	Errors         []string          `json:"errors,omitempty"`
}

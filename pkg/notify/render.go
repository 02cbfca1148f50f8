package notify

import (
	"fmt"
	"strings"

	"feedwatch/pkg/domain"
)

// maxDMURLLen bounds the feed URL inside a Twitter DM
const maxDMURLLen = 50

// Message is a rendered channel-specific payload
type Message struct {
	Subject string
	Body    string
}

// RenderContext carries everything the renderers need. Rendering is
// deterministic: identical contexts produce byte-identical messages.
type RenderContext struct {
	Feed      domain.FeedSource
	Check     domain.HealthCheck
	ReportURL string
}

// renderGitHub produces a Markdown issue body with a per-severity issue
// breakdown, a suggestions block, opt-out instructions and a trailing score
func renderGitHub(rc RenderContext) Message {
	v := rc.Check.Validation

	var b strings.Builder
	fmt.Fprintf(&b, "Hello! Automated monitoring detected issues with the llmfeed published at %s.\n", rc.Feed.URL)

	if v == nil || len(v.Issues) == 0 {
		b.WriteString("\nNo critical issues were found, but the feed did not pass validation cleanly.\n")
	} else {
		if errors := v.IssuesOfType(domain.IssueError); len(errors) > 0 {
			b.WriteString("\n### Errors\n")
			for _, iss := range errors {
				fmt.Fprintf(&b, "- **%s**: %s\n", iss.Code, iss.Message)
			}
		}
		if warnings := v.IssuesOfType(domain.IssueWarning); len(warnings) > 0 {
			b.WriteString("\n### Warnings\n")
			for _, iss := range warnings {
				fmt.Fprintf(&b, "- **%s**: %s\n", iss.Code, iss.Message)
			}
		}
		if suggestions := v.Suggestions(); len(suggestions) > 0 {
			b.WriteString("\n### Suggestions\n")
			for _, s := range suggestions {
				fmt.Fprintf(&b, "- %s\n", s)
			}
		}
	}

	if rc.ReportURL != "" {
		fmt.Fprintf(&b, "\nFull report: %s\n", rc.ReportURL)
	}

	b.WriteString("\nTo stop receiving these notifications, disallow the `LLMFeed-Health-Monitor` user agent in your robots.txt or close this issue with an opt-out comment.\n")
	fmt.Fprintf(&b, "\nValidation score: %d/100\n", scoreOf(v))

	return Message{
		Subject: "LLMFeed validation issues detected",
		Body:    b.String(),
	}
}

// renderEmail carries the same information as the issue body in plain text
func renderEmail(rc RenderContext) Message {
	v := rc.Check.Validation

	var b strings.Builder
	fmt.Fprintf(&b, "Hello! Automated monitoring detected issues with the llmfeed published at %s.\n", rc.Feed.URL)

	if v == nil || len(v.Issues) == 0 {
		b.WriteString("\nNo critical issues were found, but the feed did not pass validation cleanly.\n")
	} else {
		for _, iss := range v.IssuesOfType(domain.IssueError) {
			fmt.Fprintf(&b, "\n✗ %s: %s", iss.Code, iss.Message)
		}
		for _, iss := range v.IssuesOfType(domain.IssueWarning) {
			fmt.Fprintf(&b, "\n! %s: %s", iss.Code, iss.Message)
		}
		b.WriteString("\n")
		if suggestions := v.Suggestions(); len(suggestions) > 0 {
			b.WriteString("\nSuggestions:\n")
			for _, s := range suggestions {
				fmt.Fprintf(&b, "- %s\n", s)
			}
		}
	}

	if rc.ReportURL != "" {
		fmt.Fprintf(&b, "\nFull report: %s\n", rc.ReportURL)
	}

	b.WriteString("\nTo stop receiving these notifications, disallow the LLMFeed-Health-Monitor user agent in your robots.txt or reply to this email.\n")
	fmt.Fprintf(&b, "\nValidation score: %d/100\n", scoreOf(v))

	return Message{
		Subject: fmt.Sprintf("Issues detected with your llmfeed at %s", rc.Feed.Domain),
		Body:    b.String(),
	}
}

// renderTwitter produces a single hard length-bounded line with the first
// available suggestion and the overall score
func renderTwitter(rc RenderContext) Message {
	v := rc.Check.Validation

	// truncate on rune boundaries, IDN paths carry multi-byte characters
	feedURL := rc.Feed.URL
	if runes := []rune(feedURL); len(runes) > maxDMURLLen {
		feedURL = string(runes[:maxDMURLLen]) + "..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Heads up: your llmfeed at %s scored %d/100 in validation.", feedURL, scoreOf(v))
	if v != nil {
		if suggestions := v.Suggestions(); len(suggestions) > 0 {
			fmt.Fprintf(&b, " Tip: %s", suggestions[0])
		}
	}

	return Message{Body: b.String()}
}

func scoreOf(v *domain.ValidationResult) int {
	if v == nil {
		return 0
	}
	return v.Score
}

// Render maps a channel to its rendering strategy
func Render(channel domain.Channel, rc RenderContext) Message {
	switch channel {
	case domain.ChannelGitHub:
		return renderGitHub(rc)
	case domain.ChannelEmail:
		return renderEmail(rc)
	case domain.ChannelTwitter:
		return renderTwitter(rc)
	default:
		return Message{}
	}
}

package session

import (
	"regexp"
	"strings"
)

// Role tags a conversational turn. Only user and assistant turns feed the
// scoring transcripts; system turns are filtered out of both views.
type Role string

const (
	RoleUser      Role = "user"      // the employee in training
	RoleAssistant Role = "assistant" // the simulated customer
	RoleSystem    Role = "system"
)

// Turn is a single ordered message in the session.
type Turn struct {
	Role    Role
	Content string
}

// scoreTrigger ends role-play when it appears anywhere in a user turn.
const scoreTrigger = "/score"

// ScoreRequested reports whether a user message asks for the scoring pass.
// The check is a case-insensitive substring match.
func ScoreRequested(content string) bool {
	return strings.Contains(strings.ToLower(content), scoreTrigger)
}

func joinTurns(turns []Turn, include func(Role) bool) string {
	var parts []string
	for _, t := range turns {
		if include(t.Role) {
			parts = append(parts, t.Content)
		}
	}
	return strings.Join(parts, "\n")
}

// Customers introduce themselves mid-roleplay ("my name is Jordan",
// "I'm Casey"). The capture requires a capitalized token so ordinary phrases
// like "i'm sure" don't register as a name.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:my name is)\s+([A-Z][A-Za-z'’-]*)`),
	regexp.MustCompile(`(?i:\bi'?m)\s+([A-Z][A-Za-z'’-]*)`),
}

// notNames are capitalized sentence-starters that follow "I'm" without being
// a name.
var notNames = map[string]bool{
	"Not": true, "Just": true, "Sure": true, "So": true, "Here": true,
	"Happy": true, "Glad": true, "Looking": true, "Good": true, "Fine": true,
	"Okay": true, "Interested": true, "Thinking": true, "Training": true,
}

// discoverName scans a simulated-customer reply for a name declaration and
// returns the first plausible match, or "".
func discoverName(content string) string {
	for _, re := range namePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			name := strings.Trim(m[1], "'’-")
			if name == "" || notNames[name] {
				continue
			}
			return name
		}
	}
	return ""
}

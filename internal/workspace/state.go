package workspace

import "strings"

// State is a snapshot of everything the form holds
type State struct {
	Transcript string
	Prompt     string
	Summary    string
	Recipients string
	Note       string

	Generate TaskState
	Share    TaskState
}

// CanGenerate reports whether a summary request may be issued
func (s State) CanGenerate() bool {
	return !s.Generate.IsActive() && strings.TrimSpace(s.Transcript) != "" && strings.TrimSpace(s.Prompt) != ""
}

// CanSend reports whether an email request may be issued
func (s State) CanSend() bool {
	return !s.Share.IsActive() && strings.TrimSpace(s.Summary) != "" && len(ParseRecipients(s.Recipients)) > 0
}

// ParseRecipients splits comma-separated addresses and trims each one.
// Blank entries are dropped; address syntax is not checked.
func ParseRecipients(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

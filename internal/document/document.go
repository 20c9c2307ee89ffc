// Package document models a flymd Markdown buffer as the assistant sees
// it: prose, an optional chat-session region introduced by a fixed
// heading, and tracked placeholder blocks for pending operations.
package document

// Marker strings recognized in the editor buffer. The heading opens the
// chat-session region; bolded prefixes mark turns; a horizontal rule
// ends a turn's text.
const (
	ChatHeading = "## AI Chat"
	YouMarker   = "**You:**"
	AIMarker    = "**AI:**"
)

// Placeholder texts inserted while an operation is in flight.
const (
	PolishingPlaceholder = "> _Polishing with AI, please wait..._"
	ThinkingPlaceholder  = "**AI:** _Thinking..._"
)

// Role identifies who produced a chat turn.
type Role string

const (
	RoleYou Role = "you"
	RoleAI  Role = "ai"
)

// Turn is one parsed exchange inside the chat-session region.
type Turn struct {
	Role Role
	Text string
}

// Document is the parsed view of an editor buffer.
type Document struct {
	Prose      string // everything before the chat heading (grounding context)
	Turns      []Turn // parsed turns after the heading
	hasSession bool
}

// HasSession reports whether the chat heading was found.
func (d Document) HasSession() bool {
	return d.hasSession
}

// LastQuestion returns the newest unanswered question: the text of the
// last "You" turn, trimmed. ok is false when there is no session, no
// "You" turn, or the turn is blank after trimming.
func (d Document) LastQuestion() (string, bool) {
	if !d.hasSession {
		return "", false
	}
	for i := len(d.Turns) - 1; i >= 0; i-- {
		if d.Turns[i].Role == RoleYou {
			if d.Turns[i].Text == "" {
				return "", false
			}
			return d.Turns[i].Text, true
		}
	}
	return "", false
}

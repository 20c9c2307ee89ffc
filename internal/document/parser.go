package document

import (
	"regexp"
	"strings"
)

// headingPattern matches the chat heading on its own line.
// turnPattern matches a turn marker at the start of a line.
// rulePattern matches a horizontal rule, which ends a turn's text.
var (
	headingPattern = regexp.MustCompile(`(?m)^## AI Chat[ \t]*$`)
	turnPattern    = regexp.MustCompile(`(?m)^\*\*(You|AI):\*\*`)
	rulePattern    = regexp.MustCompile(`(?m)^---[ \t]*$`)
)

// Parse splits the buffer at the chat heading and extracts the turns of
// the session region. Text before the heading becomes Prose; without a
// heading the whole buffer is Prose and HasSession is false.
func Parse(text string) Document {
	loc := headingPattern.FindStringIndex(text)
	if loc == nil {
		return Document{Prose: text}
	}

	return Document{
		Prose:      text[:loc[0]],
		Turns:      parseTurns(text[loc[1]:]),
		hasSession: true,
	}
}

// parseTurns walks the session region marker by marker. A turn's text
// runs from its marker to the next marker, cut short at the first
// horizontal rule. Text between a rule and the next marker is ignored.
func parseTurns(session string) []Turn {
	markers := turnPattern.FindAllStringSubmatchIndex(session, -1)
	if len(markers) == 0 {
		return nil
	}

	turns := make([]Turn, 0, len(markers))
	for i, m := range markers {
		role := RoleYou
		if session[m[2]:m[3]] == "AI" {
			role = RoleAI
		}

		end := len(session)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		span := session[m[1]:end]
		if rule := rulePattern.FindStringIndex(span); rule != nil {
			span = span[:rule[0]]
		}

		turns = append(turns, Turn{Role: role, Text: strings.TrimSpace(span)})
	}

	return turns
}

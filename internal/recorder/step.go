// internal/recorder/step.go

// Package recorder turns editor interaction into test fixture steps.
package recorder

import (
	"slices"
	"strings"

	"github.com/bethropolis/tidefix/internal/input"
)

// Payload is the optional argument carried by a Step. It is either Text or Args.
type Payload interface {
	render() string
}

// Text is a single string argument, rendered quoted.
type Text string

func (t Text) render() string { return quote(string(t)) }

// Args is a list of pre-rendered argument values, rendered comma-joined.
type Args []string

func (a Args) render() string { return strings.Join(a, ", ") }

// Step is one recorded symbolic action.
type Step struct {
	Kind    input.Action
	Payload Payload // nil when the action takes no argument
}

// String renders the step as it appears in a fixture, e.g. insertText('hi').
func (s Step) String() string {
	if s.Payload == nil {
		return s.Kind.String() + "()"
	}
	return s.Kind.String() + "(" + s.Payload.render() + ")"
}

// Record returns steps with a new step applied. Only the last entry is
// considered: consecutive insertText payloads concatenate, consecutive
// moveNativeSelection payloads replace, anything else appends.
// The input slice is never modified.
func Record(steps []Step, kind input.Action, payload Payload) []Step {
	out := slices.Clone(steps)
	n := len(out)
	if n == 0 || out[n-1].Kind != kind || !kind.Coalescable() {
		return append(out, Step{Kind: kind, Payload: payload})
	}

	last := &out[n-1]
	switch kind {
	case input.ActionInsertText:
		prev, _ := last.Payload.(Text)
		next, _ := payload.(Text)
		last.Payload = prev + next
	case input.ActionMoveNativeSelection:
		last.Payload = payload
	}
	return out
}

// quote renders s as a single-quoted literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\', '\'':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

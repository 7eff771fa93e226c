// internal/recorder/fixture.go
package recorder

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidefix/internal/dom"
)

// DefaultTestName is the name placeholder written into fixtures.
const DefaultTestName = "<YOUR TEST NAME>"

const rootOpenTag = `<div contenteditable="true" data-outline-editor="true" dir="ltr">`

// RenderFixture renders steps, the markup snapshot and the live selection as
// fixture text. It reports false when the selection has a missing endpoint or
// one outside root.
func RenderFixture(steps []Step, markup string, sel dom.Selection, root *dom.Node, name string) (string, bool) {
	snap, ok := dom.ResolveSelection(sel, root)
	if !ok {
		return "", false
	}
	if name == "" {
		name = DefaultTestName
	}

	inputs := make([]string, len(steps))
	for i, step := range steps {
		inputs[i] = step.String()
	}
	html := rootOpenTag + dom.StripPlaceholders(markup) + "</div>"

	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  name: %s,\n", quote(name))
	if len(inputs) == 0 {
		b.WriteString("  inputs: [],\n")
	} else {
		fmt.Fprintf(&b, "  inputs: [\n    %s\n  ],\n", strings.Join(inputs, ", "))
	}
	fmt.Fprintf(&b, "  expectedHTML: %s,\n", quote(html))
	b.WriteString("  expectedSelection: {\n")
	fmt.Fprintf(&b, "    anchorPath: %s,\n", snap.AnchorPath)
	fmt.Fprintf(&b, "    anchorOffset: %d,\n", snap.AnchorOffset)
	fmt.Fprintf(&b, "    focusPath: %s,\n", snap.FocusPath)
	fmt.Fprintf(&b, "    focusOffset: %d,\n", snap.FocusOffset)
	b.WriteString("  },\n")
	b.WriteString("},")
	return b.String(), true
}

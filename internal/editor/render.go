// internal/editor/render.go
package editor

import (
	"strings"
	"unicode/utf16"

	"github.com/bethropolis/tidefix/internal/dom"
)

// Root element attributes of the rendered editor surface.
var rootAttrs = []dom.Attr{
	{Name: "contenteditable", Value: "true"},
	{Name: "data-outline-editor", Value: "true"},
	{Name: "dir", Value: "ltr"},
}

// run is a maximal same-format stretch of one visual line, rendered as one
// span holding one text node.
type run struct {
	start, end  int // cell range in the block
	text        *dom.Node
	placeholder bool
}

// renderInto rebuilds root's children from blocks and returns the run layout
// of every block. root itself is kept so its identity stays stable.
func renderInto(root *dom.Node, blocks []block) [][]run {
	for len(root.Children) > 0 {
		root.RemoveChild(root.Children[0])
	}
	layout := make([][]run, 0, len(blocks))
	for _, b := range blocks {
		p := root.AppendChild(dom.NewElement("p"))
		var runs []run
		lineStart := 0
		for i := 0; i <= len(b); i++ {
			if i < len(b) && b[i].r != lineBreak {
				continue
			}
			runs = append(runs, renderLine(p, b, lineStart, i)...)
			if i < len(b) {
				p.AppendChild(dom.NewElement("br"))
			}
			lineStart = i + 1
		}
		layout = append(layout, runs)
	}
	return layout
}

func renderLine(p *dom.Node, b block, start, end int) []run {
	if start == end {
		text := appendSpan(p, 0, dom.Placeholder)
		return []run{{start: start, end: end, text: text, placeholder: true}}
	}
	var runs []run
	for i := start; i < end; {
		j := i
		for j < end && b[j].format == b[i].format {
			j++
		}
		text := appendSpan(p, b[i].format, b[i:j].String())
		runs = append(runs, run{start: i, end: j, text: text})
		i = j
	}
	return runs
}

func appendSpan(p *dom.Node, format Format, data string) *dom.Node {
	attrs := []dom.Attr{{Name: "data-outline-text", Value: "true"}}
	if class := formatClass(format); class != "" {
		attrs = append(attrs, dom.Attr{Name: "class", Value: class})
	}
	span := p.AppendChild(dom.NewElement("span", attrs...))
	return span.AppendChild(dom.NewText(data))
}

func formatClass(format Format) string {
	var classes []string
	if format&FormatBold != 0 {
		classes = append(classes, "editor-text-bold")
	}
	if format&FormatItalic != 0 {
		classes = append(classes, "editor-text-italic")
	}
	return strings.Join(classes, " ")
}

// locate maps a document point onto the rendered text node holding it, with
// the offset in UTF-16 code units as a DOM selection counts it. Boundaries
// between runs resolve to the end of the earlier run. A caret in a placeholder
// sits after the sentinel, as browsers report it.
func locate(layout [][]run, p Point) (*dom.Node, int) {
	if p.Block < 0 || p.Block >= len(layout) {
		return nil, 0
	}
	for _, r := range layout[p.Block] {
		if r.start <= p.Offset && p.Offset <= r.end {
			if r.placeholder {
				return r.text, len([]rune(dom.Placeholder))
			}
			prefix := []rune(r.text.Data)[:p.Offset-r.start]
			return r.text, len(utf16.Encode(prefix))
		}
	}
	return nil, 0
}

package dom

import (
	"testing"
)

// buildTree returns root with children [P0, P1], P1 holding one text node T.
func buildTree() (root, p0, p1, text *Node) {
	root = NewElement("div", Attr{"contenteditable", "true"})
	p0 = root.AppendChild(NewElement("p"))
	p0.AppendChild(NewText("first"))
	p1 = root.AppendChild(NewElement("p"))
	text = p1.AppendChild(NewText("second"))
	return root, p0, p1, text
}

func TestPathTo(t *testing.T) {
	root, p0, p1, text := buildTree()

	tests := []struct {
		name string
		node *Node
		want Path
	}{
		{"root itself", root, Path{}},
		{"first paragraph", p0, Path{0}},
		{"second paragraph", p1, Path{1}},
		{"text in second paragraph", text, Path{1, 0}},
		{"text in first paragraph", p0.Children[0], Path{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PathTo(tt.node, root)
			if !got.Equal(tt.want) {
				t.Errorf("PathTo() = %v, want %v", got, tt.want)
			}
			if back := got.Resolve(root); back != tt.node {
				t.Errorf("Resolve(%v) did not return the original node", got)
			}
		})
	}
}

func TestPathToIsDeterministic(t *testing.T) {
	root, _, _, text := buildTree()
	first := PathTo(text, root)
	for i := 0; i < 5; i++ {
		if got := PathTo(text, root); !got.Equal(first) {
			t.Fatalf("resolution %d = %v, want %v", i, got, first)
		}
	}
}

func TestPathToOutsideRootPanics(t *testing.T) {
	root, _, _, _ := buildTree()
	stray := NewElement("p").AppendChild(NewText("x"))
	defer func() {
		if recover() == nil {
			t.Errorf("PathTo with a non-descendant should panic")
		}
	}()
	PathTo(stray, root)
}

func TestPathString(t *testing.T) {
	if got := (Path{1, 0, 2}).String(); got != "[1, 0, 2]" {
		t.Errorf("String() = %q", got)
	}
	if got := (Path{}).String(); got != "[]" {
		t.Errorf("empty String() = %q", got)
	}
	if (Path{3}).Resolve(NewElement("div")) != nil {
		t.Errorf("out-of-range path should resolve to nil")
	}
}

func TestContainsAndIndex(t *testing.T) {
	root, p0, p1, text := buildTree()
	if !root.Contains(text) || !p1.Contains(text) || p0.Contains(text) {
		t.Errorf("Contains gave wrong answers")
	}
	if !text.Contains(text) {
		t.Errorf("a node contains itself")
	}
	if p1.Index() != 1 || root.Index() != -1 {
		t.Errorf("Index() = %d, %d", p1.Index(), root.Index())
	}
	root.RemoveChild(p0)
	if p1.Index() != 0 || p0.Parent != nil {
		t.Errorf("RemoveChild did not detach")
	}
}

func TestHTML(t *testing.T) {
	root := NewElement("div", Attr{"contenteditable", "true"}, Attr{"title", `a"b`})
	p := root.AppendChild(NewElement("p"))
	p.AppendChild(NewElement("span")).AppendChild(NewText("a<b & c\u00a0d"))
	p.AppendChild(NewElement("br"))

	wantInner := `<p><span>a&lt;b &amp; c&nbsp;d</span><br></p>`
	if got := root.InnerHTML(); got != wantInner {
		t.Errorf("InnerHTML() = %q, want %q", got, wantInner)
	}
	wantOpen := `<div contenteditable="true" title="a&quot;b">`
	if got := root.OpenTag(); got != wantOpen {
		t.Errorf("OpenTag() = %q, want %q", got, wantOpen)
	}
	if got := root.OuterHTML(); got != wantOpen+wantInner+"</div>" {
		t.Errorf("OuterHTML() = %q", got)
	}
	if got := root.TextContent(); got != "a<b & c\u00a0d" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestResolveSelection(t *testing.T) {
	root, p0, _, text := buildTree()

	snap, ok := ResolveSelection(Selection{AnchorNode: p0.Children[0], AnchorOffset: 2, FocusNode: text, FocusOffset: 4}, root)
	if !ok {
		t.Fatalf("ResolveSelection reported no selection")
	}
	if !snap.AnchorPath.Equal(Path{0, 0}) || snap.AnchorOffset != 2 || !snap.FocusPath.Equal(Path{1, 0}) || snap.FocusOffset != 4 {
		t.Errorf("snapshot = %+v", snap)
	}

	if _, ok := ResolveSelection(Selection{AnchorNode: text}, root); ok {
		t.Errorf("missing focus should not resolve")
	}
	outside := NewText("elsewhere")
	if _, ok := ResolveSelection(Selection{AnchorNode: outside, FocusNode: outside}, root); ok {
		t.Errorf("selection outside root should not resolve")
	}
}

func TestResolveSelectionPlaceholder(t *testing.T) {
	root := NewElement("div")
	ph := root.AppendChild(NewElement("p")).AppendChild(NewText(Placeholder))

	snap, ok := ResolveSelection(Selection{AnchorNode: ph, AnchorOffset: 1, FocusNode: ph, FocusOffset: 1}, root)
	if !ok {
		t.Fatalf("ResolveSelection reported no selection")
	}
	if snap.AnchorOffset != 0 || snap.FocusOffset != 0 {
		t.Errorf("placeholder offsets = %d, %d; want 0, 0", snap.AnchorOffset, snap.FocusOffset)
	}
	if got := StripPlaceholders("a" + Placeholder + "b"); got != "ab" {
		t.Errorf("StripPlaceholders() = %q", got)
	}
}

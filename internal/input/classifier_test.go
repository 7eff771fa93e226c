package input

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		ev     KeyEvent
		want   Action
		wantOK bool
	}{
		{"plain letter", KeyEvent{Key: "a"}, ActionInsertText, true},
		{"shifted letter", KeyEvent{Key: "A", Shift: true}, ActionInsertText, true},
		{"space", KeyEvent{Key: " "}, ActionInsertText, true},
		{"alt character", KeyEvent{Key: "å", Alt: true}, ActionInsertText, true},
		{"emoji cluster", KeyEvent{Key: "👍🏽"}, ActionInsertText, true},
		{"arrow left", KeyEvent{Key: KeyArrowLeft}, ActionMoveBackward, true},
		{"arrow right", KeyEvent{Key: KeyArrowRight}, ActionMoveForward, true},
		{"shift arrow left is unclassified", KeyEvent{Key: KeyArrowLeft, Shift: true}, ActionUnknown, false},
		{"arrow up is unclassified", KeyEvent{Key: KeyArrowUp}, ActionUnknown, false},
		{"backspace", KeyEvent{Key: KeyBackspace}, ActionDeleteBackward, true},
		{"shift backspace", KeyEvent{Key: KeyBackspace, Shift: true}, ActionDeleteBackward, true},
		{"alt backspace", KeyEvent{Key: KeyBackspace, Alt: true}, ActionDeleteWordBackward, true},
		{"ctrl backspace", KeyEvent{Key: KeyBackspace, Ctrl: true}, ActionDeleteWordBackward, true},
		{"meta backspace", KeyEvent{Key: KeyBackspace, Meta: true}, ActionDeleteLineBackward, true},
		{"delete", KeyEvent{Key: KeyDelete}, ActionDeleteForward, true},
		{"alt delete", KeyEvent{Key: KeyDelete, Alt: true}, ActionDeleteWordForward, true},
		{"meta delete", KeyEvent{Key: KeyDelete, Meta: true}, ActionDeleteLineForward, true},
		{"enter", KeyEvent{Key: KeyEnter}, ActionInsertParagraph, true},
		{"shift enter", KeyEvent{Key: KeyEnter, Shift: true}, ActionInsertLinebreak, true},
		{"ctrl z", KeyEvent{Key: "z", Ctrl: true}, ActionUndo, true},
		{"meta z", KeyEvent{Key: "z", Meta: true}, ActionUndo, true},
		{"ctrl shift z", KeyEvent{Key: "Z", Ctrl: true, Shift: true}, ActionRedo, true},
		{"ctrl y", KeyEvent{Key: "y", Ctrl: true}, ActionRedo, true},
		{"ctrl b", KeyEvent{Key: "b", Ctrl: true}, ActionFormatBold, true},
		{"meta i", KeyEvent{Key: "i", Meta: true}, ActionFormatItalic, true},
		{"ctrl q is not text", KeyEvent{Key: "q", Ctrl: true}, ActionUnknown, false},
		{"modifier only", KeyEvent{Key: KeyShift, Shift: true}, ActionUnknown, false},
		{"control only", KeyEvent{Key: KeyControl, Ctrl: true}, ActionUnknown, false},
		{"named key", KeyEvent{Key: KeyTab}, ActionUnknown, false},
		{"escape", KeyEvent{Key: KeyEscape}, ActionUnknown, false},
		{"empty key", KeyEvent{}, ActionUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.ev)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Classify(%+v) = %v, %v; want %v, %v", tt.ev, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	ev := KeyEvent{Key: "x"}
	first, _ := Classify(ev)
	for i := 0; i < 10; i++ {
		if got, _ := Classify(ev); got != first {
			t.Fatalf("Classify changed result on call %d: %v != %v", i, got, first)
		}
	}
}

func TestRulesOrder(t *testing.T) {
	index := make(map[Action]int, len(Rules))
	for i, r := range Rules {
		if _, dup := index[r.Action]; dup {
			t.Fatalf("action %v declared twice", r.Action)
		}
		index[r.Action] = i
	}
	before := [][2]Action{
		{ActionDeleteWordBackward, ActionDeleteBackward},
		{ActionDeleteLineBackward, ActionDeleteBackward},
		{ActionRedo, ActionUndo},
		{ActionInsertLinebreak, ActionInsertParagraph},
	}
	for _, pair := range before {
		if index[pair[0]] >= index[pair[1]] {
			t.Errorf("%v must be declared before %v", pair[0], pair[1])
		}
	}
	if last := Rules[len(Rules)-1].Action; last != ActionInsertText {
		t.Errorf("last rule = %v, want insertText catch-all", last)
	}
	if _, ok := index[ActionMoveNativeSelection]; ok {
		t.Errorf("moveNativeSelection must never come from a key")
	}
}

func TestActionNames(t *testing.T) {
	for a := ActionDeleteBackward; a <= ActionMoveNativeSelection; a++ {
		name := a.String()
		back, ok := ParseAction(name)
		if !ok || back != a {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", name, back, ok, a)
		}
	}
	if Action(99).String() != "unknown" {
		t.Errorf("out of range action should render as unknown")
	}
	for a := ActionDeleteBackward; a <= ActionMoveNativeSelection; a++ {
		want := a == ActionInsertText || a == ActionMoveNativeSelection
		if a.Coalescable() != want {
			t.Errorf("%v.Coalescable() = %v, want %v", a, a.Coalescable(), want)
		}
	}
}

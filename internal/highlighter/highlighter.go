// internal/highlighter/highlighter.go

// Package highlighter styles and validates fixture text using tree-sitter's
// JavaScript grammar.
package highlighter

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/bethropolis/tidefix/internal/logger"
)

//go:embed queries/javascript/highlights.scm
var highlightsQuery []byte

// A fixture is an object literal followed by a comma, so it parses as the
// single element of an array literal. The prefix sits on its own line so
// fixture rows are the parsed rows minus one.
const (
	wrapPrefix = "[\n"
	wrapSuffix = "\n]"
)

// ErrSyntax is returned by Validate when the fixture does not parse cleanly.
var ErrSyntax = errors.New("fixture has syntax errors")

// StyledRange is a styled span of rune columns on one line.
type StyledRange struct {
	StartCol  int
	EndCol    int // exclusive
	StyleName string
}

// Result maps a fixture line number to its styled ranges, in match order.
type Result map[int][]StyledRange

// Highlighter owns a parser and the compiled highlight query. It is not safe
// for concurrent use.
type Highlighter struct {
	parser *sitter.Parser
	lang   *sitter.Language
	query  *sitter.Query
}

// New creates a highlighter with the embedded query compiled.
func New() (*Highlighter, error) {
	lang := javascript.GetLanguage()
	query, err := sitter.NewQuery(highlightsQuery, lang)
	if err != nil {
		return nil, fmt.Errorf("highlight query parse failed: %w", err)
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	return &Highlighter{parser: parser, lang: lang, query: query}, nil
}

// Close releases the parser and query.
func (h *Highlighter) Close() {
	h.query.Close()
	h.parser.Close()
}

func (h *Highlighter) parse(fixture string) (*sitter.Tree, error) {
	src := []byte(wrapPrefix + fixture + wrapSuffix)
	tree, err := h.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return tree, nil
}

// Validate reports ErrSyntax when fixture is not a well-formed fixture literal.
func (h *Highlighter) Validate(fixture string) error {
	tree, err := h.parse(fixture)
	if err != nil {
		return err
	}
	defer tree.Close()
	if tree.RootNode().HasError() {
		return ErrSyntax
	}
	return nil
}

// Highlight parses fixture and returns the styled ranges per line.
func (h *Highlighter) Highlight(fixture string) (Result, error) {
	tree, err := h.parse(fixture)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	lines := bytes.Split([]byte(fixture), []byte("\n"))
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(h.query, tree.RootNode())

	result := make(Result)
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			style := captureNameToStyleName(h.query.CaptureNameForId(capture.Index))
			start, end := capture.Node.StartPoint(), capture.Node.EndPoint()
			// Row 0 is the wrapper's opening bracket.
			startRow, endRow := int(start.Row)-1, int(end.Row)-1
			if startRow < 0 || endRow >= len(lines) {
				continue
			}
			for row := startRow; row <= endRow; row++ {
				line := lines[row]
				from, to := 0, utf8.RuneCount(line)
				if row == startRow {
					from = byteOffsetToRuneIndex(line, int(start.Column))
				}
				if row == endRow {
					to = byteOffsetToRuneIndex(line, int(end.Column))
				}
				if to <= from {
					continue
				}
				result[row] = append(result[row], StyledRange{StartCol: from, EndCol: to, StyleName: style})
			}
		}
	}

	logger.DebugTagf("highlighter", "Highlighted fixture: %d styled lines", len(result))
	return result, nil
}

// captureNameToStyleName maps a capture name to a theme style name. Theme
// lookups fall back from "a.b" to "a" themselves, so the full name is kept.
func captureNameToStyleName(captureName string) string {
	return strings.TrimPrefix(captureName, "@")
}

// byteOffsetToRuneIndex converts a byte offset within line to a rune index.
func byteOffsetToRuneIndex(line []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return utf8.RuneCount(line[:byteOffset])
}

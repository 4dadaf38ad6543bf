/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package precedence

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ShapeKind

// ShapeKind is the family of a structurally recognized bracket.
// The left bracket shapes are listed below, right brackets are their mirror images:
//
//	ShapePipes:          '|'+
//	ShapeBracketSlashes: ( "(." | '{' | '[' ) ( '/'+ | '\'+ )
//	ShapeAnglePipes:     '<'+ '|'+
//	ShapeSlashes:        ( '<'+ | '|'+ ) ( '/'+ | '\'+ )
//
// Any of the shapes may be decorated by interleaving '.' or '*' non-contiguously,
// e.g. `<.<<|*|.||`.
type ShapeKind uint8

const (
	ShapeUnknown ShapeKind = iota
	ShapePipes
	ShapeBracketSlashes
	ShapeAnglePipes
	ShapeSlashes
)

// ShapeRun is a maximal run of one repeated character
type ShapeRun struct {
	Rune  rune
	Count int
}

// Shape is the parsed structure of a bracket spelling, after decoration was removed
type Shape struct {
	Kind ShapeKind
	Runs []ShapeRun
}

// IsEncloser returns true if the shape can be used as both left and right bracket
func (s Shape) IsEncloser() bool {
	return s.Kind == ShapePipes
}

func isDecoration(r rune) bool {
	return r == '.' || r == '*'
}

func isSlash(r rune) bool {
	return r == '/' || r == '\\'
}

// stripDecoration removes interleaved decoration characters.
// Spellings shorter than three characters, starting with '(', or ending in ')' are kept as-is.
// A decoration may not follow another decoration, and may not be trailing.
func stripDecoration(spelling string) (string, bool) {
	runes := []rune(spelling)
	if len(runes) < 3 ||
		runes[0] == '(' ||
		runes[len(runes)-1] == ')' {

		return spelling, true
	}

	reduced := make([]rune, 0, len(runes))
	canSkip := false
	for _, r := range runes {
		if canSkip && isDecoration(r) {
			canSkip = false
			continue
		}
		reduced = append(reduced, r)
		canSkip = true
	}

	if !canSkip {
		return "", false
	}
	return string(reduced), true
}

func splitRuns(s string) []ShapeRun {
	var runs []ShapeRun
	for _, r := range s {
		last := len(runs) - 1
		if last >= 0 && runs[last].Rune == r {
			runs[last].Count++
		} else {
			runs = append(runs, ShapeRun{Rune: r, Count: 1})
		}
	}
	return runs
}

func parseShape(spelling string, classify func([]ShapeRun) ShapeKind) (Shape, bool) {
	stripped, ok := stripDecoration(spelling)
	if !ok || utf8.RuneCountInString(stripped) < 2 {
		return Shape{}, false
	}

	runs := splitRuns(stripped)
	kind := classify(runs)
	if kind == ShapeUnknown {
		return Shape{}, false
	}

	return Shape{
		Kind: kind,
		Runs: runs,
	}, true
}

// ParseLeftShape parses the spelling as a structurally recognized left bracket
func ParseLeftShape(spelling string) (Shape, bool) {
	return parseShape(spelling, leftShapeKind)
}

// ParseRightShape parses the spelling as a structurally recognized right bracket
func ParseRightShape(spelling string) (Shape, bool) {
	return parseShape(spelling, rightShapeKind)
}

func leftShapeKind(runs []ShapeRun) ShapeKind {
	first := runs[0]

	switch len(runs) {
	case 1:
		if first.Rune == '|' {
			return ShapePipes
		}

	case 2:
		second := runs[1]
		switch {
		case first.Rune == '<' && second.Rune == '|':
			return ShapeAnglePipes

		case (first.Rune == '<' || first.Rune == '|') && isSlash(second.Rune):
			return ShapeSlashes

		case (first.Rune == '{' || first.Rune == '[') && first.Count == 1 && isSlash(second.Rune):
			return ShapeBracketSlashes
		}

	case 3:
		if first == (ShapeRun{Rune: '(', Count: 1}) &&
			runs[1] == (ShapeRun{Rune: '.', Count: 1}) &&
			isSlash(runs[2].Rune) {

			return ShapeBracketSlashes
		}
	}

	return ShapeUnknown
}

func rightShapeKind(runs []ShapeRun) ShapeKind {
	last := runs[len(runs)-1]

	switch len(runs) {
	case 1:
		if last.Rune == '|' {
			return ShapePipes
		}

	case 2:
		first := runs[0]
		switch {
		case first.Rune == '|' && last.Rune == '>':
			return ShapeAnglePipes

		case isSlash(first.Rune) && (last.Rune == '>' || last.Rune == '|'):
			return ShapeSlashes

		case isSlash(first.Rune) && (last.Rune == '}' || last.Rune == ']') && last.Count == 1:
			return ShapeBracketSlashes
		}

	case 3:
		if last == (ShapeRun{Rune: ')', Count: 1}) &&
			runs[1] == (ShapeRun{Rune: '.', Count: 1}) &&
			isSlash(runs[0].Rune) {

			return ShapeBracketSlashes
		}
	}

	return ShapeUnknown
}

// mirrorRune returns the character a right bracket has in place of the given left bracket character.
// Slashes are only mirrored in brackets that open with an angle or a pipe.
func mirrorRune(r rune, opposite bool) (rune, bool) {
	switch r {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	case '<':
		return '>', true
	case '/':
		if opposite {
			return '\\', true
		}
		return r, true
	case '\\':
		if opposite {
			return '/', true
		}
		return r, true
	case '|', '.', '*':
		return r, true
	}
	return 0, false
}

// isMirror returns true if the right spelling is the character-wise mirror image of the left spelling
func isMirror(left, right string) bool {
	leftRunes := []rune(left)
	rightRunes := []rune(right)

	count := len(leftRunes)
	if count == 0 || count != len(rightRunes) {
		return false
	}

	opposite := leftRunes[0] == '<' || leftRunes[0] == '|'

	for i, r := range leftRunes {
		mirrored, ok := mirrorRune(r, opposite)
		if !ok || rightRunes[count-1-i] != mirrored {
			return false
		}
	}

	return true
}

// bracketCache holds pairs of structurally matched brackets.
// It only ever grows, and concurrent insertions of the same pair are idempotent.
type bracketCache struct {
	mu    sync.RWMutex
	pairs map[string]string
}

func (c *bracketCache) matches(left, right string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.pairs[left]
	return ok && cached == right
}

func (c *bracketCache) add(left, right string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pairs == nil {
		c.pairs = map[string]string{}
	}
	if _, ok := c.pairs[left]; !ok {
		c.pairs[left] = right
	}
}

func (c *bracketCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pairs)
}

// IsLeft returns true if the spelling is a left bracket, registered or structurally recognized
func (t *Table) IsLeft(spelling string) bool {
	spelling = norm.NFC.String(spelling)

	switch spelling {
	case "(.<", "((.>":
		return true
	case `[\`:
		return false
	}
	if strings.HasPrefix(spelling, "(*") {
		return false
	}

	if id := t.id(spelling); id != 0 {
		return t.rightOf[id] != 0
	}

	_, ok := ParseLeftShape(spelling)
	return ok
}

// IsRight returns true if the spelling is a right bracket, registered or structurally recognized
func (t *Table) IsRight(spelling string) bool {
	spelling = norm.NFC.String(spelling)

	switch spelling {
	case ">.)", "<.))":
		return true
	case `\]`:
		return false
	}
	if strings.HasSuffix(spelling, "*)") {
		return false
	}

	if id := t.id(spelling); id != 0 {
		return t.rights.Test(uint(id))
	}

	_, ok := ParseRightShape(spelling)
	return ok
}

// IsEncloser returns true if the spelling is used as both left and right bracket
func (t *Table) IsEncloser(spelling string) bool {
	spelling = norm.NFC.String(spelling)

	if id := t.id(spelling); id != 0 {
		return t.rightOf[id] != 0 && t.rights.Test(uint(id))
	}

	shape, ok := ParseLeftShape(spelling)
	return ok && shape.IsEncloser()
}

// MatchedBrackets returns true if the given brackets form a pair.
// Brackets which are not registered are matched structurally,
// and a structurally matched pair of recognized brackets is cached.
func (t *Table) MatchedBrackets(left, right string) bool {
	left = norm.NFC.String(left)
	right = norm.NFC.String(right)

	for {
		switch {
		case left == "(.<" && right == ">.)",
			left == "((.>" && right == "<.))":
			return true

		case strings.HasPrefix(left, "BIG ") && strings.HasPrefix(right, "BIG "):
			left = strings.TrimPrefix(left, "BIG ")
			right = strings.TrimPrefix(right, "BIG ")
			continue

		case strings.HasSuffix(left, "|->"):
			// e.g. `{|->` is closed by `}`
			left = strings.TrimSuffix(left, "|->")
			continue
		}
		break
	}

	leftID := t.id(left)
	rightID := t.id(right)
	if leftID != 0 && rightID != 0 {
		if (left == "[//" && right == "/]") ||
			(left == "[/" && right == "//]") {

			return true
		}
		return t.rightOf[leftID] == rightID
	}

	if t.derived.matches(left, right) {
		return true
	}

	if !isMirror(left, right) {
		return false
	}

	if t.IsLeft(left) && t.IsRight(right) {
		t.derived.add(left, right)
	}

	return true
}

// DerivedBracketCount returns the number of cached structurally matched bracket pairs
func (t *Table) DerivedBracketCount() int {
	return t.derived.len()
}

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

package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/precedence"
)

// itemLimit is a sensible limit for how many tokens may be scanned
const itemLimit = 1 << 16

const bigPrefix = "BIG "

type tokenKind uint8

const (
	tokenUnknown tokenKind = iota
	tokenIdentifier
	tokenNumber
	tokenOperator
	tokenBracket
)

type token struct {
	kind tokenKind
	text string
	ast.Range
	// spaceBefore is true if the token is preceded by whitespace or is the first token
	spaceBefore bool
}

// scannedRune is a rune of a symbol run, with its positions
type scannedRune struct {
	r     rune
	start ast.Position
	end   ast.Position
}

type scanner struct {
	table  *precedence.Table
	input  []byte
	offset int
	line   int
	column int
	// space is true if whitespace was scanned since the last token
	space  bool
	tokens []token
}

func newScanner(table *precedence.Table, input []byte) *scanner {
	return &scanner{
		table: table,
		input: input,
		line:  1,
		space: true,
	}
}

func (s *scanner) pos() ast.Position {
	return ast.NewPosition(s.offset, s.line, s.column)
}

// peek decodes the rune at the current offset without consuming it.
// Invalid UTF-8 is reported as a syntax error.
func (s *scanner) peek() (rune, int, error) {
	r, w := utf8.DecodeRune(s.input[s.offset:])
	if r == utf8.RuneError && w <= 1 {
		return 0, 0, NewSyntaxError(s.pos(), "invalid UTF-8 encoding")
	}
	return r, w, nil
}

// advance consumes a rune of the given width, and returns the position of its last byte
func (s *scanner) advance(r rune, w int) ast.Position {
	end := ast.NewPosition(s.offset+w-1, s.line, s.column+w-1)
	s.offset += w
	if r == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column += w
	}
	return end
}

func (s *scanner) atEnd() bool {
	return s.offset >= len(s.input)
}

func (s *scanner) emit(kind tokenKind, text string, r ast.Range) error {
	if len(s.tokens) >= itemLimit {
		return ItemLimitReachedError{Position: r.StartPos}
	}
	s.tokens = append(s.tokens, token{
		kind:        kind,
		text:        text,
		Range:       r,
		spaceBefore: s.space,
	})
	s.space = false
	return nil
}

func (s *scanner) scan() ([]token, error) {
	for !s.atEnd() {
		r, w, err := s.peek()
		if err != nil {
			return nil, err
		}

		switch {
		case unicode.IsSpace(r):
			s.advance(r, w)
			s.space = true

		case isIdentifierStart(r):
			err = s.scanWord()

		case unicode.IsDigit(r):
			err = s.scanNumber()

		default:
			err = s.scanSymbols()
		}
		if err != nil {
			return nil, err
		}
	}
	return s.tokens, nil
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

func isSymbol(r rune) bool {
	return !unicode.IsSpace(r) && !isIdentifierPart(r)
}

// scanWhile consumes runes while the predicate holds,
// and returns the consumed text and the position of its last byte
func (s *scanner) scanWhile(predicate func(rune) bool) (string, ast.Position, error) {
	start := s.offset
	var end ast.Position
	for !s.atEnd() {
		r, w, err := s.peek()
		if err != nil {
			return "", ast.Position{}, err
		}
		if !predicate(r) {
			break
		}
		end = s.advance(r, w)
	}
	return string(s.input[start:s.offset]), end, nil
}

// isWordOperator returns true for words of two or more upper-case letters, e.g. `MAX`.
// `BIG` is reserved for big brackets.
func isWordOperator(word string) bool {
	if word == "BIG" || utf8.RuneCountInString(word) < 2 {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func (s *scanner) scanWord() error {
	start := s.pos()
	word, end, err := s.scanWhile(isIdentifierPart)
	if err != nil {
		return err
	}

	kind := tokenIdentifier
	if isWordOperator(word) || s.table.IsOperator(word) {
		kind = tokenOperator
	}
	return s.emit(kind, word, ast.NewRange(start, end))
}

func (s *scanner) scanNumber() error {
	start := s.pos()
	digits, end, err := s.scanWhile(unicode.IsDigit)
	if err != nil {
		return err
	}

	// a fraction requires a digit after the point, e.g. `1..2` is a range
	if s.offset+1 < len(s.input) &&
		s.input[s.offset] == '.' &&
		s.input[s.offset+1] >= '0' && s.input[s.offset+1] <= '9' {

		s.advance('.', 1)
		fraction, fractionEnd, err := s.scanWhile(unicode.IsDigit)
		if err != nil {
			return err
		}
		digits += "." + fraction
		end = fractionEnd
	}

	return s.emit(tokenNumber, digits, ast.NewRange(start, end))
}

// scanSymbols scans a run of symbol characters,
// and splits it into operators and brackets by longest match
func (s *scanner) scanSymbols() error {
	var run []scannedRune
	for !s.atEnd() {
		r, w, err := s.peek()
		if err != nil {
			return err
		}
		if !isSymbol(r) {
			break
		}
		start := s.pos()
		end := s.advance(r, w)
		run = append(run, scannedRune{r: r, start: start, end: end})
	}

	for i := 0; i < len(run); {
		j, kind := s.longestMatch(run[i:])
		if j == 0 {
			// an unknown operator extends up to the next known spelling
			j, kind = 1, tokenOperator
			for i+j < len(run) {
				if length, _ := s.longestMatch(run[i+j:]); length > 0 {
					break
				}
				j++
			}
		}
		text := runesText(run[i : i+j])
		r := ast.NewRange(run[i].start, run[i+j-1].end)
		i += j

		if kind == tokenBracket && s.mergeBig(text, r) {
			continue
		}
		if err := s.emit(kind, text, r); err != nil {
			return err
		}
	}
	return nil
}

func runesText(runes []scannedRune) string {
	text := make([]rune, len(runes))
	for i, r := range runes {
		text[i] = r.r
	}
	return string(text)
}

// longestMatch returns the length of the longest prefix of the run
// which is a registered operator or a bracket, and the kind of the prefix.
// The length is 0 if no prefix is known.
//
// Candidates are no longer than the longest registered spelling,
// unless they may be a structurally recognized bracket.
func (s *scanner) longestMatch(run []scannedRune) (int, tokenKind) {
	operatorLimit := min(len(run), s.table.LongestSpelling())
	limit := max(operatorLimit, shapePrefix(run))

	candidate := runesText(run[:limit])
	for length := limit; length > 0; length-- {
		switch {
		case length <= operatorLimit && s.table.IsOperator(candidate):
			return length, tokenOperator

		case length <= operatorLimit || length == limit || mayEndShape(run, length):
			if s.table.IsLeft(candidate) || s.table.IsRight(candidate) {
				return length, tokenBracket
			}
		}
		_, size := utf8.DecodeLastRuneInString(candidate)
		candidate = candidate[:len(candidate)-size]
	}
	return 0, tokenUnknown
}

// bracketLimit is a sensible limit for how long a structurally recognized bracket may be
const bracketLimit = 64

// bracketShapeRunes are the characters structurally recognized brackets consist of
const bracketShapeRunes = `|<>/\.*([{}])`

// maxShapeRuns is the number of runs of repeated characters a bracket shape has at most,
// not counting decoration
const maxShapeRuns = 3

// shapePrefix returns the length of the longest prefix of the run
// which may be a structurally recognized bracket
func shapePrefix(run []scannedRune) int {
	runs := 0
	var last rune
	for i, scanned := range run {
		if i == bracketLimit {
			return i
		}
		r := scanned.r
		if !strings.ContainsRune(bracketShapeRunes, r) {
			return i
		}
		if r == '.' || r == '*' || r == last {
			continue
		}
		runs++
		if runs > maxShapeRuns {
			return i
		}
		last = r
	}
	return len(run)
}

// mayEndShape reports whether a bracket shape may end after the first length runes of the run.
// The last run of a shape may be extended,
// unless it is a single closing bracket, e.g. the `]` of `\]`
func mayEndShape(run []scannedRune, length int) bool {
	last := run[length-1].r
	return run[length].r != last ||
		strings.ContainsRune("}])", last)
}

// mergeBig merges an identifier `BIG` with the directly following bracket on the same line,
// e.g. `BIG (`
func (s *scanner) mergeBig(bracket string, r ast.Range) bool {
	count := len(s.tokens)
	if count == 0 || !s.space {
		return false
	}

	last := s.tokens[count-1]
	if last.kind != tokenIdentifier ||
		last.text != "BIG" ||
		last.EndPos.Line != r.StartPos.Line {

		return false
	}

	s.tokens[count-1] = token{
		kind:        tokenBracket,
		text:        bigPrefix + bracket,
		Range:       ast.NewRange(last.StartPos, r.EndPos),
		spaceBefore: last.spaceBefore,
	}
	s.space = false
	return true
}

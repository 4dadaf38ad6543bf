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

package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
	"github.com/onflow/opresolve/resolver"
)

const errorPrefix = "error"

// writeError is raised when the underlying writer fails
type writeError struct {
	err error
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) {
	_, err := io.WriteString(p.writer, str)
	if err != nil {
		panic(writeError{err: err})
	}
}

func (p ErrorPrettyPrinter) colorize(str string, color aurora.Color) string {
	if !p.useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

func (p ErrorPrettyPrinter) colorizeError(str string) string {
	return p.colorize(str, aurora.RedFg|aurora.BrightFg|aurora.BoldFm)
}

func (p ErrorPrettyPrinter) colorizeMessage(str string) string {
	return p.colorize(str, aurora.BoldFm)
}

func (p ErrorPrettyPrinter) colorizeMeta(str string) string {
	return p.colorize(str, aurora.BlueFg|aurora.BrightFg|aurora.BoldFm)
}

func (p ErrorPrettyPrinter) colorizeNote(str string) string {
	return p.colorize(str, aurora.YellowFg|aurora.BrightFg)
}

// PrettyPrintError writes the error, and an excerpt of the code it refers to, if any.
// The errors of a parent error are printed one after the other.
func (p ErrorPrettyPrinter) PrettyPrintError(err error, location string, codes map[string]string) (printErr error) {
	defer func() {
		if r := recover(); r != nil {
			if writeErr, ok := r.(writeError); ok {
				printErr = writeErr.err
				return
			}
			panic(r)
		}
	}()

	var lines []string
	if code, ok := codes[location]; ok {
		lines = strings.Split(code, "\n")
	}

	first := true
	var printError func(err error)
	printError = func(err error) {
		if parentError, ok := err.(errors.ParentError); ok {
			children := parentError.ChildErrors()
			if len(children) > 0 {
				for _, child := range children {
					printError(child)
				}
				return
			}
		}

		if !first {
			p.writeString("\n")
		}
		first = false

		p.prettyPrintError(err, location, lines)
	}
	printError(err)

	return nil
}

func (p ErrorPrettyPrinter) prettyPrintError(err error, location string, lines []string) {
	p.writeString(p.colorizeError(errorPrefix + ": "))
	p.writeString(p.colorizeMessage(err.Error()))
	p.writeString("\n")

	hasPosition, ok := err.(ast.HasPosition)
	if !ok {
		return
	}

	start := hasPosition.StartPosition()
	end := hasPosition.EndPosition()

	gutterWidth := len(strconv.Itoa(max(start.Line, end.Line)))

	p.writeString(strings.Repeat(" ", gutterWidth))
	p.writeString(p.colorizeMeta("--> "))
	p.writeString(p.colorizeMeta(fmt.Sprintf("%s:%d:%d", location, start.Line, start.Column)))
	p.writeString("\n")

	if start.Line < 1 || start.Line > len(lines) {
		return
	}

	var hint string
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		hint = secondaryError.SecondaryError()
	}

	p.writeString(strings.Repeat(" ", gutterWidth))
	p.writeString(p.colorizeMeta(" |"))
	p.writeString("\n")

	p.writeExcerpt(lines, start, end, gutterWidth, '^', hint)

	if hasSecondaryRange, ok := err.(resolver.HasSecondaryRange); ok {
		secondary := hasSecondaryRange.SecondaryRange()
		if secondary != ast.EmptyRange &&
			secondary.StartPos.Line >= 1 &&
			secondary.StartPos.Line <= len(lines) {

			secondaryGutterWidth := len(strconv.Itoa(secondary.StartPos.Line))
			p.writeExcerpt(
				lines,
				secondary.StartPos,
				secondary.EndPos,
				max(gutterWidth, secondaryGutterWidth),
				'-',
				"",
			)
		}
	}
}

// writeExcerpt writes the line of the start position, and marks the range below it
func (p ErrorPrettyPrinter) writeExcerpt(
	lines []string,
	start ast.Position,
	end ast.Position,
	gutterWidth int,
	marker rune,
	note string,
) {
	line := strings.TrimSuffix(lines[start.Line-1], "\r")

	lineNumber := strconv.Itoa(start.Line)
	p.writeString(strings.Repeat(" ", gutterWidth-len(lineNumber)))
	p.writeString(p.colorizeMeta(lineNumber + " |"))
	p.writeString(" ")
	p.writeString(line)
	p.writeString("\n")

	startColumn := min(max(start.Column, 0), len(line))
	endColumn := len(line)
	if end.Line == start.Line {
		// the end position is inclusive
		endColumn = min(max(end.Column, startColumn), len(line)-1)
		if endColumn >= startColumn {
			_, width := utf8.DecodeRuneInString(line[endColumn:])
			endColumn += width
		}
	}

	markerCount := 1
	if endColumn > startColumn {
		markerCount = max(uniseg.StringWidth(line[startColumn:endColumn]), 1)
	}

	p.writeString(strings.Repeat(" ", gutterWidth))
	p.writeString(p.colorizeMeta(" |"))
	p.writeString(" ")
	p.writeString(indentation(line[:startColumn]))
	p.writeString(p.colorizeError(strings.Repeat(string(marker), markerCount)))
	if note != "" {
		p.writeString(" ")
		p.writeString(p.colorizeNote(note))
	}
	p.writeString("\n")
}

// indentation returns the whitespace which aligns with the given line prefix.
// Tabs are kept, all other characters are replaced by spaces of the same display width.
func indentation(prefix string) string {
	var sb strings.Builder
	state := -1
	rest := prefix
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", width))
	}
	return sb.String()
}

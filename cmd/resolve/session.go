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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	jsonpretty "github.com/tidwall/pretty"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/pretty"
	"github.com/onflow/opresolve/resolver"
	"github.com/onflow/opresolve/tagger"
)

type outputFormat uint8

const (
	outputFormatSource outputFormat = iota
	outputFormatTree
	outputFormatJSON
)

type session struct {
	table    *precedence.Table
	tagger   *tagger.Tagger
	resolver *resolver.Resolver
	format   outputFormat
	width    int
	useColor bool
	out      io.Writer
	errOut   io.Writer
}

func newSession(
	table *precedence.Table,
	config *resolver.Config,
	out io.Writer,
	errOut io.Writer,
) *session {
	return &session{
		table:    table,
		tagger:   tagger.New(table),
		resolver: resolver.New(table, config),
		width:    80,
		out:      out,
		errOut:   errOut,
	}
}

func (s *session) writeString(w io.Writer, str string) {
	_, err := io.WriteString(w, str)
	if err != nil {
		panic(err)
	}
}

// resolve resolves the code, and prints the result or the error
func (s *session) resolve(location string, code string) error {
	items, err := s.tagger.Tag([]byte(code))
	if err == nil {
		var result ast.Expression
		result, err = s.resolver.Resolve(items)
		if err == nil {
			s.printResult(result)
			return nil
		}
	}

	printer := pretty.NewErrorPrettyPrinter(s.errOut, s.useColor)
	printErr := printer.PrettyPrintError(
		err,
		location,
		map[string]string{
			location: code,
		},
	)
	if printErr != nil {
		panic(printErr)
	}

	for _, note := range s.suggestions(items) {
		s.writeString(s.errOut, colorizeNote(note, s.useColor)+"\n")
	}

	return err
}

func (s *session) printResult(result ast.Expression) {
	switch s.format {
	case outputFormatTree:
		s.writeString(s.out, pretty.Tree(result)+"\n")

	case outputFormatJSON:
		data, err := json.Marshal(result)
		if err != nil {
			panic(err)
		}
		data = jsonpretty.Pretty(data)
		if s.useColor {
			data = jsonpretty.Color(data, nil)
		}
		s.writeString(s.out, string(data))

	default:
		formatted := pretty.Format(result, s.width)
		s.writeString(s.out, colorizeResult(formatted, s.useColor)+"\n")
	}
}

// suggestions returns a note for each unknown operator which is close to a registered one
func (s *session) suggestions(items []resolver.Item) []string {
	var notes []string
	seen := map[string]struct{}{}

	for _, item := range items {
		if item.Kind == resolver.ItemKindOperand || item.Kind.IsBracket() {
			continue
		}

		name := item.Operator.Name
		if s.table.IsOperator(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		suggestion, ok := s.table.Suggest(name)
		if !ok {
			continue
		}
		notes = append(notes, fmt.Sprintf("note: unknown operator `%s`, did you mean `%s`?", name, suggestion))
	}

	return notes
}

// explain describes how the operator or bracket relates to the registered operators
func (s *session) explain(spelling string) string {
	var sb strings.Builder

	switch {
	case s.table.IsOperator(spelling):
		class := s.table.Canonicalize(spelling)
		fmt.Fprintf(&sb, "`%s` is an operator of class `%s`\n", spelling, class)
		s.explainRelations(&sb, class)

		if partners := s.table.ChainPartners(spelling); len(partners) > 0 {
			fmt.Fprintf(&sb, "  chains with: %s\n", classNames(partners))
		}
		if s.table.IsNonAssociative(spelling) {
			sb.WriteString("  non-associative\n")
		}

	case s.table.IsEncloser(spelling):
		fmt.Fprintf(&sb, "`%s` is an encloser\n", spelling)

	case s.table.IsLeft(spelling):
		fmt.Fprintf(&sb, "`%s` is a left bracket\n", spelling)

	case s.table.IsRight(spelling):
		fmt.Fprintf(&sb, "`%s` is a right bracket\n", spelling)

	default:
		fmt.Fprintf(&sb, "`%s` is not a registered operator\n", spelling)
		if suggestion, ok := s.table.Suggest(spelling); ok {
			fmt.Fprintf(&sb, "  did you mean `%s`?\n", suggestion)
		}
	}

	return sb.String()
}

func (s *session) explainRelations(sb *strings.Builder, class precedence.Class) {
	var higher, lower, equal []precedence.Class

	for _, other := range s.table.Classes() {
		if other.Equal(class) || !s.table.IsOperator(other.Name) {
			continue
		}

		switch s.table.ClassRelation(class, other) {
		case precedence.RelationHigher:
			higher = append(higher, other)
		case precedence.RelationLower:
			lower = append(lower, other)
		case precedence.RelationEqual:
			equal = append(equal, other)
		}
	}

	if len(equal) > 0 {
		fmt.Fprintf(sb, "  same precedence as: %s\n", classNames(equal))
	}
	if len(higher) > 0 {
		fmt.Fprintf(sb, "  higher than: %s\n", classNames(higher))
	}
	if len(lower) > 0 {
		fmt.Fprintf(sb, "  lower than: %s\n", classNames(lower))
	}
}

func classNames(classes []precedence.Class) string {
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.Name
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

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

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
	"github.com/onflow/opresolve/test_utils"
)

type resolveTest struct {
	name     string
	elements []element
	expected string
}

func runResolveTests(t *testing.T, config *resolver.Config, tests []resolveTest) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result, err := resolveWithConfig(config, test.elements...)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result.String())
		})
	}
}

type resolveErrorTest struct {
	name     string
	elements []element
	kind     resolver.ErrorKind
	message  string
}

func runResolveErrorTests(t *testing.T, tests []resolveErrorTest) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := resolve(test.elements...)
			test_utils.RequireError(t, err)

			assert.Equal(t, test.kind, resolver.KindOf(err))
			assert.EqualError(t, err, test.message)
			assert.True(t, errors.IsUserError(err))
			assert.False(t, errors.IsInternalError(err))
		})
	}
}

func TestResolve_Infix(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name:     "operand",
			elements: []element{operand("a")},
			expected: "a",
		},
		{
			name: "equal precedence, different operators",
			elements: []element{
				operand("1"), loose("+"), operand("2"), loose("-"), operand("3"),
			},
			expected: "((1 + 2) - 3)",
		},
		{
			name: "higher operator on the right",
			elements: []element{
				operand("a"), loose("+"), operand("b"), loose("*"), operand("c"),
			},
			expected: "(a + (b * c))",
		},
		{
			name: "higher operator on the left",
			elements: []element{
				operand("a"), loose("*"), operand("b"), loose("+"), operand("c"),
			},
			expected: "((a * b) + c)",
		},
		{
			name: "higher operator inside multifix",
			elements: []element{
				operand("a"), loose("+"), operand("b"), loose("·"), operand("c"), loose("+"), operand("d"),
			},
			expected: "(a + (b · c) + d)",
		},
		{
			name: "booleans",
			elements: []element{
				operand("a"), loose("∨"), operand("b"), loose("∧"), operand("c"),
			},
			expected: "(a ∨ (b ∧ c))",
		},
		{
			name: "tight operator inside loose operator",
			elements: []element{
				operand("a"), loose("+"), operand("b"), tight("*"), operand("c"),
			},
			expected: "(a + (b * c))",
		},
		{
			name: "tight operator before loose operator",
			elements: []element{
				operand("a"), tight("*"), operand("b"), loose("+"), operand("c"),
			},
			expected: "((a * b) + c)",
		},
		{
			name: "tight multifix",
			elements: []element{
				operand("a"), tight("+"), operand("b"), tight("+"), operand("c"),
			},
			expected: "(a + b + c)",
		},
		{
			name: "word operators",
			elements: []element{
				operand("a"), loose("MAX"), operand("b"), loose("≠"), operand("c"),
			},
			expected: "((a MAX b) ≠ c)",
		},
	})
}

func TestResolve_Multifix(t *testing.T) {

	t.Parallel()

	result, err := resolve(
		operand("1"), loose("+"), operand("2"), loose("+"), operand("3"),
	)
	require.NoError(t, err)

	require.IsType(t, &ast.OperatorExpression{}, result)
	operation := result.(*ast.OperatorExpression)

	assert.Equal(t, ast.FixityMultifix, operation.Fixity)
	assert.Equal(t, "+", operation.Operator.Name)
	require.Len(t, operation.Arguments, 3)
	for i, name := range []string{"1", "2", "3"} {
		assert.Equal(t, name, operation.Arguments[i].String())
	}

	assert.Equal(t, ast.NewPosition(0, 1, 0), result.StartPosition())
	assert.Equal(t, ast.NewPosition(8, 1, 8), result.EndPosition())
}

func TestResolve_MultifixSpellings(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name: "alias after spelling",
			elements: []element{
				operand("a"), loose("TIMES"), operand("b"), loose("×"), operand("c"),
			},
			expected: "((a TIMES b) × c)",
		},
		{
			name: "spelling after alias",
			elements: []element{
				operand("a"), loose("×"), operand("b"), loose("TIMES"), operand("c"),
			},
			expected: "((a × b) TIMES c)",
		},
		{
			name: "same alias",
			elements: []element{
				operand("a"), loose("TIMES"), operand("b"), loose("TIMES"), operand("c"),
			},
			expected: "(a TIMES b TIMES c)",
		},
		{
			name: "equal precedence",
			elements: []element{
				operand("a"), loose("+"), operand("b"), loose("-"), operand("c"), loose("-"), operand("d"),
			},
			expected: "((a + b) - c - d)",
		},
	})
}

func TestResolve_Chain(t *testing.T) {

	t.Parallel()

	t.Run("single chain", func(t *testing.T) {
		t.Parallel()

		result, err := resolve(
			operand("a"), loose("<"), operand("b"), loose("<"), operand("c"),
		)
		require.NoError(t, err)

		require.IsType(t, &ast.ChainExpression{}, result)
		chain := result.(*ast.ChainExpression)

		assert.Equal(t, "a", chain.First.String())
		require.Len(t, chain.Links, 2)
		assert.Equal(t, "<", chain.Links[0].Operator.Name)
		assert.Equal(t, "b", chain.Links[0].Expression.String())
		assert.Equal(t, "<", chain.Links[1].Operator.Name)
		assert.Equal(t, "c", chain.Links[1].Expression.String())
	})

	runResolveTests(t, nil, []resolveTest{
		{
			name: "mixed chain",
			elements: []element{
				operand("a"), loose("<"), operand("b"), loose("≤"), operand("c"), loose("="), operand("d"),
			},
			expected: "(a < b ≤ c = d)",
		},
		{
			name: "chain with operations",
			elements: []element{
				operand("a"), loose("<"), operand("b"), loose("+"), operand("1"), loose("≤"), operand("c"),
			},
			expected: "(a < (b + 1) ≤ c)",
		},
		{
			name: "operation before chain",
			elements: []element{
				operand("a"), loose("+"), operand("1"), loose("="), operand("b"),
			},
			expected: "((a + 1) = b)",
		},
		{
			name: "tight chain",
			elements: []element{
				operand("a"), tight("<"), operand("b"), tight("<"), operand("c"),
			},
			expected: "(a < b < c)",
		},
		{
			name: "chains in conjunction",
			elements: []element{
				operand("a"), loose("<"), operand("b"), loose("∧"), operand("b"), loose("<"), operand("c"),
			},
			expected: "((a < b) ∧ (b < c))",
		},
	})
}

func TestResolve_Postfix(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name:     "single",
			elements: []element{operand("a"), postfix("!")},
			expected: "(a!)",
		},
		{
			name:     "repeated",
			elements: []element{operand("a"), postfix("!"), postfix("!")},
			expected: "((a!)!)",
		},
		{
			name: "operand of infix",
			elements: []element{
				operand("a"), postfix("!"), loose("+"), operand("b"),
			},
			expected: "((a!) + b)",
		},
	})
}

func TestResolve_Prefix(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name:     "loose",
			elements: []element{loosePrefix("-"), operand("a")},
			expected: "(-a)",
		},
		{
			name:     "repeated",
			elements: []element{loosePrefix("-"), loosePrefix("-"), operand("a")},
			expected: "(-(-a))",
		},
		{
			name:     "word",
			elements: []element{loosePrefix("NOT"), operand("b")},
			expected: "(NOT b)",
		},
		{
			name: "tight operand of infix",
			elements: []element{
				tightPrefix("-"), operand("a"), loose("+"), operand("b"),
			},
			expected: "((-a) + b)",
		},
		{
			name: "loose operand of infix",
			elements: []element{
				loosePrefix("-"), operand("a"), loose("+"), operand("b"),
			},
			expected: "((-a) + b)",
		},
		{
			name: "operand of postfix",
			elements: []element{
				loosePrefix("-"), operand("a"), postfix("!"),
			},
			expected: "(-(a!))",
		},
		{
			name: "juxtaposed",
			elements: []element{
				operand("f"), tightPrefix("-"), operand("x"),
			},
			expected: "(f (-x))",
		},
	})
}

func TestResolve_NoSpace(t *testing.T) {

	t.Parallel()

	elements := []element{tightPrefix("-"), operand("x"), operand("y")}

	_, err := resolve(elements...)
	require.Error(t, err)
	assert.Equal(t, resolver.ErrorKindPrecedence, resolver.KindOf(err))

	runResolveTests(
		t,
		&resolver.Config{NoSpace: true},
		[]resolveTest{
			{
				name:     "tight prefix juxtaposed",
				elements: elements,
				expected: "((-x) y)",
			},
		},
	)
}

func TestResolve_Juxtaposition(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name:     "application",
			elements: []element{operand("f"), operand("x"), operand("y")},
			expected: "(f x y)",
		},
		{
			name: "operand of infix",
			elements: []element{
				operand("f"), operand("x"), loose("+"), operand("1"),
			},
			expected: "((f x) + 1)",
		},
		{
			name: "juxtaposed tight division",
			elements: []element{
				operand("2"), operand("a"), tight("/"), operand("b"),
			},
			expected: "(2 (a / b))",
		},
		{
			name: "bracketed argument",
			elements: []element{
				operand("f"), left("("), operand("x"), right(")"),
			},
			expected: "(f (x))",
		},
	})
}

func TestResolve_Division(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name: "tight",
			elements: []element{
				operand("a"), tight("/"), operand("b"), loose("+"), operand("c"),
			},
			expected: "((a / b) + c)",
		},
		{
			name: "bracketed",
			elements: []element{
				operand("1"), tight("/"), left("("), operand("2"), tight("/"), operand("3"), right(")"),
			},
			expected: "(1 / ((2 / 3)))",
		},
		{
			name: "inside tight operation",
			elements: []element{
				operand("a"), tight("+"), operand("b"), tight("/"), operand("c"),
			},
			expected: "(a + (b / c))",
		},
	})
}

func TestResolve_Brackets(t *testing.T) {

	t.Parallel()

	runResolveTests(t, nil, []resolveTest{
		{
			name: "grouping first",
			elements: []element{
				left("("), operand("1"), loose("+"), operand("2"), right(")"), loose("*"), operand("3"),
			},
			expected: "(((1 + 2)) * 3)",
		},
		{
			name:     "empty",
			elements: []element{left("("), right(")")},
			expected: "()",
		},
		{
			name: "nested",
			elements: []element{
				left("["), left("("), operand("a"), right(")"), right("]"),
			},
			expected: "[(a)]",
		},
		{
			name:     "encloser",
			elements: []element{left("|"), operand("x"), right("|")},
			expected: "|x|",
		},
		{
			name: "registered",
			elements: []element{
				left("⌊"), operand("x"), loose("/"), operand("2"), right("⌋"),
			},
			expected: "⌊(x / 2)⌋",
		},
		{
			name: "derived",
			elements: []element{
				left("<.<<|*|.||"), operand("a"), right("||.|*|>>.>"),
			},
			expected: "<.<<|*|.||a||.|*|>>.>",
		},
		{
			name: "alternative right",
			elements: []element{
				left("[//"), operand("a"), right("/]"),
			},
			expected: "[//a/]",
		},
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()

		result, err := resolve(left("("), operand("a"), right(")"))
		require.NoError(t, err)

		require.IsType(t, &ast.EnclosingExpression{}, result)
		enclosing := result.(*ast.EnclosingExpression)

		assert.Equal(t, "(", enclosing.Left.Name)
		assert.Equal(t, ")", enclosing.Right.Name)
		require.Len(t, enclosing.Arguments, 1)

		assert.Equal(t,
			ast.NewRange(
				ast.NewPosition(0, 1, 0),
				ast.NewPosition(4, 1, 4),
			),
			ast.NewRangeFromPositioned(enclosing),
		)
	})
}

func TestResolve_StructuralErrors(t *testing.T) {

	t.Parallel()

	runResolveErrorTests(t, []resolveErrorTest{
		{
			name:     "empty",
			elements: nil,
			kind:     resolver.ErrorKindStructural,
			message:  "empty juxtaposition/operation expression",
		},
		{
			name:     "postfix without argument",
			elements: []element{postfix("!"), operand("a")},
			kind:     resolver.ErrorKindStructural,
			message:  "postfix operator `!` without argument",
		},
		{
			name: "postfix after infix",
			elements: []element{
				operand("a"), loose("+"), postfix("!"), operand("b"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "postfix operator `!` without argument",
		},
		{
			name: "prefix without argument",
			elements: []element{
				operand("a"), loose("+"), tightPrefix("-"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "prefix operator `-` without argument",
		},
		{
			name:     "misuse of tight division",
			elements: []element{tight("/"), operand("2")},
			kind:     resolver.ErrorKindStructural,
			message:  "misuse of `/`",
		},
		{
			name:     "leading infix",
			elements: []element{loose("+"), operand("a")},
			kind:     resolver.ErrorKindStructural,
			message:  "interpreted `+` with no left operand as infix",
		},
		{
			name:     "trailing infix",
			elements: []element{operand("a"), loose("+")},
			kind:     resolver.ErrorKindStructural,
			message:  "interpreted `+` with no right operand as infix",
		},
		{
			name: "adjacent infix",
			elements: []element{
				operand("a"), loose("+"), loose("*"), operand("b"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "interpreted `*` with no left operand as infix",
		},
		{
			name: "unclosed bracket",
			elements: []element{
				left("("), operand("1"), loose("+"), operand("2"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "left encloser `(` without right encloser",
		},
		{
			name:     "unopened bracket",
			elements: []element{operand("1"), right(")")},
			kind:     resolver.ErrorKindStructural,
			message:  "right encloser `)` without matching left encloser",
		},
		{
			name: "mismatched brackets",
			elements: []element{
				left("("), operand("1"), right("]"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "right encloser `]` without matching left encloser",
		},
		{
			name: "mismatched derived brackets",
			elements: []element{
				left("<<|"), operand("a"), right("|>"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "right encloser `|>` without matching left encloser",
		},
		{
			name: "error inside brackets",
			elements: []element{
				left("("), loose("+"), right(")"),
			},
			kind:    resolver.ErrorKindStructural,
			message: "interpreted `+` with no left operand as infix",
		},
	})
}

func TestResolve_PrecedenceErrors(t *testing.T) {

	t.Parallel()

	runResolveErrorTests(t, []resolveErrorTest{
		{
			name: "loose prefix near tight operator",
			elements: []element{
				loosePrefix("-"), operand("a"), tight("+"), operand("b"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "loose prefix operator `-` near tight operator `+`",
		},
		{
			name: "tight prefix near juxtaposition",
			elements: []element{
				tightPrefix("-"), operand("x"), operand("y"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "prefix operator `-` near loose juxtaposition",
		},
		{
			name: "tight operator before juxtaposition",
			elements: []element{
				operand("a"), tight("+"), operand("f"), operand("x"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "precedence mismatch: `+` and juxtaposition",
		},
		{
			name: "tight operator after juxtaposition",
			elements: []element{
				operand("f"), operand("x"), tight("+"), operand("a"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "precedence mismatch: juxtaposition and `+`",
		},
		{
			name: "tight operator near loose operator",
			elements: []element{
				operand("a"), tight("+"), operand("b"), loose("*"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "tight operator `+` near loose operator `*`",
		},
		{
			name: "loose operator near tight operator",
			elements: []element{
				operand("a"), loose("*"), operand("b"), tight("+"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "loose operator `*` near tight operator `+`",
		},
		{
			name: "unrelated loose and tight operator",
			elements: []element{
				operand("a"), loose("∪"), operand("b"), tight("+"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "loose operator `∪` near tight operator `+`",
		},
		{
			name: "incomparable loose operators",
			elements: []element{
				operand("a"), loose("∪"), operand("b"), loose("+"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "loose operators `∪` and `+` have incomparable precedence",
		},
		{
			name: "incomparable tight operators",
			elements: []element{
				operand("a"), tight("∪"), operand("b"), tight("+"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "tight operators `∪` and `+` have incomparable precedence",
		},
		{
			name: "unknown operator",
			elements: []element{
				operand("a"), loose("+"), operand("b"), loose("BOGUS"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "loose operators `+` and `BOGUS` have incomparable precedence",
		},
		{
			name: "incompatible chaining operators",
			elements: []element{
				operand("a"), loose("<"), operand("b"), loose(">"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "incompatible chaining operators: `<` and `>`",
		},
		{
			name: "chaining with inconsistent spacing",
			elements: []element{
				operand("a"), tight("<"), operand("b"), loose("<"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "chaining with inconsistent spacing: `<` and `<`",
		},
		{
			name: "relation after chain",
			elements: []element{
				operand("a"), loose("="), operand("b"), loose("≠"), operand("c"),
			},
			kind:    resolver.ErrorKindPrecedence,
			message: "loose operators `=` and `≠` have incomparable precedence",
		},
	})

	t.Run("ranges", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(
			operand("a"), loose("∪"), operand("b"), loose("+"), operand("c"),
		)
		require.Error(t, err)

		var precedenceErr *resolver.PrecedenceError
		require.ErrorAs(t, err, &precedenceErr)

		assert.Equal(t, 6, precedenceErr.StartPosition().Offset)
		assert.Equal(t, 2, precedenceErr.SecondaryRange().StartPos.Offset)
		assert.NotEmpty(t, precedenceErr.SecondaryError())
	})
}

func TestResolve_AssociativityErrors(t *testing.T) {

	t.Parallel()

	runResolveErrorTests(t, []resolveErrorTest{
		{
			name: "tight division",
			elements: []element{
				operand("1"), tight("/"), operand("2"), tight("/"), operand("3"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`/` does not associate",
		},
		{
			name: "loose division",
			elements: []element{
				operand("1"), loose("/"), operand("2"), loose("/"), operand("3"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`/` does not associate",
		},
		{
			name: "unrelated operators",
			elements: []element{
				operand("a"), loose("MOD"), operand("b"), loose("REM"), operand("c"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`MOD` and `REM` do not associate",
		},
		{
			name: "inequivalence",
			elements: []element{
				operand("a"), loose("≠"), operand("b"), loose("≠"), operand("c"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`≠` does not associate",
		},
		{
			name: "division and inequivalence",
			elements: []element{
				operand("a"), loose("/"), operand("b"), loose("≠"), operand("c"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`/` and `≠` do not associate",
		},
		{
			name: "tight division and inequivalence",
			elements: []element{
				operand("a"), tight("/"), operand("b"), loose("≠"), operand("c"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`/` and `≠` do not associate",
		},
		{
			name: "word operators",
			elements: []element{
				operand("a"), loose("CHOOSE"), operand("b"), loose("≠"), operand("c"),
			},
			kind:    resolver.ErrorKindAssociativity,
			message: "`CHOOSE` and `≠` do not associate",
		},
	})

	t.Run("ranges", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(
			operand("1"), tight("/"), operand("2"), tight("/"), operand("3"),
		)
		require.Error(t, err)

		var associativityErr *resolver.AssociativityError
		require.ErrorAs(t, err, &associativityErr)

		assert.Equal(t, 2, associativityErr.StartPosition().Offset)
		assert.Equal(t, 6, associativityErr.SecondaryRange().StartPos.Offset)
	})
}

func TestResolve_CustomTable(t *testing.T) {

	t.Parallel()

	table, err := precedence.NewTable(&precedence.Catalog{
		Equal:  []precedence.Set{{"<", "≪"}},
		Chains: []precedence.Set{{"<"}},
	})
	require.NoError(t, err)

	r := resolver.New(table, nil)

	for _, elements := range [][]element{
		{operand("a"), loose("<"), operand("b"), loose("≪"), operand("c")},
		{operand("a"), loose("≪"), operand("b"), loose("<"), operand("c")},
	} {
		_, err := r.Resolve(sequence(elements...))
		test_utils.RequireError(t, err)

		assert.Equal(t, resolver.ErrorKindPrecedence, resolver.KindOf(err))
		assert.EqualError(t, err, "chaining operator `≪` not parsed as such")
	}

	assert.Same(t, table, r.Table())
}

func TestResolve_LongInput(t *testing.T) {

	t.Parallel()

	const count = 200_000

	repeat := func(e element, times int) []element {
		elements := make([]element, times)
		for i := range elements {
			elements[i] = e
		}
		return elements
	}

	t.Run("nested brackets", func(t *testing.T) {
		t.Parallel()

		elements := repeat(left("("), count)
		elements = append(elements, operand("a"))
		elements = append(elements, repeat(right(")"), count)...)

		result, err := resolve(elements...)
		require.NoError(t, err)

		depth := 0
		for {
			enclosing, ok := result.(*ast.EnclosingExpression)
			if !ok {
				break
			}
			require.Len(t, enclosing.Arguments, 1)
			result = enclosing.Arguments[0]
			depth++
		}
		assert.Equal(t, count, depth)
		assert.Equal(t, "a", result.String())
	})

	t.Run("nested prefix operators", func(t *testing.T) {
		t.Parallel()

		elements := repeat(loosePrefix("-"), count)
		elements = append(elements, operand("a"))

		result, err := resolve(elements...)
		require.NoError(t, err)

		depth := 0
		for {
			operation, ok := result.(*ast.OperatorExpression)
			if !ok {
				break
			}
			require.Equal(t, ast.FixityPrefix, operation.Fixity)
			result = operation.Arguments[0]
			depth++
		}
		assert.Equal(t, count, depth)
	})

	t.Run("multifix", func(t *testing.T) {
		t.Parallel()

		elements := []element{operand("a")}
		for range count - 1 {
			elements = append(elements, loose("+"), operand("a"))
		}

		result, err := resolve(elements...)
		require.NoError(t, err)

		require.IsType(t, &ast.OperatorExpression{}, result)
		assert.Len(t, result.(*ast.OperatorExpression).Arguments, count)
	})

	t.Run("chain", func(t *testing.T) {
		t.Parallel()

		elements := []element{operand("a")}
		for i := range count - 1 {
			operator := "<"
			if i%2 == 1 {
				operator = "≤"
			}
			elements = append(elements, loose(operator), operand("a"))
		}

		result, err := resolve(elements...)
		require.NoError(t, err)

		require.IsType(t, &ast.ChainExpression{}, result)
		assert.Len(t, result.(*ast.ChainExpression).Links, count-1)
	})

	t.Run("juxtaposition", func(t *testing.T) {
		t.Parallel()

		result, err := resolve(repeat(operand("f"), count)...)
		require.NoError(t, err)

		require.IsType(t, &ast.JuxtapositionExpression{}, result)
		assert.Len(t, result.(*ast.JuxtapositionExpression).Expressions, count)
	})
}

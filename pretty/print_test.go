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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
	"github.com/onflow/opresolve/tagger"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testParentError struct {
	errors []error
}

func (testParentError) Error() string {
	return "test parent error"
}

func (e testParentError) ChildErrors() []error {
	return e.errors
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errWriteFailed
}

const testLocation = "test"

func testPrint(t *testing.T, err error, code string) string {
	t.Helper()

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	printErr := printer.PrettyPrintError(
		err,
		testLocation,
		map[string]string{
			testLocation: code,
		},
	)
	require.NoError(t, printErr)
	return sb.String()
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `a + b`
	lineCount := len(strings.Split(code, "\n"))

	actual := testPrint(t,
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		code,
	)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		actual,
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   a + b"

	actual := testPrint(t,
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 7,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 9,
				},
			},
		},
		code,
	)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   a + b\n"+
			"  | \t  \t   ^^^\n",
		actual,
	)
}

func TestPrintWideCharacters(t *testing.T) {

	t.Parallel()

	const code = "全角 + x"

	actual := testPrint(t,
		testError{
			Range: ast.Range{
				StartPos: ast.Position{Offset: 9, Line: 1, Column: 9},
				EndPos:   ast.Position{Offset: 9, Line: 1, Column: 9},
			},
		},
		code,
	)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:9\n"+
			"  |\n"+
			"1 | 全角 + x\n"+
			"  |        ^\n",
		actual,
	)
}

func TestPrintMultipleLines(t *testing.T) {

	t.Parallel()

	const code = "a + (b\n+ c"

	actual := testPrint(t,
		testError{
			Range: ast.Range{
				StartPos: ast.Position{Offset: 4, Line: 1, Column: 4},
				EndPos:   ast.Position{Offset: 10, Line: 2, Column: 2},
			},
		},
		code,
	)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:4\n"+
			"  |\n"+
			"1 | a + (b\n"+
			"  |     ^^\n",
		actual,
	)
}

func TestPrintResolutionErrors(t *testing.T) {

	t.Parallel()

	resolveError := func(t *testing.T, code string) error {
		items, err := tagger.Tag(code)
		require.NoError(t, err)

		_, err = resolver.New(precedence.Default(), nil).Resolve(items)
		require.Error(t, err)
		return err
	}

	t.Run("structural", func(t *testing.T) {

		t.Parallel()

		const code = "(1 + 2"

		actual := testPrint(t, resolveError(t, code), code)
		require.Equal(t,
			"error: left encloser `(` without right encloser\n"+
				" --> test:1:0\n"+
				"  |\n"+
				"1 | (1 + 2\n"+
				"  | ^ add the matching right bracket\n",
			actual,
		)
	})

	t.Run("precedence", func(t *testing.T) {

		t.Parallel()

		const code = "a+b * c"

		actual := testPrint(t, resolveError(t, code), code)
		require.Equal(t,
			"error: tight operator `+` near loose operator `*`\n"+
				" --> test:1:4\n"+
				"  |\n"+
				"1 | a+b * c\n"+
				"  |     ^ consider adding parentheses, or spacing the operators consistently\n"+
				"1 | a+b * c\n"+
				"  |  -\n",
			actual,
		)
	})
}

func TestPrintParentError(t *testing.T) {

	t.Parallel()

	actual := testPrint(t,
		testParentError{
			errors: []error{
				errors.New("first"),
				errors.New("second"),
			},
		},
		"",
	)
	require.Equal(t,
		"error: first\n"+
			"\n"+
			"error: second\n",
		actual,
	)
}

func TestPrintUnknownLocation(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	err := NewErrorPrettyPrinter(&sb, false).PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 0},
				EndPos:   ast.Position{Line: 1, Column: 0},
			},
		},
		"other",
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> other:1:0\n",
		sb.String(),
	)
}

func TestPrintColors(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	err := NewErrorPrettyPrinter(&sb, true).PrettyPrintError(
		errors.New("test error"),
		testLocation,
		nil,
	)
	require.NoError(t, err)

	assert.Contains(t, sb.String(), "\x1b[")
	assert.Contains(t, sb.String(), "test error")
}

func TestPrintWriteFailure(t *testing.T) {

	t.Parallel()

	err := NewErrorPrettyPrinter(failingWriter{}, false).PrettyPrintError(
		errors.New("test error"),
		testLocation,
		nil,
	)
	require.ErrorIs(t, err, errWriteFailed)
}

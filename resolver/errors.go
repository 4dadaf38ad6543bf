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

package resolver

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind

type ErrorKind uint8

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindStructural
	ErrorKindPrecedence
	ErrorKindAssociativity
	ErrorKindProgramInvariant
)

// Name returns the lower-case name of the kind, as used in logs and traces
func (k ErrorKind) Name() string {
	switch k {
	case ErrorKindStructural:
		return "structural"
	case ErrorKindPrecedence:
		return "precedence"
	case ErrorKindAssociativity:
		return "associativity"
	case ErrorKindProgramInvariant:
		return "program invariant"
	}
	return "unknown"
}

// Error is the error reported when an item sequence cannot be resolved
type Error interface {
	error
	ast.HasPosition
	Kind() ErrorKind
	isResolutionError()
}

// HasSecondaryRange is implemented by errors which relate two source locations,
// e.g. two operators with incomparable precedence
type HasSecondaryRange interface {
	SecondaryRange() ast.Range
}

// KindOf returns the kind of the resolution error in the chain of the given error,
// or ErrorKindUnknown
func KindOf(err error) ErrorKind {
	var resolutionErr Error
	if !xerrors.As(err, &resolutionErr) {
		return ErrorKindUnknown
	}
	return resolutionErr.Kind()
}

// StructuralError

// StructuralError is reported when the item sequence is malformed,
// e.g. a prefix operator without an argument, or an unmatched bracket
type StructuralError struct {
	Message string
	Hint    string
	ast.Range
}

var _ Error = &StructuralError{}
var _ errors.UserError = &StructuralError{}
var _ errors.SecondaryError = &StructuralError{}

func NewStructuralError(r ast.Range, message string, params ...any) *StructuralError {
	return &StructuralError{
		Range:   r,
		Message: fmt.Sprintf(message, params...),
	}
}

func (*StructuralError) isResolutionError() {}

func (*StructuralError) IsUserError() {}

func (*StructuralError) Kind() ErrorKind {
	return ErrorKindStructural
}

func (e *StructuralError) Error() string {
	return e.Message
}

func (e *StructuralError) SecondaryError() string {
	return e.Hint
}

// PrecedenceError

// PrecedenceError is reported when neighboring operators cannot be ordered,
// e.g. loose operators of incomparable precedence, or a tight operator next to a loose one
type PrecedenceError struct {
	Message   string
	Secondary ast.Range
	ast.Range
}

var _ Error = &PrecedenceError{}
var _ errors.UserError = &PrecedenceError{}
var _ errors.SecondaryError = &PrecedenceError{}
var _ HasSecondaryRange = &PrecedenceError{}

func NewPrecedenceError(r ast.Range, secondary ast.Range, message string, params ...any) *PrecedenceError {
	return &PrecedenceError{
		Range:     r,
		Secondary: secondary,
		Message:   fmt.Sprintf(message, params...),
	}
}

func (*PrecedenceError) isResolutionError() {}

func (*PrecedenceError) IsUserError() {}

func (*PrecedenceError) Kind() ErrorKind {
	return ErrorKindPrecedence
}

func (e *PrecedenceError) Error() string {
	return e.Message
}

func (e *PrecedenceError) SecondaryRange() ast.Range {
	return e.Secondary
}

func (*PrecedenceError) SecondaryError() string {
	return "consider adding parentheses, or spacing the operators consistently"
}

// AssociativityError

// AssociativityError is reported when a non-associative operator is repeated without brackets,
// e.g. `a/b/c`
type AssociativityError struct {
	First  ast.Operator
	Second ast.Operator
}

var _ Error = &AssociativityError{}
var _ errors.UserError = &AssociativityError{}
var _ errors.SecondaryError = &AssociativityError{}
var _ HasSecondaryRange = &AssociativityError{}

func (*AssociativityError) isResolutionError() {}

func (*AssociativityError) IsUserError() {}

func (*AssociativityError) Kind() ErrorKind {
	return ErrorKindAssociativity
}

func (e *AssociativityError) Error() string {
	if e.First.Name == e.Second.Name {
		return fmt.Sprintf("`%s` does not associate", e.First.Name)
	}
	return fmt.Sprintf("`%s` and `%s` do not associate", e.First.Name, e.Second.Name)
}

func (e *AssociativityError) StartPosition() ast.Position {
	return e.First.StartPosition()
}

func (e *AssociativityError) EndPosition() ast.Position {
	return e.First.EndPosition()
}

func (e *AssociativityError) SecondaryRange() ast.Range {
	return e.Second.Range
}

func (e *AssociativityError) SecondaryError() string {
	return fmt.Sprintf("add parentheses to group either application of `%s`", e.First.Name)
}

// ProgramInvariantError

// ProgramInvariantError is reported when the resolver reaches a state
// which valid and invalid input alike should never produce.
// It indicates a bug in the resolver or its precedence table.
type ProgramInvariantError struct {
	Message string
	Stack   []byte
	ast.Range
}

var _ Error = &ProgramInvariantError{}
var _ errors.InternalError = &ProgramInvariantError{}

func NewProgramInvariantError(r ast.Range, message string, params ...any) *ProgramInvariantError {
	return &ProgramInvariantError{
		Range:   r,
		Message: fmt.Sprintf(message, params...),
		Stack:   debug.Stack(),
	}
}

func (*ProgramInvariantError) isResolutionError() {}

func (*ProgramInvariantError) IsInternalError() {}

func (*ProgramInvariantError) Kind() ErrorKind {
	return ErrorKindProgramInvariant
}

func (e *ProgramInvariantError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}

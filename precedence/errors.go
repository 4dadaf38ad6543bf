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
	"fmt"
	"strings"

	"github.com/onflow/opresolve/errors"
)

// CatalogError is reported when a catalog violates the invariants of a precedence table.
// It lists all problems found.
type CatalogError struct {
	Errors []error
}

var _ errors.UserError = &CatalogError{}
var _ errors.ParentError = &CatalogError{}

func (*CatalogError) IsUserError() {}

func (e *CatalogError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid operator catalog:")
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *CatalogError) ChildErrors() []error {
	return e.Errors
}

// UnknownGroupError

type UnknownGroupError struct {
	Name string
}

var _ errors.UserError = &UnknownGroupError{}

func (*UnknownGroupError) IsUserError() {}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown group `%s`", e.Name)
}

// CyclicGroupError

type CyclicGroupError struct {
	Name string
}

var _ errors.UserError = &CyclicGroupError{}

func (*CyclicGroupError) IsUserError() {}

func (e *CyclicGroupError) Error() string {
	return fmt.Sprintf("group `%s` refers to itself", e.Name)
}

// DuplicateAliasError

type DuplicateAliasError struct {
	Alias string
}

var _ errors.UserError = &DuplicateAliasError{}

func (*DuplicateAliasError) IsUserError() {}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate equivalence of operator `%s`", e.Alias)
}

// DuplicateEqualityError

type DuplicateEqualityError struct {
	Operator string
}

var _ errors.UserError = &DuplicateEqualityError{}

func (*DuplicateEqualityError) IsUserError() {}

func (e *DuplicateEqualityError) Error() string {
	return fmt.Sprintf("operator `%s` already in an equality group", e.Operator)
}

// CyclicOrderError

type CyclicOrderError struct {
	Higher string
	Lower  string
}

var _ errors.UserError = &CyclicOrderError{}

func (*CyclicOrderError) IsUserError() {}

func (e *CyclicOrderError) Error() string {
	return fmt.Sprintf(
		"operators `%s` and `%s` are declared to have lower precedence than each other",
		e.Higher,
		e.Lower,
	)
}

// OrderWithinEqualityError

type OrderWithinEqualityError struct {
	Higher string
	Lower  string
}

var _ errors.UserError = &OrderWithinEqualityError{}

func (*OrderWithinEqualityError) IsUserError() {}

func (e *OrderWithinEqualityError) Error() string {
	return fmt.Sprintf(
		"operators `%s` and `%s` have equal precedence, but are also ordered",
		e.Higher,
		e.Lower,
	)
}

// DuplicateLeftBracketError

type DuplicateLeftBracketError struct {
	Left     string
	Right    string
	Existing string
}

var _ errors.UserError = &DuplicateLeftBracketError{}

func (*DuplicateLeftBracketError) IsUserError() {}

func (e *DuplicateLeftBracketError) Error() string {
	return fmt.Sprintf(
		"second matching bracket for `%s` is `%s`, already matched by `%s`",
		e.Left,
		e.Right,
		e.Existing,
	)
}

// DuplicateRightBracketError

type DuplicateRightBracketError struct {
	Right string
}

var _ errors.UserError = &DuplicateRightBracketError{}

func (*DuplicateRightBracketError) IsUserError() {}

func (e *DuplicateRightBracketError) Error() string {
	return fmt.Sprintf("right bracket `%s` already registered with different left bracket", e.Right)
}

// AmbiguousBracketError

type AmbiguousBracketError struct {
	Bracket string
}

var _ errors.UserError = &AmbiguousBracketError{}

func (*AmbiguousBracketError) IsUserError() {}

func (e *AmbiguousBracketError) Error() string {
	return fmt.Sprintf("bracket `%s` is used as left and right bracket, but is not an encloser", e.Bracket)
}

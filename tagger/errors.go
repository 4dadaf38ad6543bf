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
	"fmt"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
)

// SyntaxError is reported for source text which cannot be split into items
type SyntaxError struct {
	Message string
	ast.Position
}

var _ errors.UserError = &SyntaxError{}
var _ ast.HasPosition = &SyntaxError{}

func NewSyntaxError(pos ast.Position, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf(message, params...),
		Position: pos,
	}
}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Position
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Position
}

// ItemLimitReachedError is reported when the source contains too many items
type ItemLimitReachedError struct {
	ast.Position
}

var _ errors.UserError = ItemLimitReachedError{}

func (ItemLimitReachedError) IsUserError() {}

func (ItemLimitReachedError) Error() string {
	return fmt.Sprintf("limit of %d items exceeded", itemLimit)
}

func (e ItemLimitReachedError) StartPosition() ast.Position {
	return e.Position
}

func (e ItemLimitReachedError) EndPosition() ast.Position {
	return e.Position
}

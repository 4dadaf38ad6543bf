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
	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
)

var placeholderOperator = "op"

var placeholderOtherOperator = "other"

var placeholderGroup = "group"

var placeholderPosition = ast.Position{Offset: 1, Line: 2, Column: 3}

var placeholderEndPosition = ast.Position{Offset: 4, Line: 5, Column: 6}

var placeholderRange = ast.Range{
	StartPos: placeholderPosition,
	EndPos:   placeholderEndPosition,
}

var placeholderProgramInvariantError = resolver.NewProgramInvariantError(
	placeholderRange,
	"operator frame `%s` has no operands",
	placeholderOperator,
)

var placeholderCatalogErrors = []error{
	&precedence.UnknownGroupError{Name: placeholderGroup},
	&precedence.CyclicGroupError{Name: placeholderGroup},
	&precedence.DuplicateAliasError{Alias: placeholderOperator},
	&precedence.DuplicateEqualityError{Operator: placeholderOperator},
	&precedence.CyclicOrderError{
		Higher: placeholderOperator,
		Lower:  placeholderOtherOperator,
	},
	&precedence.OrderWithinEqualityError{
		Higher: placeholderOperator,
		Lower:  placeholderOtherOperator,
	},
	&precedence.DuplicateLeftBracketError{
		Left:     "(",
		Right:    "]",
		Existing: ")",
	},
	&precedence.DuplicateRightBracketError{Right: ")"},
	&precedence.AmbiguousBracketError{Bracket: "|"},
}

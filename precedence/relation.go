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
	"github.com/onflow/opresolve/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Relation

// Relation is the precedence of one operator relative to another
type Relation uint8

const (
	// RelationNone means the operators have incomparable precedence
	RelationNone Relation = iota
	RelationEqual
	RelationHigher
	RelationLower
)

// Mirror returns the relation of the second operator relative to the first
func (r Relation) Mirror() Relation {
	switch r {
	case RelationNone, RelationEqual:
		return r
	case RelationHigher:
		return RelationLower
	case RelationLower:
		return RelationHigher
	}

	panic(errors.NewUnreachableError())
}

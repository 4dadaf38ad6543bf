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

package ast

import (
	"unicode"
	"unicode/utf8"
)

// Operator is an occurrence of an operator or bracket spelling in the source
type Operator struct {
	Name string
	Range
}

func NewOperator(name string, r Range) Operator {
	return Operator{
		Name:  name,
		Range: r,
	}
}

func (o Operator) String() string {
	return o.Name
}

// IsWord returns true if the operator is spelled with letters, e.g. MAX or CUP.
// Word operators are separated from their operands by a space when printed.
func (o Operator) IsWord() bool {
	r, _ := utf8.DecodeRuneInString(o.Name)
	return unicode.IsLetter(r)
}

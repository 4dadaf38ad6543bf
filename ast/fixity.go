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
	"encoding/json"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Fixity

// Fixity describes how an operator application was written
type Fixity uint8

const (
	FixityUnknown Fixity = iota
	FixityPrefix
	FixityPostfix
	FixityInfix
	FixityMultifix
)

// Arity returns the minimum number of arguments for an application of the given fixity
func (f Fixity) Arity() int {
	switch f {
	case FixityPrefix, FixityPostfix:
		return 1
	case FixityInfix:
		return 2
	case FixityMultifix:
		return 3
	}
	return 0
}

func (f Fixity) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

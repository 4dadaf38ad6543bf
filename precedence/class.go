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

// ClassID is the dense identifier of a canonical operator class.
// The zero value denotes a spelling that is not registered in the table.
type ClassID uint32

// Class is the equivalence class shared by all interchangeable spellings of an operator
type Class struct {
	ID ClassID
	// Name is the representative spelling
	Name string
}

func (c Class) IsRegistered() bool {
	return c.ID != 0
}

// Equal returns true if both classes are the same.
// Unregistered classes are singletons, equal only to the same spelling.
func (c Class) Equal(other Class) bool {
	if c.ID != 0 || other.ID != 0 {
		return c.ID == other.ID
	}
	return c.Name == other.Name
}

func (c Class) String() string {
	return c.Name
}

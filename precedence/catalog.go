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
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/onflow/opresolve/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Set is a list of operator spellings.
// An element prefixed with '@' refers to the members of a named group.
type Set []string

const groupReferencePrefix = "@"

func isGroupReference(element string) (string, bool) {
	return strings.CutPrefix(element, groupReferencePrefix)
}

// Order declares that all operators in Higher have higher precedence
// than all operators in Lower
type Order struct {
	Higher Set `yaml:"higher"`
	Lower  Set `yaml:"lower"`
}

type BracketPair struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Catalog is the declarative description of an operator algebra
type Catalog struct {
	Groups map[string]Set `yaml:"groups"`
	// Aliases maps an alternative spelling to the spelling it is interchangeable with
	Aliases map[string]string `yaml:"aliases"`
	// Equal lists sets of operators with equal precedence
	Equal []Set   `yaml:"equal"`
	Order []Order `yaml:"order"`
	// Chains lists sets of operators which may be mixed in one chain
	Chains         []Set         `yaml:"chains"`
	NonAssociative Set           `yaml:"nonassociative"`
	Brackets       []BracketPair `yaml:"brackets"`
	// Enclosers are brackets that are used as both left and right bracket
	Enclosers Set `yaml:"enclosers"`
}

// ParseCatalog decodes a YAML catalog. Unknown fields are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	err := yaml.UnmarshalWithOptions(data, &catalog, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("failed to parse operator catalog: %w", err)
	}
	return &catalog, nil
}

// LoadCatalog reads and decodes the YAML catalog at the given path
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to read operator catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns a fresh copy of the built-in catalog
func DefaultCatalog() *Catalog {
	catalog, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return catalog
}

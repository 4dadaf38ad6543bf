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

// A utility program that documents the errors reported by the resolver,
// with an example input and the resulting message for each of them.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/onflow/opresolve/errors"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
	"github.com/onflow/opresolve/tagger"
)

type example struct {
	kind resolver.ErrorKind
	code string
}

var examples = []example{
	{kind: resolver.ErrorKindStructural, code: ""},
	{kind: resolver.ErrorKindStructural, code: "(a"},
	{kind: resolver.ErrorKindStructural, code: "a)"},
	{kind: resolver.ErrorKindStructural, code: "(a]"},
	{kind: resolver.ErrorKindStructural, code: "a +"},
	{kind: resolver.ErrorKindStructural, code: "-"},
	{kind: resolver.ErrorKindPrecedence, code: "a+b * c"},
	{kind: resolver.ErrorKindPrecedence, code: "a<b < c"},
	{kind: resolver.ErrorKindPrecedence, code: "a + b ∪ c"},
	{kind: resolver.ErrorKindPrecedence, code: "a < b > c"},
	{kind: resolver.ErrorKindPrecedence, code: "- a*b"},
	{kind: resolver.ErrorKindPrecedence, code: "-x y"},
	{kind: resolver.ErrorKindPrecedence, code: "a*b c"},
	{kind: resolver.ErrorKindAssociativity, code: "1/2/3"},
	{kind: resolver.ErrorKindAssociativity, code: "a → b → c"},
}

// exampleError resolves the code of the example and returns the resulting error
func exampleError(r *resolver.Resolver, code string) error {
	items, err := tagger.New(r.Table()).Tag([]byte(code))
	if err != nil {
		return err
	}
	_, err = r.Resolve(items)
	if err == nil {
		panic(errors.NewUnexpectedError("example `%s` did not fail", code))
	}
	return err
}

func writeError(w io.Writer, code string, err error) {
	if code != "" {
		fmt.Fprintf(w, "- `%s`: %s", code, err)
	} else {
		fmt.Fprintf(w, "- (empty): %s", err)
	}
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		if hint := secondaryError.SecondaryError(); hint != "" {
			fmt.Fprintf(w, " (%s)", hint)
		}
	}
	fmt.Fprintln(w)
}

func generate(w io.Writer) {
	r := resolver.New(precedence.Default(), nil)

	fmt.Fprintln(w, "# Resolution errors")

	kinds := []resolver.ErrorKind{
		resolver.ErrorKindStructural,
		resolver.ErrorKindPrecedence,
		resolver.ErrorKindAssociativity,
	}
	for _, kind := range kinds {
		fmt.Fprintf(w, "\n## %s errors\n\n", capitalize(kind.Name()))
		for _, example := range examples {
			if example.kind != kind {
				continue
			}
			writeError(w, example.code, exampleError(r, example.code))
		}
	}

	fmt.Fprintf(w, "\n## %s errors\n\n", capitalize(resolver.ErrorKindProgramInvariant.Name()))
	fmt.Fprintf(w, "- %s\n", placeholderProgramInvariantError)

	fmt.Fprint(w, "\n# Catalog errors\n\n")
	for _, err := range placeholderCatalogErrors {
		fmt.Fprintf(w, "- %s\n", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func main() {
	generate(os.Stdout)
}

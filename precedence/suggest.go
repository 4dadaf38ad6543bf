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
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

const maxSuggestionDistance = 2

// Suggest returns the registered spelling closest to the given unknown spelling, if any.
// Registered spellings are not corrected.
func (t *Table) Suggest(spelling string) (suggestion string, ok bool) {
	spelling = norm.NFC.String(spelling)
	if t.id(spelling) != 0 {
		return "", false
	}

	spellingRunes := []rune(spelling)
	closestDistance := maxSuggestionDistance + 1

	for _, candidate := range t.Spellings() {
		candidateRunes := []rune(candidate)

		distance := levenshtein.DistanceForStrings(
			spellingRunes,
			candidateRunes,
			levenshtein.DefaultOptions,
		)

		// Don't suggest a candidate that would require replacing all of its characters
		if distance < closestDistance && distance < len(candidateRunes) {
			suggestion = candidate
			closestDistance = distance
		}
	}

	return suggestion, suggestion != ""
}

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
	"maps"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/SaveTheRbtz/mph"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/text/unicode/norm"

	"github.com/onflow/opresolve/errors"
)

// Table is an immutable precedence table, built once from a catalog.
//
// Classes are kept in an arena: a registered spelling is assigned a dense ClassID
// when it is first seen during construction, and all relations are indexed by that ID.
// Spellings are looked up through a minimal perfect hash built once the catalog is complete.
// The only state that changes after construction is the cache of structurally derived
// bracket pairs, which is append-only and safe for concurrent use.
type Table struct {
	// classes is indexed by ClassID; index 0 is unused
	classes []Class
	// spellings are all registered spellings and aliases, sorted.
	// index maps a spelling to its position in spellings, and spellingIDs to its class
	spellings   []string
	spellingIDs []ClassID
	index       *mph.Table
	// longest is the rune count of the longest registered spelling
	longest int
	// equal maps a class to the representative of its equality group, or 0
	equal []ClassID
	// lower maps a class a to the set of classes b, where a has lower precedence than b
	lower []*bitset.BitSet
	// chains maps a chaining class to the set of classes it may be chained with
	chains         []*bitset.BitSet
	nonAssociative *bitset.BitSet
	// rightOf maps a left bracket class to its right bracket class, or 0
	rightOf []ClassID
	rights  *bitset.BitSet
	derived bracketCache
}

var defaultTable = sync.OnceValues(NewDefaultTable)

// Default returns the shared table built from the built-in catalog
func Default() *Table {
	table, err := defaultTable()
	if err != nil {
		panic(errors.NewUnexpectedErrorFromCause(err))
	}
	return table
}

// NewDefaultTable builds a fresh table from the built-in catalog.
// Unlike Default, every call returns a new table, e.g. with an empty derived bracket cache.
func NewDefaultTable() (*Table, error) {
	return NewTable(DefaultCatalog())
}

func newTable() *Table {
	return &Table{
		classes:        []Class{{}},
		equal:          []ClassID{0},
		lower:          []*bitset.BitSet{nil},
		chains:         []*bitset.BitSet{nil},
		nonAssociative: bitset.New(0),
		rightOf:        []ClassID{0},
		rights:         bitset.New(0),
	}
}

// NewTable builds a table from the given catalog.
// All violations of the table invariants are reported in a single CatalogError.
func NewTable(catalog *Catalog) (*Table, error) {
	builder := &tableBuilder{
		table:   newTable(),
		catalog: catalog,
		groups:  map[string][]ClassID{},
		ids:     map[string]ClassID{},
	}
	return builder.build()
}

// id returns the class ID of the normalized spelling, or 0 if it is not registered
func (t *Table) id(spelling string) ClassID {
	if t.index == nil {
		return 0
	}
	n, ok := t.index.Lookup(spelling)
	if !ok {
		return 0
	}
	return t.spellingIDs[n]
}

func (t *Table) lookup(spelling string) ClassID {
	return t.id(norm.NFC.String(spelling))
}

type tableBuilder struct {
	table    *Table
	catalog  *Catalog
	groups   map[string][]ClassID
	ids      map[string]ClassID
	visiting map[string]struct{}
	problems []error
}

func (b *tableBuilder) intern(spelling string) ClassID {
	spelling = norm.NFC.String(spelling)
	if id, ok := b.ids[spelling]; ok {
		return id
	}

	t := b.table
	id := ClassID(len(t.classes))
	t.classes = append(t.classes, Class{ID: id, Name: spelling})
	b.ids[spelling] = id
	t.equal = append(t.equal, 0)
	t.lower = append(t.lower, nil)
	t.chains = append(t.chains, nil)
	t.rightOf = append(t.rightOf, 0)
	return id
}


func (b *tableBuilder) report(err error) {
	b.problems = append(b.problems, err)
}

func (b *tableBuilder) build() (*Table, error) {
	catalog := b.catalog
	table := b.table

	for _, name := range slices.Sorted(maps.Keys(catalog.Groups)) {
		b.group(name)
	}

	for _, alias := range slices.Sorted(maps.Keys(catalog.Aliases)) {
		normalized := norm.NFC.String(alias)
		if _, ok := b.ids[normalized]; ok {
			b.report(&DuplicateAliasError{Alias: alias})
			continue
		}
		b.ids[normalized] = b.intern(catalog.Aliases[alias])
	}

	for _, set := range catalog.Equal {
		b.declareEqual(b.expand(set))
	}

	for _, order := range catalog.Order {
		b.declareOrder(b.expand(order.Higher), b.expand(order.Lower))
	}

	for _, set := range catalog.Chains {
		b.declareChain(b.expand(set))
	}

	for _, id := range b.expand(catalog.NonAssociative) {
		table.nonAssociative.Set(uint(id))
	}

	for _, pair := range catalog.Brackets {
		b.declareBrackets(pair.Left, pair.Right)
	}

	for _, encloser := range catalog.Enclosers {
		b.declareBrackets(encloser, encloser)
	}

	b.validate()

	if len(b.problems) > 0 {
		return nil, &CatalogError{Errors: b.problems}
	}

	b.buildIndex()

	return table, nil
}

func (b *tableBuilder) buildIndex() {
	table := b.table

	table.spellings = slices.Sorted(maps.Keys(b.ids))
	table.spellingIDs = make([]ClassID, len(table.spellings))
	for i, spelling := range table.spellings {
		table.spellingIDs[i] = b.ids[spelling]
		table.longest = max(table.longest, utf8.RuneCountInString(spelling))
	}

	// an empty index cannot be probed
	if len(table.spellings) > 0 {
		table.index = mph.Build(table.spellings)
	}
}

// group returns the classes of the members of the named group, expanding group references
func (b *tableBuilder) group(name string) []ClassID {
	if ids, ok := b.groups[name]; ok {
		return ids
	}

	set, ok := b.catalog.Groups[name]
	if !ok {
		b.report(&UnknownGroupError{Name: name})
		return nil
	}

	if b.visiting == nil {
		b.visiting = map[string]struct{}{}
	}
	if _, ok := b.visiting[name]; ok {
		b.report(&CyclicGroupError{Name: name})
		return nil
	}
	b.visiting[name] = struct{}{}
	defer delete(b.visiting, name)

	ids := b.expand(set)
	b.groups[name] = ids
	return ids
}

// expand returns the distinct classes of the given set, in order of first occurrence
func (b *tableBuilder) expand(set Set) []ClassID {
	var ids []ClassID
	seen := bitset.New(0)

	add := func(id ClassID) {
		if seen.Test(uint(id)) {
			return
		}
		seen.Set(uint(id))
		ids = append(ids, id)
	}

	for _, element := range set {
		if name, ok := isGroupReference(element); ok {
			for _, id := range b.group(name) {
				add(id)
			}
		} else {
			add(b.intern(element))
		}
	}

	return ids
}

func (b *tableBuilder) declareEqual(ids []ClassID) {
	if len(ids) == 0 {
		return
	}

	table := b.table
	representative := ids[0]
	for _, id := range ids {
		if table.equal[id] != 0 {
			b.report(&DuplicateEqualityError{Operator: table.classes[id].Name})
			continue
		}
		table.equal[id] = representative
	}
}

func (b *tableBuilder) declareOrder(higher, lower []ClassID) {
	table := b.table
	for _, low := range lower {
		set := table.lower[low]
		if set == nil {
			set = bitset.New(uint(len(table.classes)))
			table.lower[low] = set
		}
		for _, high := range higher {
			set.Set(uint(high))
		}
	}
}

func (b *tableBuilder) declareChain(ids []ClassID) {
	table := b.table

	members := bitset.New(uint(len(table.classes)))
	for _, id := range ids {
		members.Set(uint(id))
	}

	for _, id := range ids {
		partners := table.chains[id]
		if partners == nil {
			table.chains[id] = members.Clone()
		} else {
			partners.InPlaceUnion(members)
		}
	}
}

func (b *tableBuilder) declareBrackets(left, right string) {
	table := b.table

	leftID := b.intern(left)
	rightID := b.intern(right)

	if existing := table.rightOf[leftID]; existing != 0 {
		b.report(&DuplicateLeftBracketError{
			Left:     left,
			Right:    right,
			Existing: table.classes[existing].Name,
		})
		return
	}
	table.rightOf[leftID] = rightID

	if table.rights.Test(uint(rightID)) {
		b.report(&DuplicateRightBracketError{Right: right})
		return
	}
	table.rights.Set(uint(rightID))
}

func (b *tableBuilder) validate() {
	table := b.table

	for low := ClassID(1); int(low) < len(table.classes); low++ {
		set := table.lower[low]
		if set == nil {
			continue
		}

		for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
			high := ClassID(i)

			if high == low || (table.equal[low] != 0 && table.equal[low] == table.equal[high]) {
				b.report(&OrderWithinEqualityError{
					Higher: table.classes[high].Name,
					Lower:  table.classes[low].Name,
				})
				continue
			}

			// report each cycle once
			if high > low && table.lowerThan(high, low) {
				b.report(&CyclicOrderError{
					Higher: table.classes[high].Name,
					Lower:  table.classes[low].Name,
				})
			}
		}
	}

	for left := ClassID(1); int(left) < len(table.classes); left++ {
		right := table.rightOf[left]
		if right == 0 || right == left {
			continue
		}
		if table.rights.Test(uint(left)) {
			b.report(&AmbiguousBracketError{Bracket: table.classes[left].Name})
		}
	}
}

func (t *Table) lowerThan(a, b ClassID) bool {
	set := t.lower[a]
	return set != nil && set.Test(uint(b))
}

// Canonicalize returns the class of the given spelling.
// An unregistered spelling is its own singleton class.
func (t *Table) Canonicalize(spelling string) Class {
	spelling = norm.NFC.String(spelling)
	if id := t.id(spelling); id != 0 {
		return t.classes[id]
	}
	return Class{Name: spelling}
}

// Classes returns all registered classes, ordered by ID
func (t *Table) Classes() []Class {
	classes := make([]Class, len(t.classes)-1)
	copy(classes, t.classes[1:])
	return classes
}

// Spellings returns all registered spellings, including aliases, sorted
func (t *Table) Spellings() []string {
	return slices.Clone(t.spellings)
}

// LongestSpelling returns the number of characters of the longest registered spelling
func (t *Table) LongestSpelling() int {
	return t.longest
}

// Relation returns the precedence of the operator a relative to the operator b
func (t *Table) Relation(a, b string) Relation {
	return t.ClassRelation(t.Canonicalize(a), t.Canonicalize(b))
}

// ClassRelation returns the precedence of class a relative to class b
func (t *Table) ClassRelation(a, b Class) Relation {
	if a.Equal(b) {
		return RelationEqual
	}
	if !a.IsRegistered() || !b.IsRegistered() {
		return RelationNone
	}
	if group := t.equal[a.ID]; group != 0 && group == t.equal[b.ID] {
		return RelationEqual
	}
	if t.lowerThan(a.ID, b.ID) {
		return RelationLower
	}
	if t.lowerThan(b.ID, a.ID) {
		return RelationHigher
	}
	return RelationNone
}

// IsOperator returns true if the spelling is registered, and is not a bracket
func (t *Table) IsOperator(spelling string) bool {
	id := t.lookup(spelling)
	return id != 0 &&
		t.rightOf[id] == 0 &&
		!t.rights.Test(uint(id))
}

// IsChain returns true if the operator may be used in a chain
func (t *Table) IsChain(spelling string) bool {
	id := t.lookup(spelling)
	return id != 0 && t.chains[id] != nil
}

// ChainPartners returns the classes the operator may be chained with, ordered by ID.
// The result includes the class of the operator itself.
func (t *Table) ChainPartners(spelling string) []Class {
	id := t.lookup(spelling)
	if id == 0 || t.chains[id] == nil {
		return nil
	}

	partners := t.chains[id]
	classes := make([]Class, 0, partners.Count())
	for i, ok := partners.NextSet(0); ok; i, ok = partners.NextSet(i + 1) {
		classes = append(classes, t.classes[i])
	}
	return classes
}

// IsValidChaining returns true if all of the given operators may be mixed in one chain,
// i.e. every operator's chain partners include all others.
// A non-chaining operator makes the chaining invalid.
func (t *Table) IsValidChaining(spellings []string) bool {
	members := bitset.New(uint(len(t.classes)))
	for _, spelling := range spellings {
		id := t.lookup(spelling)
		if id == 0 || t.chains[id] == nil {
			return false
		}
		members.Set(uint(id))
	}

	for i, ok := members.NextSet(0); ok; i, ok = members.NextSet(i + 1) {
		if !t.chains[i].IsSuperSet(members) {
			return false
		}
	}
	return true
}

// IsNonAssociative returns true if the operator may not be repeated without brackets
func (t *Table) IsNonAssociative(spelling string) bool {
	id := t.lookup(spelling)
	return id != 0 && t.nonAssociative.Test(uint(id))
}

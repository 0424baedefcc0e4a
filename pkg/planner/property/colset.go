// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package property

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ColumnID identifies a column produced by a plan node. IDs are allocated by
// the catalog/binder and are unique within one planning session.
type ColumnID uint

// ColSet is an unordered set of column ids. The zero value is an empty set
// and is ready to use for read-only operations.
type ColSet struct {
	bs *bitset.BitSet
}

// NewColSet builds a ColSet from the given column ids.
func NewColSet(cols ...ColumnID) ColSet {
	s := ColSet{bs: bitset.New(uint(len(cols)))}
	for _, c := range cols {
		s.bs.Set(uint(c))
	}
	return s
}

// Add inserts col into the set.
func (s *ColSet) Add(col ColumnID) {
	if s.bs == nil {
		s.bs = bitset.New(uint(col) + 1)
	}
	s.bs.Set(uint(col))
}

// Contains checks whether col is in the set.
func (s ColSet) Contains(col ColumnID) bool {
	return s.bs != nil && s.bs.Test(uint(col))
}

// Len returns the number of columns in the set.
func (s ColSet) Len() int {
	if s.bs == nil {
		return 0
	}
	return int(s.bs.Count())
}

// IsEmpty checks whether the set has no columns.
func (s ColSet) IsEmpty() bool {
	return s.Len() == 0
}

// Equals checks set equality ignoring internal capacity.
func (s ColSet) Equals(other ColSet) bool {
	if s.bs == nil || other.bs == nil {
		return s.Len() == 0 && other.Len() == 0
	}
	// bitset.Equal requires equal length, so compare via symmetric difference.
	return s.bs.SymmetricDifference(other.bs).Count() == 0
}

// Union returns a new set holding the columns of both sets.
func (s ColSet) Union(other ColSet) ColSet {
	switch {
	case s.bs == nil:
		return other.Clone()
	case other.bs == nil:
		return s.Clone()
	}
	return ColSet{bs: s.bs.Union(other.bs)}
}

// Clone returns an independent copy of the set.
func (s ColSet) Clone() ColSet {
	if s.bs == nil {
		return ColSet{}
	}
	return ColSet{bs: s.bs.Clone()}
}

// Columns returns the column ids in ascending order.
func (s ColSet) Columns() []ColumnID {
	if s.bs == nil {
		return nil
	}
	cols := make([]ColumnID, 0, s.bs.Count())
	for i, ok := s.bs.NextSet(0); ok; i, ok = s.bs.NextSet(i + 1) {
		cols = append(cols, ColumnID(i))
	}
	return cols
}

// String implements fmt.Stringer, e.g. "(1,3,7)".
func (s ColSet) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range s.Columns() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	b.WriteByte(')')
	return b.String()
}

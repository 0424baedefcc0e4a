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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColSetBasics(t *testing.T) {
	s := NewColSet(1, 3, 7)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(2))
	require.Equal(t, []ColumnID{1, 3, 7}, s.Columns())
	require.Equal(t, "(1,3,7)", s.String())

	s.Add(2)
	require.True(t, s.Contains(2))
	require.Equal(t, 4, s.Len())
}

func TestColSetZeroValue(t *testing.T) {
	var s ColSet
	require.True(t, s.IsEmpty())
	require.False(t, s.Contains(0))
	require.Nil(t, s.Columns())
	require.Equal(t, "()", s.String())
	require.True(t, s.Equals(NewColSet()))

	s.Add(5)
	require.True(t, s.Contains(5))
}

func TestColSetEquals(t *testing.T) {
	// Equality ignores internal capacity differences.
	small := NewColSet(1, 2)
	big := NewColSet(1, 2)
	big.Add(200)
	require.False(t, small.Equals(big))

	other := NewColSet(200, 2, 1)
	require.True(t, big.Equals(other))
	require.True(t, other.Equals(big))
	require.False(t, NewColSet(1).Equals(NewColSet(2)))
}

func TestColSetUnionAndClone(t *testing.T) {
	a := NewColSet(1, 2)
	b := NewColSet(2, 3)
	u := a.Union(b)
	require.True(t, u.Equals(NewColSet(1, 2, 3)))
	// Union leaves its inputs alone.
	require.True(t, a.Equals(NewColSet(1, 2)))
	require.True(t, b.Equals(NewColSet(2, 3)))

	c := a.Clone()
	c.Add(9)
	require.False(t, a.Contains(9))
	require.True(t, c.Contains(9))

	var empty ColSet
	require.True(t, empty.Union(a).Equals(a))
	require.True(t, a.Union(empty).Equals(a))
}

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

package iterative

import (
	"fmt"

	"github.com/pzhao12flakyreplay/presto/pkg/util/set"
)

// CheckConsistency validates the memo's structural invariants: every member
// child is a reference to a live group, each group holds exactly one back-edge
// per distinct parent referencing it (duplicate references from one member
// count once), every group is reachable from the root, and the group
// graph is acyclic. It is meant for tests and for the checkMemoConsistency
// failpoint; a failure indicates a bug in the memo or in a collaborator.
func (m *Memo) CheckConsistency() error {
	// Recompute the back-edges the current members imply.
	expected := make(map[GroupID]groupIDMultiset, len(m.groups))
	for id := range m.groups {
		expected[id] = make(groupIDMultiset)
	}
	for id, grp := range m.groups {
		refs, err := allReferences(grp.member)
		if err != nil {
			return err
		}
		for child := range refs {
			if _, ok := m.groups[child]; !ok {
				return ErrInvariantViolation.GenWithStackByArgs(
					fmt.Sprintf("group %d references unknown group %d", id, child))
			}
			expected[child].add(id)
		}
	}
	if _, ok := m.groups[m.rootGroup]; !ok {
		return ErrInvariantViolation.GenWithStackByArgs(
			fmt.Sprintf("root group %d is not in the store", m.rootGroup))
	}
	expected[m.rootGroup].add(RootSentinel)

	for id, grp := range m.groups {
		want := expected[id]
		got := grp.incomingReferences
		if len(got) != len(want) {
			return ErrInvariantViolation.GenWithStackByArgs(
				fmt.Sprintf("group %d has %d distinct incoming parents, want %d", id, len(got), len(want)))
		}
		for parent, n := range want {
			if got.count(parent) != n {
				return ErrInvariantViolation.GenWithStackByArgs(
					fmt.Sprintf("group %d holds %d back-edges from %d, want %d", id, got.count(parent), parent, n))
			}
		}
	}

	// Every group must be reachable from the root and no forward path may
	// close a cycle.
	visited := make(set.Set[GroupID])
	onStack := make(set.Set[GroupID])
	if err := m.walkReachable(m.rootGroup, visited, onStack); err != nil {
		return err
	}
	if visited.Count() != len(m.groups) {
		return ErrInvariantViolation.GenWithStackByArgs(
			fmt.Sprintf("%d groups reachable from root, store holds %d", visited.Count(), len(m.groups)))
	}
	return nil
}

func (m *Memo) walkReachable(id GroupID, visited, onStack set.Set[GroupID]) error {
	if onStack.Exist(id) {
		return ErrInvariantViolation.GenWithStackByArgs(
			fmt.Sprintf("cycle through group %d", id))
	}
	if visited.Exist(id) {
		return nil
	}
	visited.Insert(id)
	onStack.Insert(id)
	grp, err := m.getGroup(id)
	if err != nil {
		return err
	}
	refs, err := allReferences(grp.member)
	if err != nil {
		return err
	}
	for child := range refs {
		if err := m.walkReachable(child, visited, onStack); err != nil {
			return err
		}
	}
	delete(onStack, id)
	return nil
}

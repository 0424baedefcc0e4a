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
	"github.com/pzhao12flakyreplay/presto/pkg/planner/plannode"
	"github.com/pzhao12flakyreplay/presto/pkg/statistics"
)

// GroupID identifies one memo group. Real groups are numbered from 1 and ids
// are never reused.
type GroupID int

// RootSentinel is the synthetic parent id recorded in the root group's
// incoming references. It stands for "the outside world holds a reference to
// the root" and never names a real group.
const RootSentinel GroupID = 0

// GroupIDGenerator hands out group ids for internal usage.
type GroupIDGenerator struct {
	id GroupID
}

// NextGroupID returns the next unused group id. It is not thread safe, as the
// memo assumes exclusive access by one optimizer driver.
func (g *GroupIDGenerator) NextGroupID() GroupID {
	g.id++
	return g.id
}

// groupIDMultiset counts occurrences of parent group ids. Duplicates matter:
// while a replace is in flight, a child shared by the old and new members is
// held by the same parent twice.
type groupIDMultiset map[GroupID]int

func (ms groupIDMultiset) add(id GroupID) {
	ms[id]++
}

// remove drops one occurrence of id, reporting whether one was present.
func (ms groupIDMultiset) remove(id GroupID) bool {
	n, ok := ms[id]
	if !ok {
		return false
	}
	if n == 1 {
		delete(ms, id)
	} else {
		ms[id] = n - 1
	}
	return true
}

func (ms groupIDMultiset) count(id GroupID) int {
	return ms[id]
}

func (ms groupIDMultiset) isEmpty() bool {
	return len(ms) == 0
}

// Group is one internment cell of the memo. It holds the current member plan
// node, whose direct children are all group references, the multiset of
// parent group ids pointing at it, and an optional cached stats estimate.
type Group struct {
	member             plannode.PlanNode
	incomingReferences groupIDMultiset
	stats              *statistics.PlanStatsEstimate
}

func newGroup(member plannode.PlanNode) *Group {
	return &Group{
		member:             member,
		incomingReferences: make(groupIDMultiset),
	}
}

// Member returns the plan node currently installed in the group.
func (g *Group) Member() plannode.PlanNode {
	return g.member
}

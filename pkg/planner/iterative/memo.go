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

	"github.com/pingcap/failpoint"
	"github.com/pzhao12flakyreplay/presto/pkg/planner/plannode"
	"github.com/pzhao12flakyreplay/presto/pkg/statistics"
	"github.com/pzhao12flakyreplay/presto/pkg/util/intest"
	"github.com/pzhao12flakyreplay/presto/pkg/util/logutil"
	"github.com/pzhao12flakyreplay/presto/pkg/util/set"
	"go.uber.org/zap"
)

// Memo stores a plan in a form that's efficient to mutate locally, without
// full ancestor rewrites, even though plan nodes are immutable.
//
// Each node of the plan is interned into a numbered group and its children
// are replaced with symbolic references to the corresponding groups. A plan
// like:
//
//	A -> B -> C -> D
//	       \> E -> F
//
// is stored as:
//
//	root: G1
//
//	G1 : { A -> G2 }
//	G2 : { B -> [G3, G5] }
//	G3 : { C -> G4 }
//	G4 : { D }
//	G5 : { E -> G6 }
//	G6 : { F }
//
// Groups are reference-counted; groups that become unreachable from the root
// due to mutations in a subtree are collected eagerly. The memo assumes
// exclusive access by one optimizer driver and holds no locks.
type Memo struct {
	idAllocator *plannode.PlanNodeIDAllocator
	groupIDGen  GroupIDGenerator

	rootGroup GroupID
	groups    map[GroupID]*Group
}

// NewMemo interns the given plan tree and pins its root group against
// collection.
func NewMemo(idAllocator *plannode.PlanNodeIDAllocator, plan plannode.PlanNode) (*Memo, error) {
	m := &Memo{
		idAllocator: idAllocator,
		groups:      make(map[GroupID]*Group),
	}
	root, err := m.insertRecursive(plan)
	if err != nil {
		return nil, err
	}
	m.rootGroup = root
	m.groups[root].incomingReferences.add(RootSentinel)
	logutil.BgLogger().Debug("memo initialized",
		zap.Int("rootGroup", int(root)),
		zap.Int("groupCount", len(m.groups)))
	return m, nil
}

// RootGroup returns the group id of the plan's root.
func (m *Memo) RootGroup() GroupID {
	return m.rootGroup
}

// GroupCount returns the number of live groups.
func (m *Memo) GroupCount() int {
	return len(m.groups)
}

func (m *Memo) getGroup(id GroupID) (*Group, error) {
	grp, ok := m.groups[id]
	if !ok {
		return nil, ErrInvalidGroup.GenWithStackByArgs(id)
	}
	return grp, nil
}

// GetNode returns the current member of the given group.
func (m *Memo) GetNode(id GroupID) (plannode.PlanNode, error) {
	grp, err := m.getGroup(id)
	if err != nil {
		return nil, err
	}
	return grp.member, nil
}

// Resolve returns the current member of the referenced group.
func (m *Memo) Resolve(ref *GroupReference) (plannode.PlanNode, error) {
	return m.GetNode(ref.GroupID())
}

// Replace substitutes the member of the given group by a rewritten form of
// node. The new member must produce exactly the old member's output columns,
// so references held by ancestors stay accurate. Children of node that are
// not yet interned are inserted recursively; descendants of the old member
// that become unreachable are collected. Any cached statistics of the group
// and of its ancestors are evicted. The reason string only serves rule
// diagnostics.
func (m *Memo) Replace(id GroupID, node plannode.PlanNode, reason string) (plannode.PlanNode, error) {
	grp, err := m.getGroup(id)
	if err != nil {
		return nil, err
	}
	old := grp.member
	if !old.OutputColumns().Equals(node.OutputColumns()) {
		return nil, ErrOutputColumnsChanged.GenWithStackByArgs(
			reason, old.OutputColumns(), node.OutputColumns())
	}

	var rewritten plannode.PlanNode
	if ref, ok := node.(*GroupReference); ok {
		// The rewrite collapses this group onto an existing group's member.
		rewritten, err = m.GetNode(ref.GroupID())
	} else {
		rewritten, err = m.insertChildrenAndRewrite(node)
	}
	if err != nil {
		return nil, err
	}

	// Increments must precede decrements: a child group shared by the old
	// and new members must never transit through zero incoming references
	// and be collected mid-operation.
	if err = m.incrementReferences(rewritten, id); err != nil {
		return nil, err
	}
	grp.member = rewritten
	if err = m.decrementReferences(old, id); err != nil {
		return nil, err
	}
	m.evictStatistics(id)

	failpoint.Inject("checkMemoConsistency", func() {
		if cerr := m.CheckConsistency(); cerr != nil {
			panic(cerr)
		}
	})
	logutil.BgLogger().Debug("replaced memo group member",
		zap.Int("group", int(id)),
		zap.String("reason", reason))
	return rewritten, nil
}

// insertChildrenAndRewrite interns every child of node into a group and
// returns node rebuilt over fresh references to those groups.
func (m *Memo) insertChildrenAndRewrite(node plannode.PlanNode) (plannode.PlanNode, error) {
	children := node.Children()
	if len(children) == 0 {
		return node, nil
	}
	newChildren := make([]plannode.PlanNode, 0, len(children))
	for _, child := range children {
		childGroup, err := m.insertRecursive(child)
		if err != nil {
			return nil, err
		}
		newChildren = append(newChildren,
			NewGroupReference(m.idAllocator.NextID(), childGroup, child.OutputColumns()))
	}
	rewritten, err := node.ReplaceChildren(newChildren)
	if err != nil {
		return nil, ErrInvariantViolation.GenWithStackByArgs(err.Error())
	}
	return rewritten, nil
}

// insertRecursive materializes an externally supplied subtree into groups
// and returns the id of the group interning node. A node that is already a
// group reference resolves to its group unchanged; the caller handles the
// reference accounting.
func (m *Memo) insertRecursive(node plannode.PlanNode) (GroupID, error) {
	if ref, ok := node.(*GroupReference); ok {
		return ref.GroupID(), nil
	}
	id := m.groupIDGen.NextGroupID()
	intest.Assert(m.groups[id] == nil, "group id %d reused", id)
	rewritten, err := m.insertChildrenAndRewrite(node)
	if err != nil {
		return 0, err
	}
	m.groups[id] = newGroup(rewritten)
	if err = m.incrementReferences(rewritten, id); err != nil {
		return 0, err
	}
	return id, nil
}

// allReferences collects the distinct child groups referenced by node's
// children. Duplicate references to one child collapse to a single entry;
// increment and decrement both go through here, so the two sides of the
// accounting always agree.
func allReferences(node plannode.PlanNode) (set.Set[GroupID], error) {
	children := node.Children()
	refs := make(set.Set[GroupID], len(children))
	for _, child := range children {
		ref, ok := child.(*GroupReference)
		if !ok {
			return nil, ErrInvariantViolation.GenWithStackByArgs(
				fmt.Sprintf("member child %d is not a group reference", child.ID()))
		}
		refs.Insert(ref.GroupID())
	}
	return refs, nil
}

func (m *Memo) incrementReferences(node plannode.PlanNode, from GroupID) error {
	refs, err := allReferences(node)
	if err != nil {
		return err
	}
	for child := range refs {
		grp, err := m.getGroup(child)
		if err != nil {
			return err
		}
		grp.incomingReferences.add(from)
	}
	return nil
}

func (m *Memo) decrementReferences(node plannode.PlanNode, from GroupID) error {
	refs, err := allReferences(node)
	if err != nil {
		return err
	}
	for child := range refs {
		grp, err := m.getGroup(child)
		if err != nil {
			return err
		}
		if !grp.incomingReferences.remove(from) {
			return ErrInvariantViolation.GenWithStackByArgs(
				fmt.Sprintf("reference to remove not found: group %d -> group %d", from, child))
		}
		if grp.incomingReferences.isEmpty() {
			if err = m.deleteGroup(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// deleteGroup removes a group with no incoming references and retires its
// outgoing references, which may cascade into further deletions.
func (m *Memo) deleteGroup(id GroupID) error {
	grp, err := m.getGroup(id)
	if err != nil {
		return err
	}
	if !grp.incomingReferences.isEmpty() {
		return ErrInvariantViolation.GenWithStackByArgs(
			fmt.Sprintf("cannot delete group %d that has incoming references", id))
	}
	delete(m.groups, id)
	return m.decrementReferences(grp.member, id)
}

// GetStats returns the cached statistics estimate of the group, or nil when
// none is cached.
func (m *Memo) GetStats(id GroupID) (*statistics.PlanStatsEstimate, error) {
	grp, err := m.getGroup(id)
	if err != nil {
		return nil, err
	}
	return grp.stats, nil
}

// StoreStats caches an estimate for the group. Overwriting a prior estimate
// first evicts the group and all its ancestors, so any estimate left in the
// cache reflects a consistent snapshot of its descendants.
func (m *Memo) StoreStats(id GroupID, stats *statistics.PlanStatsEstimate) error {
	grp, err := m.getGroup(id)
	if err != nil {
		return err
	}
	if stats == nil {
		return ErrNullStatistics.GenWithStackByArgs(id)
	}
	if grp.stats != nil {
		m.evictStatistics(id)
	}
	grp.stats = stats
	return nil
}

// evictStatistics drops the cached estimate of the group and of every
// ancestor reachable through incoming references. The visited set keeps the
// walk linear when the parent graph has diamonds.
func (m *Memo) evictStatistics(id GroupID) {
	m.evictStatsRecursive(id, make(set.Set[GroupID]))
}

func (m *Memo) evictStatsRecursive(id GroupID, visited set.Set[GroupID]) {
	if visited.Exist(id) {
		return
	}
	visited.Insert(id)
	grp := m.groups[id]
	intest.Assert(grp != nil, "evicting stats of unknown group %d", id)
	if grp == nil {
		return
	}
	grp.stats = nil
	for parent := range grp.incomingReferences {
		if parent != RootSentinel {
			m.evictStatsRecursive(parent, visited)
		}
	}
}

// Extract reconstructs a self-contained plan tree equivalent to the current
// logical plan by resolving every group reference to its current member.
// It terminates because the group graph is acyclic.
func (m *Memo) Extract() (plannode.PlanNode, error) {
	node, err := m.GetNode(m.rootGroup)
	if err != nil {
		return nil, err
	}
	return ResolveGroupReferences(node, m.Lookup())
}

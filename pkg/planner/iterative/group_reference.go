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
	"github.com/pzhao12flakyreplay/presto/pkg/planner/property"
)

// GroupReference is a placeholder plan node identifying a memo group. The
// memo installs one in place of every child when it interns a subtree, so
// ancestors stay valid while the referenced group's member changes
// underneath them. The output-column set is snapshotted at insertion;
// Memo.Replace keeps it accurate.
type GroupReference struct {
	id      plannode.PlanNodeID
	groupID GroupID
	outputs property.ColSet
}

var _ plannode.PlanNode = &GroupReference{}

// NewGroupReference creates a reference to the given group.
func NewGroupReference(id plannode.PlanNodeID, groupID GroupID, outputs property.ColSet) *GroupReference {
	return &GroupReference{id: id, groupID: groupID, outputs: outputs.Clone()}
}

// ID implements the plannode.PlanNode interface.
func (r *GroupReference) ID() plannode.PlanNodeID {
	return r.id
}

// GroupID returns the id of the referenced group.
func (r *GroupReference) GroupID() GroupID {
	return r.groupID
}

// Children implements the plannode.PlanNode interface. A group reference has
// no children of its own; the referenced subtree lives behind the group.
func (r *GroupReference) Children() []plannode.PlanNode {
	return nil
}

// ReplaceChildren implements the plannode.PlanNode interface.
func (r *GroupReference) ReplaceChildren(children []plannode.PlanNode) (plannode.PlanNode, error) {
	if len(children) != 0 {
		return nil, ErrInvariantViolation.GenWithStackByArgs("group reference accepts no children")
	}
	return r, nil
}

// OutputColumns implements the plannode.PlanNode interface.
func (r *GroupReference) OutputColumns() property.ColSet {
	return r.outputs
}

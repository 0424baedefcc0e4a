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

package plannode

import (
	"github.com/pingcap/errors"
	"github.com/pzhao12flakyreplay/presto/pkg/planner/property"
)

// PlanNodeID uniquely identifies one plan node within a planning session.
type PlanNodeID int64

// PlanNode is a logically immutable node of a query plan tree. Mutation is
// expressed by building a new node, usually via ReplaceChildren.
type PlanNode interface {
	// ID returns the node's unique id.
	ID() PlanNodeID
	// Children returns the ordered child nodes. Callers must not mutate the
	// returned slice.
	Children() []PlanNode
	// ReplaceChildren builds a new node of the same kind with the children
	// substituted positionally. The child count must match the current one.
	ReplaceChildren(children []PlanNode) (PlanNode, error)
	// OutputColumns returns the unordered set of columns the node produces.
	OutputColumns() property.ColSet
}

// checkChildrenCount guards positional child substitution.
func checkChildrenCount(got, want int) error {
	if got != want {
		return errors.Errorf("mismatched children count: got %d, want %d", got, want)
	}
	return nil
}

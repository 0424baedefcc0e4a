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
)

// Lookup sees through group references, letting rewrite rules inspect a
// memoized subtree one level at a time without materializing it.
type Lookup interface {
	// Resolve returns the current member of the node's group if node is a
	// group reference, or node itself otherwise.
	Resolve(node plannode.PlanNode) (plannode.PlanNode, error)
}

type memoLookup struct {
	memo *Memo
}

// Lookup returns a Lookup resolving references against this memo's current
// state. Resolutions are not snapshots; they observe later replaces.
func (m *Memo) Lookup() Lookup {
	return memoLookup{memo: m}
}

// Resolve implements the Lookup interface.
func (l memoLookup) Resolve(node plannode.PlanNode) (plannode.PlanNode, error) {
	if ref, ok := node.(*GroupReference); ok {
		return l.memo.Resolve(ref)
	}
	return node, nil
}

// ResolveGroupReferences rebuilds a self-contained tree from node by
// recursively replacing every group reference with the member it resolves
// to under lookup.
func ResolveGroupReferences(node plannode.PlanNode, lookup Lookup) (plannode.PlanNode, error) {
	resolved, err := lookup.Resolve(node)
	if err != nil {
		return nil, err
	}
	children := resolved.Children()
	if len(children) == 0 {
		return resolved, nil
	}
	newChildren := make([]plannode.PlanNode, 0, len(children))
	for _, child := range children {
		newChild, err := ResolveGroupReferences(child, lookup)
		if err != nil {
			return nil, err
		}
		newChildren = append(newChildren, newChild)
	}
	return resolved.ReplaceChildren(newChildren)
}

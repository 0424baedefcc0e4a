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
	"github.com/pzhao12flakyreplay/presto/pkg/planner/property"
)

// basePlanNode implements the parts of PlanNode shared by all operators.
type basePlanNode struct {
	id       PlanNodeID
	children []PlanNode
	outputs  property.ColSet
}

// ID implements the PlanNode interface.
func (p *basePlanNode) ID() PlanNodeID {
	return p.id
}

// Children implements the PlanNode interface.
func (p *basePlanNode) Children() []PlanNode {
	return p.children
}

// OutputColumns implements the PlanNode interface.
func (p *basePlanNode) OutputColumns() property.ColSet {
	return p.outputs
}

func newBasePlanNode(id PlanNodeID, children []PlanNode, outputs property.ColSet) basePlanNode {
	return basePlanNode{id: id, children: children, outputs: outputs}
}

// LogicalTableScan reads all rows of one table.
type LogicalTableScan struct {
	basePlanNode

	// Table is the scanned table's name.
	Table string
}

// NewLogicalTableScan creates a table scan leaf producing the given columns.
func NewLogicalTableScan(id PlanNodeID, table string, outputs property.ColSet) *LogicalTableScan {
	return &LogicalTableScan{basePlanNode: newBasePlanNode(id, nil, outputs), Table: table}
}

// ReplaceChildren implements the PlanNode interface.
func (p *LogicalTableScan) ReplaceChildren(children []PlanNode) (PlanNode, error) {
	if err := checkChildrenCount(len(children), 0); err != nil {
		return nil, err
	}
	return p, nil
}

// LogicalValues produces an inline constant relation.
type LogicalValues struct {
	basePlanNode

	// RowCount is the number of inline rows.
	RowCount int
}

// NewLogicalValues creates a values leaf producing the given columns.
func NewLogicalValues(id PlanNodeID, rowCount int, outputs property.ColSet) *LogicalValues {
	return &LogicalValues{basePlanNode: newBasePlanNode(id, nil, outputs), RowCount: rowCount}
}

// ReplaceChildren implements the PlanNode interface.
func (p *LogicalValues) ReplaceChildren(children []PlanNode) (PlanNode, error) {
	if err := checkChildrenCount(len(children), 0); err != nil {
		return nil, err
	}
	return p, nil
}

// LogicalSelection filters its input by a predicate. Its output columns equal
// the input's.
type LogicalSelection struct {
	basePlanNode

	// Condition is the filter predicate in display form.
	Condition string
}

// NewLogicalSelection creates a selection above child.
func NewLogicalSelection(id PlanNodeID, condition string, child PlanNode) *LogicalSelection {
	return &LogicalSelection{
		basePlanNode: newBasePlanNode(id, []PlanNode{child}, child.OutputColumns().Clone()),
		Condition:    condition,
	}
}

// ReplaceChildren implements the PlanNode interface.
func (p *LogicalSelection) ReplaceChildren(children []PlanNode) (PlanNode, error) {
	if err := checkChildrenCount(len(children), 1); err != nil {
		return nil, err
	}
	return &LogicalSelection{
		basePlanNode: newBasePlanNode(p.id, children, p.outputs),
		Condition:    p.Condition,
	}, nil
}

// LogicalProjection prunes or rearranges the columns of its input.
type LogicalProjection struct {
	basePlanNode
}

// NewLogicalProjection creates a projection above child producing outputs.
func NewLogicalProjection(id PlanNodeID, child PlanNode, outputs property.ColSet) *LogicalProjection {
	return &LogicalProjection{basePlanNode: newBasePlanNode(id, []PlanNode{child}, outputs)}
}

// ReplaceChildren implements the PlanNode interface.
func (p *LogicalProjection) ReplaceChildren(children []PlanNode) (PlanNode, error) {
	if err := checkChildrenCount(len(children), 1); err != nil {
		return nil, err
	}
	return &LogicalProjection{basePlanNode: newBasePlanNode(p.id, children, p.outputs)}, nil
}

// LogicalJoin joins two inputs, producing the union of their columns.
type LogicalJoin struct {
	basePlanNode

	// Condition is the join predicate in display form.
	Condition string
}

// NewLogicalJoin creates a join of left and right.
func NewLogicalJoin(id PlanNodeID, condition string, left, right PlanNode) *LogicalJoin {
	return &LogicalJoin{
		basePlanNode: newBasePlanNode(id, []PlanNode{left, right},
			left.OutputColumns().Union(right.OutputColumns())),
		Condition: condition,
	}
}

// ReplaceChildren implements the PlanNode interface.
func (p *LogicalJoin) ReplaceChildren(children []PlanNode) (PlanNode, error) {
	if err := checkChildrenCount(len(children), 2); err != nil {
		return nil, err
	}
	return &LogicalJoin{
		basePlanNode: newBasePlanNode(p.id, children, p.outputs),
		Condition:    p.Condition,
	}, nil
}

// LogicalUnionAll concatenates any number of inputs sharing one schema.
type LogicalUnionAll struct {
	basePlanNode
}

// NewLogicalUnionAll creates a union-all over the given children.
func NewLogicalUnionAll(id PlanNodeID, children []PlanNode, outputs property.ColSet) *LogicalUnionAll {
	return &LogicalUnionAll{basePlanNode: newBasePlanNode(id, children, outputs)}
}

// ReplaceChildren implements the PlanNode interface.
func (p *LogicalUnionAll) ReplaceChildren(children []PlanNode) (PlanNode, error) {
	if err := checkChildrenCount(len(children), len(p.children)); err != nil {
		return nil, err
	}
	return &LogicalUnionAll{basePlanNode: newBasePlanNode(p.id, children, p.outputs)}, nil
}

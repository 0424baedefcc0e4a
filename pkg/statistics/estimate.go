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

package statistics

import (
	"math"

	"github.com/pzhao12flakyreplay/presto/pkg/planner/property"
)

// ColumnStatsEstimate describes the estimated data profile of one column.
type ColumnStatsEstimate struct {
	// NDV is the estimated number of distinct values.
	NDV float64
	// NullFraction is the estimated fraction of NULL rows, in [0, 1].
	NullFraction float64
}

// PlanStatsEstimate is the estimated output profile of one plan subtree. The
// memo caches at most one estimate per group and evicts it transitively when
// any descendant changes; it never computes or inspects the values.
type PlanStatsEstimate struct {
	// RowCount is the estimated number of output rows. NaN means unknown.
	RowCount float64
	// ColumnStats maps output columns to their estimates.
	ColumnStats map[property.ColumnID]ColumnStatsEstimate
}

// NewPlanStatsEstimate creates an estimate with the given row count.
func NewPlanStatsEstimate(rowCount float64) *PlanStatsEstimate {
	return &PlanStatsEstimate{
		RowCount:    rowCount,
		ColumnStats: make(map[property.ColumnID]ColumnStatsEstimate),
	}
}

// UnknownPlanStats returns an estimate carrying no information.
func UnknownPlanStats() *PlanStatsEstimate {
	return NewPlanStatsEstimate(math.NaN())
}

// IsUnknown checks whether the row count is unknown.
func (e *PlanStatsEstimate) IsUnknown() bool {
	return math.IsNaN(e.RowCount)
}

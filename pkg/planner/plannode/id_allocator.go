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
	"go.uber.org/atomic"
)

// PlanNodeIDAllocator hands out monotonically increasing plan-node ids. It is
// shared between the planner and the memo, which requests fresh ids when it
// wraps subtrees into group references.
type PlanNodeIDAllocator struct {
	next atomic.Int64
}

// NewPlanNodeIDAllocator creates an allocator starting from id 1.
func NewPlanNodeIDAllocator() *PlanNodeIDAllocator {
	return &PlanNodeIDAllocator{}
}

// NextID returns a fresh id, never handed out before.
func (a *PlanNodeIDAllocator) NextID() PlanNodeID {
	return PlanNodeID(a.next.Inc())
}

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
	"github.com/pingcap/errors"
)

// Memo errors. All of them are fatal to the current optimization and none of
// them is retriable. Failed precondition checks (an unknown target group,
// changed output columns, an absent estimate) are reported before any
// mutation. Errors raised while interning a new subtree or retiring
// references can leave groups already created or back-edges already changed.
var (
	// ErrInvalidGroup reports a lookup of an unknown group id.
	ErrInvalidGroup = errors.Normalize(
		"invalid group: %d",
		errors.RFCCodeText("PLN:Memo:ErrInvalidGroup"))

	// ErrOutputColumnsChanged reports a rewrite that would alter the set of
	// columns a group produces. It carries the rule's diagnostic reason and
	// both column sets.
	ErrOutputColumnsChanged = errors.Normalize(
		"%s: transformed expression doesn't produce same outputs: %s vs %s",
		errors.RFCCodeText("PLN:Memo:ErrOutputColumnsChanged"))

	// ErrInvariantViolation reports an internal accounting mismatch, a bug in
	// the memo or in one of its collaborators.
	ErrInvariantViolation = errors.Normalize(
		"memo invariant violated: %s",
		errors.RFCCodeText("PLN:Memo:ErrInvariantViolation"))

	// ErrNullStatistics reports an attempt to store an absent estimate.
	ErrNullStatistics = errors.Normalize(
		"stats is null for group %d",
		errors.RFCCodeText("PLN:Memo:ErrNullStatistics"))
)

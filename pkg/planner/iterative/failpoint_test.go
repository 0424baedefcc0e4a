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
	"testing"

	"github.com/pingcap/failpoint"
	"github.com/pzhao12flakyreplay/presto/pkg/planner/plannode"
	"github.com/stretchr/testify/require"
)

// TestReplaceUnderConsistencyFailpoint drives a whole rewrite sequence with
// the consistency sweep armed after every replace.
func TestReplaceUnderConsistencyFailpoint(t *testing.T) {
	fp := "github.com/pzhao12flakyreplay/presto/pkg/planner/iterative/checkMemoConsistency"
	require.NoError(t, failpoint.Enable(fp, "return(true)"))
	defer func() {
		require.NoError(t, failpoint.Disable(fp))
	}()

	m, alloc, _ := newTestMemo(t)
	gA := m.RootGroup()
	gB := childGroupID(t, m, gA, 0)

	node, err := m.GetNode(gB)
	require.NoError(t, err)
	_, err = m.Replace(gB, node, "noop under failpoint")
	require.NoError(t, err)

	oldA, err := m.GetNode(gA)
	require.NoError(t, err)
	newA := plannode.NewLogicalProjection(alloc.NextID(), oldA.Children()[0], oldA.OutputColumns().Clone())
	_, err = m.Replace(gA, newA, "drop branch under failpoint")
	require.NoError(t, err)

	require.NoError(t, m.CheckConsistency())
	require.Equal(t, 4, m.GroupCount())
}

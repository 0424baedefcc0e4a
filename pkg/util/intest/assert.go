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

package intest

import "fmt"

// Assert panics when cond is false, but only in test builds (`-tags intest`).
// It states internal invariants that are too expensive or too noisy to check
// in production.
func Assert(cond bool, msgAndArgs ...any) {
	if InTest && !cond {
		doPanic(msgAndArgs...)
	}
}

// AssertNotNil asserts that obj is not nil, in test builds only.
func AssertNotNil(obj any, msgAndArgs ...any) {
	Assert(obj != nil, msgAndArgs...)
}

// AssertFunc runs fn and asserts its result, in test builds only. Use it when
// evaluating the condition itself is costly.
func AssertFunc(fn func() bool, msgAndArgs ...any) {
	if InTest {
		Assert(fn(), msgAndArgs...)
	}
}

func doPanic(msgAndArgs ...any) {
	if len(msgAndArgs) == 0 {
		panic("assert failed")
	}
	if format, ok := msgAndArgs[0].(string); ok {
		panic(fmt.Sprintf("assert failed: "+format, msgAndArgs[1:]...))
	}
	panic(fmt.Sprintf("assert failed: %v", msgAndArgs[0]))
}

// Copyright 2021 FerretDB Inc.
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

// Package must provides helpers that panic on violated invariants,
// for use only where an error is truly impossible (a programmer mistake, not
// a runtime condition).
package must

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

// NotFail panics if err is not nil; otherwise it returns v.
func NotFail[T any](v T, err error) T {
	NoError(err)
	return v
}

// BeTrue panics if v is false.
func BeTrue(v bool) {
	if !v {
		panic("must.BeTrue: condition is false")
	}
}

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

package ejson

// frameKind distinguishes the two container shapes a [frame] can hold.
type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

// frame is one entry of the encoder's explicit traversal stack, replacing
// what would otherwise be recursive calls — the stack is what lets [Encoder.Next]
// pause mid-structure and resume on the next call.
//
// depth is the indentation level of this frame's own entries/elements (not
// of the frame's opening bracket, which sits at depth-1).
type frame struct {
	kind     frameKind
	entries  []entry
	elements []any
	cursor   int
	depth    int

	// identity is non-nil when this frame passes through a real
	// [bson.Document] or [bson.Array], used both for cycle detection and to
	// gate replacer/key-allow-list filtering (synthetic wrapper objects are
	// exempt from both).
	identity any

	// emitted is true once at least one child has actually been written,
	// distinguishing "first child" (no leading comma) from "first child
	// skipped by a replacer or key allow-list".
	emitted bool
}

// done reports whether every entry/element of the frame has been consumed.
func (f *frame) done() bool {
	if f.kind == frameObject {
		return f.cursor >= len(f.entries)
	}

	return f.cursor >= len(f.elements)
}

// nonEmpty reports whether the frame had any entries/elements at all
// (independent of how many survived replacer/key-allow-list filtering),
// used to decide whether the closing bracket needs a preceding newline.
func (f *frame) nonEmpty() bool {
	if f.kind == frameObject {
		return len(f.entries) > 0
	}

	return len(f.elements) > 0
}

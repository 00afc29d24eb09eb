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

package bson

// Array represents a BSON array as an ordered sequence of values.
//
// On the wire, arrays carry synthetic numeric keys ("0", "1", …); those are
// checked for well-formedness during decode and never surface here.
type Array struct {
	elements []any
}

// MakeArray creates an empty Array with capacity for sizeHint elements.
func MakeArray(sizeHint int) *Array {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Array{
		elements: make([]any, 0, sizeHint),
	}
}

// Add appends an element to the array.
func (arr *Array) Add(v any) {
	arr.elements = append(arr.elements, v)
}

// Len returns the number of elements in the array.
func (arr *Array) Len() int {
	if arr == nil {
		return 0
	}

	return len(arr.elements)
}

// Get returns the element at index i.
func (arr *Array) Get(i int) any {
	return arr.elements[i]
}

// Values returns the array's elements in order.
func (arr *Array) Values() []any {
	if arr == nil {
		return nil
	}

	return arr.elements
}

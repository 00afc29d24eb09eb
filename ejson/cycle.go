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

// cycleGuard tracks the identity of the *bson.Document and *bson.Array
// values currently open on the encoder's frame stack, so a value that
// reappears in its own ancestor chain is caught before it recurses forever.
//
// Only pointer-identity container values are tracked here — scalars and
// synthetic wrapper objects (Binary, Date, …) can never cycle since they
// carry no back-reference to the value that produced them.
type cycleGuard struct {
	open map[any]struct{}
}

func newCycleGuard() *cycleGuard {
	return &cycleGuard{open: make(map[any]struct{})}
}

// enter registers v as open, returning [ErrCycle] if it already is.
func (g *cycleGuard) enter(v any) error {
	if _, ok := g.open[v]; ok {
		return ErrCycle
	}

	g.open[v] = struct{}{}

	return nil
}

// leave unregisters v, called once the frame it identifies is fully emitted.
func (g *cycleGuard) leave(v any) {
	delete(g.open, v)
}

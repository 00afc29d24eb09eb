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

// Package ejson implements a streaming Extended JSON (EJSON) encoder for
// decoded BSON values, producing output byte-identical to a single-shot
// encode regardless of how the caller chunks its reads.
package ejson

import (
	"strconv"
	"strings"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// chunkSoftLimit is the approximate chunk size [Encoder.Next] targets: once
// the internal buffer reaches it, Next returns at the next point where no
// synthetic wrapper object ($numberLong, $binary, …) is open, so a typed
// value is never split across chunks. A chunk may still end between the
// entries/elements of a real document or array, at any nesting depth.
const chunkSoftLimit = 64 * 1024

// Encoder pulls successive chunks of EJSON text out of a value via [Encoder.Next].
//
// The go.mod target (1.22) predates range-over-func iterators, so this is a
// pull-style API — call Next in a loop — rather than an iter.Seq.
type Encoder struct {
	root    any
	params  resolvedParams
	guard   *cycleGuard
	stack   []*frame
	buf     strings.Builder
	started bool
	done    bool
}

// New builds an Encoder for v, normalizing the polymorphic (replacer, indent)
// argument pair per spec.md §4.2 — see [resolveParams] for the accepted shapes.
func New(v any, replacerArg, indentArg any) (*Encoder, error) {
	return NewWithOptions(v, DefaultOptions(), replacerArg, indentArg)
}

// NewWithOptions is [New] with an explicit base [Options] record, overridden
// by replacerArg/indentArg if either of them is itself an Options value.
func NewWithOptions(v any, base Options, replacerArg, indentArg any) (*Encoder, error) {
	params, err := resolveParams(base, replacerArg, indentArg)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return &Encoder{
		root:   v,
		params: params,
		guard:  newCycleGuard(),
	}, nil
}

// Next returns the next chunk of EJSON text, or ok=false once the entire
// value has been emitted. Callers must keep calling Next until ok is false
// or err is non-nil.
func (e *Encoder) Next() (chunk string, ok bool, err error) {
	if e.done {
		return "", false, nil
	}

	if !e.started {
		e.started = true

		if err = e.renderValue(e.root, 0); err != nil {
			e.done = true
			return "", false, lazyerrors.Error(err)
		}
	}

	for len(e.stack) > 0 {
		if e.buf.Len() >= chunkSoftLimit {
			wrapperOpen := false
			for _, f := range e.stack {
				if f.identity == nil {
					wrapperOpen = true
					break
				}
			}

			if !wrapperOpen {
				break
			}
		}

		top := e.stack[len(e.stack)-1]

		if top.done() {
			e.writeClose(top)

			e.stack = e.stack[:len(e.stack)-1]
			if top.identity != nil {
				e.guard.leave(top.identity)
			}

			continue
		}

		if err = e.emitNext(top); err != nil {
			e.done = true
			return "", false, lazyerrors.Error(err)
		}
	}

	if len(e.stack) == 0 {
		e.done = true
	}

	out := e.buf.String()
	e.buf.Reset()

	if out == "" && e.done {
		return "", false, nil
	}

	return out, true, nil
}

// Encode drains e completely and returns the full EJSON text in one string,
// for callers that do not need the streaming chunk boundaries.
func (e *Encoder) Encode() (string, error) {
	var b strings.Builder

	for {
		chunk, ok, err := e.Next()
		if err != nil {
			return "", err
		}

		if !ok {
			break
		}

		b.WriteString(chunk)
	}

	return b.String(), nil
}

// Marshal is a one-shot convenience wrapper around [New] and [Encoder.Encode].
func Marshal(v any, replacerArg, indentArg any) (string, error) {
	enc, err := New(v, replacerArg, indentArg)
	if err != nil {
		return "", err
	}

	return enc.Encode()
}

// renderValue projects v and either writes a literal directly to the buffer
// or pushes a new frame for its entries/elements, at the given indent depth.
func (e *Encoder) renderValue(v any, depth int) error {
	proj, err := project(v, e.params.opts)
	if err != nil {
		return lazyerrors.Error(err)
	}

	switch proj.kind {
	case projLiteral:
		e.buf.WriteString(proj.literal)

	case projObject:
		if len(proj.entries) == 0 {
			e.buf.WriteString("{}")
			return nil
		}

		if err = e.enterContainer(proj.identity); err != nil {
			return lazyerrors.Error(err)
		}

		e.buf.WriteByte('{')
		e.stack = append(e.stack, &frame{
			kind:     frameObject,
			entries:  proj.entries,
			depth:    depth + 1,
			identity: proj.identity,
		})

	case projArray:
		if len(proj.elements) == 0 {
			e.buf.WriteString("[]")
			return nil
		}

		if err = e.enterContainer(proj.identity); err != nil {
			return lazyerrors.Error(err)
		}

		e.buf.WriteByte('[')
		e.stack = append(e.stack, &frame{
			kind:     frameArray,
			elements: proj.elements,
			depth:    depth + 1,
			identity: proj.identity,
		})
	}

	return nil
}

func (e *Encoder) enterContainer(identity any) error {
	if identity == nil {
		return nil
	}

	return e.guard.enter(identity)
}

// emitNext writes one entry/element of f (applying the replacer and key
// allow-list when f passes through a real document or array) and advances
// f's cursor.
func (e *Encoder) emitNext(f *frame) error {
	if f.kind == frameObject {
		ent := f.entries[f.cursor]
		key, value := ent.Key, ent.Value

		if f.identity != nil {
			if e.params.keyList != nil && !containsKey(e.params.keyList, key) {
				f.cursor++
				return nil
			}

			if e.params.replacer != nil {
				v, ok := e.params.replacer(key, value)
				if !ok {
					f.cursor++
					return nil
				}

				value = v
			}
		}

		e.writeSeparator(f)
		e.buf.WriteString(quoteJSON(key))
		e.buf.WriteByte(':')

		if e.params.indent != "" {
			e.buf.WriteByte(' ')
		}

		f.cursor++
		f.emitted = true

		return e.renderValue(value, f.depth)
	}

	value := f.elements[f.cursor]

	if f.identity != nil && e.params.replacer != nil {
		v, ok := e.params.replacer(strconv.Itoa(f.cursor), value)
		if ok {
			value = v
		} else {
			value = nil
		}
	}

	e.writeSeparator(f)

	f.cursor++
	f.emitted = true

	return e.renderValue(value, f.depth)
}

// writeSeparator writes the comma (if this is not the first emitted child)
// and the indentation prefix (if indenting is enabled) before a child.
func (e *Encoder) writeSeparator(f *frame) {
	if f.emitted {
		e.buf.WriteByte(',')
	}

	if e.params.indent != "" {
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat(e.params.indent, f.depth))
	}
}

// writeClose writes f's closing bracket, with a preceding indented newline
// when f actually had entries/elements and indenting is enabled.
func (e *Encoder) writeClose(f *frame) {
	if e.params.indent != "" && f.nonEmpty() {
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat(e.params.indent, f.depth-1))
	}

	if f.kind == frameObject {
		e.buf.WriteByte('}')
	} else {
		e.buf.WriteByte(']')
	}
}

func containsKey(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}

	return false
}

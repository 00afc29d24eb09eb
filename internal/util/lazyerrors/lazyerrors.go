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

// Package lazyerrors provides a simple error wrapper that annotates errors
// with the call site (file, line, and function name) where they were
// created or wrapped, without the cost of a full stack trace.
package lazyerrors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// lazyError wraps another error with a call-site prefix.
type lazyError struct {
	prefix string
	err    error
}

// callerPrefix returns "[file:line pkg.Func]" for the caller skip frames up.
func callerPrefix(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "[unknown]"
	}

	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
	}

	return fmt.Sprintf("[%s:%d %s]", filepath.Base(file), line, name)
}

// New returns a new error annotated with the caller's location, similar to [errors.New].
func New(msg string) error {
	return &lazyError{prefix: callerPrefix(2), err: fmt.Errorf("%s", msg)} //nolint:err113 // msg is opaque here
}

// Errorf returns a new error annotated with the caller's location, similar to [fmt.Errorf].
//
// It supports %w the same way [fmt.Errorf] does.
func Errorf(format string, args ...any) error {
	return &lazyError{prefix: callerPrefix(2), err: fmt.Errorf(format, args...)}
}

// Error wraps err, annotating it with the caller's location.
//
// It is a no-op (other than the annotation) when err is non-nil;
// callers typically use it as `return nil, lazyerrors.Error(err)`.
func Error(err error) error {
	return &lazyError{prefix: callerPrefix(2), err: err}
}

// Error implements the error interface.
func (e *lazyError) Error() string {
	return e.prefix + " " + e.err.Error()
}

// Unwrap implements errors.Unwrap / errors.Is / errors.As support.
func (e *lazyError) Unwrap() error {
	return e.err
}

// GoString implements fmt.GoStringer, used by the %#v verb.
func (e *lazyError) GoString() string {
	return "lazyerror(" + e.Error() + ")"
}

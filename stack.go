/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package canonerr

import (
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth bounds how many frames a captured trace holds.
const maxStackDepth = 32

// CaptureStack renders the call stack of its caller below header. skip=0
// starts the trace at the caller of CaptureStack; exception constructors in
// other packages pass the number of their own helper frames.
func CaptureStack(skip int, header string) string {
	return captureStack(skip+1, header)
}

// captureStack renders the current call stack below header.
//
// skip=0 starts the trace at the caller of captureStack. Each frame is
// printed as the function name followed by an indented file:line, the same
// layout the runtime uses for goroutine dumps.
func captureStack(skip int, header string) string {
	pc := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and captureStack itself.
	n := runtime.Callers(skip+2, pc)

	var b strings.Builder
	b.WriteString(header)
	if n == 0 {
		return b.String()
	}
	frames := runtime.CallersFrames(pc[:n])
	for {
		fr, more := frames.Next()
		if fr.Function != "" {
			_, _ = fmt.Fprintf(&b, "\n%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

// WithStack annotates err with the stack trace of its call site so that the
// normalizer can report it as errorStack. It returns nil when err is nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &withStack{err: err, stack: captureStack(1, err.Error())}
}

type withStack struct {
	err   error
	stack string
}

func (w *withStack) Error() string      { return w.err.Error() }
func (w *withStack) Unwrap() error      { return w.err }
func (w *withStack) StackTrace() string { return w.stack }

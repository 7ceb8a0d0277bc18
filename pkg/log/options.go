// Copyright 2019 The Bridgefs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"io"
	"path/filepath"
	"runtime"
)

// Flag is the set of header flags determining what each log line is prefixed
// with.
type Flag int

const (
	Lmode Flag = 1 << iota // Single character mode indicator: I0419 ...
	Ldate                  // Date in yymmdd format: I180419 ...
	Ltime                  // Time in hh:mm:ss format: I180419 06:33:04 ...
	Lmicroseconds          // Microsecond resolution, implies Ltime: 06:33:04.606396 ...
	Llongfile              // Fully qualified file name and line number: /a/b/c/d.go:23 ...
	Lshortfile             // Base file name and line number: d.go:23, overrides Llongfile
	LUTC                   // Use UTC rather than the local time zone

	LstdFlags = Lmode | Ldate | Ltime | Lshortfile
)

type option func(*Logger)

// Writer configures the logger to write out to the given io.Writer. The
// writer is used as is; wrap it with SynchronizedWriter if the logger is
// shared across goroutines.
func Writer(w io.Writer) option {
	return func(l *Logger) {
		l.w = w
	}
}

// Flags configures the logger's header format.
func Flags(f Flag) option {
	return func(l *Logger) {
		l.flag = f
	}
}

// SkipBasePath elides the repository base path from file names emitted under
// Llongfile. With no arguments the base path is inferred from the caller's
// source location, assumed to sit two directories below the repository root
// (as cmd/<command>/run.go files do); an explicit path overrides the
// inference. File names outside the base path are left untouched.
func SkipBasePath(path ...string) option {
	var base string
	if len(path) > 0 {
		base = path[0]
	} else if _, file, _, ok := runtime.Caller(1); ok {
		base = filepath.Dir(filepath.Dir(filepath.Dir(file)))
	}
	return func(l *Logger) {
		l.basePath = base
	}
}

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

// Package log implements modal execution logs. Each statement is logged under
// one of five modes (info, warn, error, fatal, debug); a process-wide mode
// mask filters what actually gets emitted:
//
//      logger := log.New()
//      logger.Info("hello, world")
//
//      log.SetGlobalLogMode(log.DefaultMode | log.DebugMode)
//      logger.Debugf("now visible: %d", 42)
//
// The logger is configured with variadic options during initialization; it
// can be made safe for concurrent use, write out to rotating files, and log
// with specific formatted headers:
//
//      writer := log.MultiWriter(os.Stderr,
//              log.LogRotationWriter("/logs", 50<<20 /* 50 MiB */))
//      writer = log.SynchronizedWriter(writer)
//      logf := log.Lmode | log.Ldate | log.Ltime | log.Llongfile
//      logger := log.New(log.Writer(writer), log.Flags(logf), log.SkipBasePath())
package log

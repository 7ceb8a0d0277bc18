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

// Package bridge exposes a userspace filesystem's operation callbacks (open,
// read, write, getattr, readdir) to handler logic living outside the driver.
//
// Handlers never see host filesystem structures. Each operation is translated
// into a neutral shape (FileInfo for per-descriptor state, FileAttributes for
// stat results, DirList for directory listings) before the handler runs, and
// handler mutations are translated back afterwards. Handlers signal outcomes
// as negated POSIX errnos, with zero or a positive byte count denoting
// success; the dispatcher passes those codes through to the host unchanged
// and never invents its own.
//
// The handler configuration is a Callbacks value injected into NewDispatcher.
// Every slot is optional: an operation whose slot is nil fails with EPERM
// before any translation work happens.
//
// Directory listings cross an ownership boundary and use an allocator
// handoff; see the DirList type and the ownership help topic for the
// contract.
package bridge

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

package bridge

import "syscall"

// DirAlloc allocates a DirList sized for capacity entries. The dispatcher
// supplies one to the readdir handler; handlers must allocate listings only
// through it. The allocator is stateless and safe for reentrant use.
type DirAlloc func(capacity int) *DirList

// NewDirList is the canonical DirAlloc.
func NewDirList(capacity int) *DirList {
	return &DirList{entries: make([]string, 0, capacity)}
}

// DirList is an owned buffer of directory entry names. The producing handler
// appends entries and returns the list; from that point the dispatcher owns
// it, drains the entries into the host, and releases it exactly once.
// Producer use after the handoff is a bug, and Append panics once the list
// has been released.
//
// A nil *DirList denotes a missing directory, distinct from an empty listing.
type DirList struct {
	entries  []string
	released bool
}

// Append adds an entry name to the listing.
func (l *DirList) Append(name string) {
	if l.released {
		panic("bridge: append to released directory listing")
	}
	l.entries = append(l.entries, name)
}

// Len returns the number of entries appended so far.
func (l *DirList) Len() int {
	return len(l.entries)
}

// Released reports whether ownership of the listing has been reclaimed.
func (l *DirList) Released() bool {
	return l.released
}

// Release reclaims the listing's backing memory. Only the owning dispatcher
// calls this, exactly once, whether or not delivery succeeded.
func (l *DirList) Release() {
	if l.released {
		panic("bridge: release of already released directory listing")
	}
	l.released = true
	l.entries = nil
}

// Drain hands each entry to fill in append order. A rejected entry stops
// delivery and fails the operation with EIO; entries already delivered
// stand, there is no rollback. Draining is the owning consumer's job.
func (l *DirList) Drain(fill func(name string) bool) int {
	for _, name := range l.entries {
		if !fill(name) {
			return Errno(syscall.EIO)
		}
	}
	return 0
}

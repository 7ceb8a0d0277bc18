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

// Handler signatures. All result codes are zero (or a positive byte count,
// where noted) for success and a negated POSIX errno for failure; see Errno.

// An OpenFunc handles an open of path. The handler may record descriptor
// state in info (handle, direct IO, seekability); that state is carried to
// every later operation on the descriptor.
type OpenFunc func(path string, info *FileInfo) int

// A GetAttrFunc fills attr with stat results for path.
type GetAttrFunc func(path string, attr *FileAttributes) int

// A ReadFunc fills p with file content starting at offset, returning the
// number of bytes produced. A count shorter than len(p) is still success.
type ReadFunc func(path string, p []byte, offset uint64, info *FileInfo) int

// A WriteFunc consumes p at offset, returning the number of bytes accepted.
// A count shorter than len(p) is still success.
type WriteFunc func(path string, p []byte, offset uint64, info *FileInfo) int

// A ReadDirFunc lists a directory. The handler allocates a listing through
// alloc, appends entry names (including "." and ".."), and returns it along
// with its result code; ownership of the listing transfers to the caller on
// return. Returning a nil listing denotes a missing directory.
type ReadDirFunc func(path string, alloc DirAlloc) (*DirList, int)

// Callbacks is the handler configuration injected into a dispatcher. Each
// slot is optional: a nil slot makes the corresponding operation fail with
// EPERM. The value is read-only once the dispatcher is constructed, which is
// what makes lock-free concurrent dispatch sound.
type Callbacks struct {
	Open    OpenFunc
	GetAttr GetAttrFunc
	Read    ReadFunc
	Write   WriteFunc
	ReadDir ReadDirFunc
}

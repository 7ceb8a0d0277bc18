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

import (
	"os"
	"syscall"

	"bazil.org/fuse"
)

// FileInfo is the neutral form of per-descriptor state. It is seeded from the
// host's open request, handed to the handler for every operation on the
// descriptor, and survives for the descriptor's lifetime, so flags a handler
// records at open are visible to its later reads and writes.
type FileInfo struct {
	// Handle is an opaque handler-assigned identifier. The bridge carries it
	// without interpreting it.
	Handle uint64

	// Flags are the POSIX open flags the descriptor was opened with.
	Flags uint32

	// DirectIO asks the host to bypass its page cache for this descriptor.
	DirectIO bool

	// Nonseekable marks the descriptor as non-seekable to the host.
	Nonseekable bool
}

// FileAttributes is the neutral form of a stat result.
type FileAttributes struct {
	Size uint64
	Mode uint32
	UID  uint32
	GID  uint32
}

// Errno negates a POSIX errno into the integer form handlers return. Zero and
// positive handler results denote success.
func Errno(e syscall.Errno) int {
	return -int(e)
}

// errnoErr maps a negative handler result code onto the host's error type.
func errnoErr(rv int) error {
	return fuse.Errno(syscall.Errno(-rv))
}

// loadFileInfo seeds neutral descriptor state from an open request.
func loadFileInfo(req *fuse.OpenRequest) *FileInfo {
	return &FileInfo{Flags: uint32(req.Flags)}
}

// unloadFileInfo applies handler-set descriptor state to the open response.
func unloadFileInfo(info *FileInfo, resp *fuse.OpenResponse) {
	if info.DirectIO {
		resp.Flags |= fuse.OpenDirectIO
	}
	if info.Nonseekable {
		resp.Flags |= fuse.OpenNonSeekable
	}
}

// unloadAttributes applies a handler-filled stat result to the host
// attribute structure.
func unloadAttributes(attr *FileAttributes, a *fuse.Attr) {
	a.Size = attr.Size
	a.Mode = fileMode(attr.Mode)
	a.Uid = attr.UID
	a.Gid = attr.GID
}

// fileMode converts raw POSIX mode bits to the host representation.
func fileMode(mode uint32) os.FileMode {
	fm := os.FileMode(mode & 0777)
	switch mode & syscall.S_IFMT {
	case syscall.S_IFDIR:
		fm |= os.ModeDir
	case syscall.S_IFLNK:
		fm |= os.ModeSymlink
	case syscall.S_IFIFO:
		fm |= os.ModeNamedPipe
	case syscall.S_IFSOCK:
		fm |= os.ModeSocket
	case syscall.S_IFCHR:
		fm |= os.ModeDevice | os.ModeCharDevice
	case syscall.S_IFBLK:
		fm |= os.ModeDevice
	}
	return fm
}

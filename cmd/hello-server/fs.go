package helloserver

import (
	"os"
	"syscall"

	"github.com/bridgefs/bridgefs/pkg/bridge"
)

const (
	greetingPath    = "/greeting"
	greetingContent = "Hello World!\n"
)

// callbacks builds the handler configuration for the reference filesystem: a
// read-only greeting file under the root. The write slot is deliberately left
// unset, so writes come back as EPERM.
func callbacks() bridge.Callbacks {
	uid, gid := uint32(os.Getuid()), uint32(os.Getgid())

	return bridge.Callbacks{
		GetAttr: func(path string, attr *bridge.FileAttributes) int {
			switch path {
			case "/":
				attr.Mode = syscall.S_IFDIR | 0755
				attr.UID, attr.GID = uid, gid
				return 0
			case greetingPath:
				attr.Mode = syscall.S_IFREG | 0444
				attr.Size = uint64(len(greetingContent))
				attr.UID, attr.GID = uid, gid
				return 0
			}
			return bridge.Errno(syscall.ENOENT)
		},
		ReadDir: func(path string, alloc bridge.DirAlloc) (*bridge.DirList, int) {
			if path != "/" {
				return nil, 0
			}
			list := alloc(3)
			list.Append(".")
			list.Append("..")
			list.Append("greeting")
			return list, 0
		},
		Open: func(path string, info *bridge.FileInfo) int {
			if path != greetingPath {
				return bridge.Errno(syscall.ENOENT)
			}
			if info.Flags&uint32(syscall.O_ACCMODE) != uint32(syscall.O_RDONLY) {
				return bridge.Errno(syscall.EACCES)
			}
			return 0
		},
		Read: func(path string, p []byte, offset uint64, info *bridge.FileInfo) int {
			if path != greetingPath {
				return bridge.Errno(syscall.ENOENT)
			}
			if offset >= uint64(len(greetingContent)) {
				return 0
			}
			return copy(p, greetingContent[offset:])
		},
	}
}

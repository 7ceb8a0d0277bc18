package bridge

import (
	"context"
	"hash/fnv"
	pathpkg "path"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"github.com/bridgefs/bridgefs/pkg/log"
)

// Dispatcher routes host filesystem operations through the configured
// callbacks. It implements the host's filesystem interface; nodes are keyed
// by path, matching the path-addressed handler model.
type Dispatcher struct {
	logger    *log.Logger
	callbacks Callbacks
	alloc     DirAlloc
}

func NewDispatcher(logger *log.Logger, callbacks Callbacks) *Dispatcher {
	return &Dispatcher{
		logger:    logger,
		callbacks: callbacks,
		alloc:     NewDirList,
	}
}

func (d *Dispatcher) Root() (fusefs.Node, error) {
	return &Dir{dispatcher: d, path: "/"}, nil
}

// The dispatch methods below mirror one filesystem operation each: gate on
// the slot being set, translate host structures to neutral shapes, invoke the
// handler, translate results back. Handler result codes pass through
// unchanged.

func (d *Dispatcher) open(path string, req *fuse.OpenRequest, resp *fuse.OpenResponse) (*FileInfo, int) {
	if d.callbacks.Open == nil {
		return nil, Errno(syscall.EPERM)
	}
	info := loadFileInfo(req)
	if rv := d.callbacks.Open(path, info); rv < 0 {
		return nil, rv
	}
	unloadFileInfo(info, resp)
	return info, 0
}

func (d *Dispatcher) getattr(path string, a *fuse.Attr) int {
	if d.callbacks.GetAttr == nil {
		return Errno(syscall.EPERM)
	}
	var attr FileAttributes
	rv := d.callbacks.GetAttr(path, &attr)
	// A missing path round-trips nothing. Anything else reflects the
	// handler's attributes, with the link count pinned: handlers don't track
	// hard links.
	if rv != Errno(syscall.ENOENT) {
		a.Nlink = 1
		unloadAttributes(&attr, a)
	}
	return rv
}

func (d *Dispatcher) read(path string, req *fuse.ReadRequest, resp *fuse.ReadResponse, info *FileInfo) int {
	if d.callbacks.Read == nil {
		return Errno(syscall.EPERM)
	}
	buf := make([]byte, req.Size)
	rv := d.callbacks.Read(path, buf, uint64(req.Offset), info)
	if rv < 0 {
		return rv
	}
	// Short counts are success; the host treats them as EOF.
	resp.Data = buf[:rv]
	return 0
}

func (d *Dispatcher) write(path string, req *fuse.WriteRequest, resp *fuse.WriteResponse, info *FileInfo) int {
	if d.callbacks.Write == nil {
		return Errno(syscall.EPERM)
	}
	rv := d.callbacks.Write(path, req.Data, uint64(req.Offset), info)
	if rv < 0 {
		return rv
	}
	resp.Size = rv
	return 0
}

func (d *Dispatcher) readdir(path string, fill func(name string) bool) int {
	if d.callbacks.ReadDir == nil {
		return Errno(syscall.EPERM)
	}
	list, rv := d.callbacks.ReadDir(path, d.alloc)
	if list == nil {
		return Errno(syscall.ENOENT)
	}
	defer list.Release()
	if rv < 0 {
		return rv
	}
	return list.Drain(fill)
}

// attr services both file and directory stat requests.
func (d *Dispatcher) attr(path string, a *fuse.Attr) error {
	if rv := d.getattr(path, a); rv < 0 {
		return errnoErr(rv)
	}
	a.Inode = inode(path)
	return nil
}

// Dir is a directory node.
type Dir struct {
	dispatcher *Dispatcher
	path       string
}

func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	return d.dispatcher.attr(d.path, a)
}

func (d *Dir) Lookup(ctx context.Context, name string) (fusefs.Node, error) {
	path := pathpkg.Join(d.path, name)
	if d.dispatcher.callbacks.GetAttr == nil {
		return nil, errnoErr(Errno(syscall.EPERM))
	}

	var attr FileAttributes
	if rv := d.dispatcher.callbacks.GetAttr(path, &attr); rv < 0 {
		return nil, errnoErr(rv)
	}

	if attr.Mode&syscall.S_IFMT == syscall.S_IFDIR {
		return &Dir{dispatcher: d.dispatcher, path: path}, nil
	}
	return &File{dispatcher: d.dispatcher, path: path}, nil
}

func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	dirents := make([]fuse.Dirent, 0)
	rv := d.dispatcher.readdir(d.path, func(name string) bool {
		dirents = append(dirents, fuse.Dirent{
			Inode: inode(pathpkg.Join(d.path, name)),
			Type:  direntType(name),
			Name:  name,
		})
		return true
	})
	if rv < 0 {
		return nil, errnoErr(rv)
	}

	d.dispatcher.logger.Debugf("listed %s: %d entries", d.path, len(dirents))
	return dirents, nil
}

// File is a regular file node.
type File struct {
	dispatcher *Dispatcher
	path       string
}

func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	return f.dispatcher.attr(f.path, a)
}

func (f *File) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fusefs.Handle, error) {
	info, rv := f.dispatcher.open(f.path, req, resp)
	if rv < 0 {
		return nil, errnoErr(rv)
	}

	f.dispatcher.logger.Debugf("opened %s: handle %d flags %#x", f.path, info.Handle, info.Flags)
	return &FileHandle{file: f, info: info}, nil
}

// FileHandle is an open descriptor. It retains the neutral descriptor state
// the handler established at open, so handler-set fields are visible to every
// read and write on the descriptor.
type FileHandle struct {
	file *File
	info *FileInfo
}

func (h *FileHandle) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	if rv := h.file.dispatcher.read(h.file.path, req, resp, h.info); rv < 0 {
		return errnoErr(rv)
	}
	return nil
}

func (h *FileHandle) Write(ctx context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	if rv := h.file.dispatcher.write(h.file.path, req, resp, h.info); rv < 0 {
		return errnoErr(rv)
	}
	return nil
}

// inode derives a stable inode number from a path. Handlers are
// path-addressed and carry no inode concept of their own.
func inode(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}

func direntType(name string) fuse.DirentType {
	// Entry types beyond the dot entries would cost a stat round trip per
	// entry; the host resolves unknowns at lookup instead.
	if name == "." || name == ".." {
		return fuse.DT_Dir
	}
	return fuse.DT_Unknown
}

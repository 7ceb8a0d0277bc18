package helloserver

import (
	"syscall"
	"testing"

	"github.com/bridgefs/bridgefs/pkg/bridge"
)

func TestGreetingAttributes(t *testing.T) {
	cb := callbacks()

	var attr bridge.FileAttributes
	if rv := cb.GetAttr("/greeting", &attr); rv != 0 {
		t.Fatalf("expected success, got %d", rv)
	}
	if attr.Size != 13 {
		t.Errorf("expected size 13, got %d", attr.Size)
	}
	if attr.Mode&syscall.S_IFMT != syscall.S_IFREG {
		t.Errorf("expected regular file mode, got %#o", attr.Mode)
	}

	if rv := cb.GetAttr("/nonexistent", &attr); rv != bridge.Errno(syscall.ENOENT) {
		t.Errorf("expected ENOENT, got %d", rv)
	}
}

func TestGreetingOpenModes(t *testing.T) {
	cb := callbacks()

	if rv := cb.Open("/greeting", &bridge.FileInfo{Flags: uint32(syscall.O_RDONLY)}); rv != 0 {
		t.Errorf("expected read-only open success, got %d", rv)
	}
	if rv := cb.Open("/greeting", &bridge.FileInfo{Flags: uint32(syscall.O_WRONLY)}); rv != bridge.Errno(syscall.EACCES) {
		t.Errorf("expected EACCES for write open, got %d", rv)
	}
	if rv := cb.Open("/nonexistent", &bridge.FileInfo{}); rv != bridge.Errno(syscall.ENOENT) {
		t.Errorf("expected ENOENT, got %d", rv)
	}

	if cb.Write != nil {
		t.Error("expected write slot unset for the read-only filesystem")
	}
}

func TestGreetingRead(t *testing.T) {
	cb := callbacks()
	info := &bridge.FileInfo{}

	buf := make([]byte, 64)
	rv := cb.Read("/greeting", buf, 0, info)
	if rv != 13 {
		t.Fatalf("expected 13 bytes, got %d", rv)
	}
	if string(buf[:rv]) != "Hello World!\n" {
		t.Errorf("expected greeting, got %q", buf[:rv])
	}

	// Offset reads return the tail; reads at or past EOF return zero bytes.
	rv = cb.Read("/greeting", buf, 6, info)
	if rv != 7 || string(buf[:rv]) != "World!\n" {
		t.Errorf("expected tail read, got %d %q", rv, buf[:rv])
	}
	if rv := cb.Read("/greeting", buf, 13, info); rv != 0 {
		t.Errorf("expected zero-byte read at EOF, got %d", rv)
	}
}

func TestRootListing(t *testing.T) {
	cb := callbacks()

	alloc := func(capacity int) *bridge.DirList { return &bridge.DirList{} }
	list, rv := cb.ReadDir("/", alloc)
	if rv != 0 || list == nil {
		t.Fatalf("expected listing, got list=%v rv=%d", list, rv)
	}
	if list.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", list.Len())
	}

	if list, _ := cb.ReadDir("/greeting", alloc); list != nil {
		t.Error("expected nil listing for non-directory")
	}
}

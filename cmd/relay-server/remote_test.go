package relayserver

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"google.golang.org/grpc"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/log"
	bpb "github.com/bridgefs/bridgefs/pkg/pb/bridge"
)

// fakeBridgeClient implements bpb.BridgeServiceClient with canned responses.
type fakeBridgeClient struct {
	openResp    *bpb.OpenResponse
	getattrResp *bpb.GetAttributesResponse
	readResp    *bpb.ReadResponse
	writeResp   *bpb.WriteResponse
	readdirResp *bpb.ReadDirectoryResponse
	err         error
}

func (f *fakeBridgeClient) Open(ctx context.Context, in *bpb.OpenRequest, opts ...grpc.CallOption) (*bpb.OpenResponse, error) {
	return f.openResp, f.err
}

func (f *fakeBridgeClient) GetAttributes(ctx context.Context, in *bpb.GetAttributesRequest, opts ...grpc.CallOption) (*bpb.GetAttributesResponse, error) {
	return f.getattrResp, f.err
}

func (f *fakeBridgeClient) Read(ctx context.Context, in *bpb.ReadRequest, opts ...grpc.CallOption) (*bpb.ReadResponse, error) {
	return f.readResp, f.err
}

func (f *fakeBridgeClient) Write(ctx context.Context, in *bpb.WriteRequest, opts ...grpc.CallOption) (*bpb.WriteResponse, error) {
	return f.writeResp, f.err
}

func (f *fakeBridgeClient) ReadDirectory(ctx context.Context, in *bpb.ReadDirectoryRequest, opts ...grpc.CallOption) (*bpb.ReadDirectoryResponse, error) {
	return f.readdirResp, f.err
}

func testAlloc(capacity int) *bridge.DirList {
	return &bridge.DirList{}
}

func TestResultPassthrough(t *testing.T) {
	remote := newRemoteCallbacks(log.Discarder(), &fakeBridgeClient{
		openResp:    &bpb.OpenResponse{Result: int32(bridge.Errno(syscall.EACCES))},
		getattrResp: &bpb.GetAttributesResponse{Result: int32(bridge.Errno(syscall.ENOENT))},
		writeResp:   &bpb.WriteResponse{Result: 4},
	})

	var info bridge.FileInfo
	if rv := remote.open("/f", &info); rv != bridge.Errno(syscall.EACCES) {
		t.Errorf("open: expected EACCES passthrough, got %d", rv)
	}

	var attr bridge.FileAttributes
	if rv := remote.getattr("/f", &attr); rv != bridge.Errno(syscall.ENOENT) {
		t.Errorf("getattr: expected ENOENT passthrough, got %d", rv)
	}

	if rv := remote.write("/f", []byte("abcdef"), 0, &info); rv != 4 {
		t.Errorf("write: expected accepted count 4, got %d", rv)
	}
}

func TestTransportFailureIsEIO(t *testing.T) {
	remote := newRemoteCallbacks(log.Discarder(), &fakeBridgeClient{
		err: errors.New("connection refused"),
	})
	eio := bridge.Errno(syscall.EIO)

	var info bridge.FileInfo
	if rv := remote.open("/f", &info); rv != eio {
		t.Errorf("open: expected EIO, got %d", rv)
	}
	var attr bridge.FileAttributes
	if rv := remote.getattr("/f", &attr); rv != eio {
		t.Errorf("getattr: expected EIO, got %d", rv)
	}
	if rv := remote.read("/f", make([]byte, 4), 0, &info); rv != eio {
		t.Errorf("read: expected EIO, got %d", rv)
	}
	if rv := remote.write("/f", []byte("x"), 0, &info); rv != eio {
		t.Errorf("write: expected EIO, got %d", rv)
	}

	// An unreachable handler isn't a missing directory: the listing comes
	// back non-nil alongside the failure.
	list, rv := remote.readdir("/", testAlloc)
	if rv != eio {
		t.Errorf("readdir: expected EIO, got %d", rv)
	}
	if list == nil {
		t.Error("readdir: expected non-nil listing on transport failure")
	}
}

func TestDescriptorStateRoundTrip(t *testing.T) {
	remote := newRemoteCallbacks(log.Discarder(), &fakeBridgeClient{
		openResp: &bpb.OpenResponse{
			Result: 0,
			Info:   &bpb.FileInfo{Handle: 7, Flags: 0, DirectIo: true},
		},
	})

	info := bridge.FileInfo{Flags: uint32(syscall.O_RDONLY)}
	if rv := remote.open("/f", &info); rv != 0 {
		t.Fatalf("expected success, got %d", rv)
	}
	if info.Handle != 7 {
		t.Errorf("expected handler-assigned handle 7, got %d", info.Handle)
	}
	if !info.DirectIO {
		t.Error("expected direct IO flag copied back")
	}
}

func TestReadCopiesData(t *testing.T) {
	remote := newRemoteCallbacks(log.Discarder(), &fakeBridgeClient{
		readResp: &bpb.ReadResponse{Result: 5, Data: []byte("Hello")},
	})

	buf := make([]byte, 16)
	rv := remote.read("/f", buf, 0, &bridge.FileInfo{})
	if rv != 5 {
		t.Fatalf("expected 5 bytes, got %d", rv)
	}
	if string(buf[:rv]) != "Hello" {
		t.Errorf("expected Hello, got %q", buf[:rv])
	}
}

func TestReadDirListings(t *testing.T) {
	remote := newRemoteCallbacks(log.Discarder(), &fakeBridgeClient{
		readdirResp: &bpb.ReadDirectoryResponse{
			Result:  int32(bridge.Errno(syscall.ENOENT)),
			Found:   false,
			Entries: nil,
		},
	})

	if list, _ := remote.readdir("/missing", testAlloc); list != nil {
		t.Error("expected nil listing for a missing directory")
	}

	remote = newRemoteCallbacks(log.Discarder(), &fakeBridgeClient{
		readdirResp: &bpb.ReadDirectoryResponse{
			Result:  0,
			Found:   true,
			Entries: []string{".", "..", "greeting"},
		},
	})

	list, rv := remote.readdir("/", testAlloc)
	if rv != 0 || list == nil {
		t.Fatalf("expected listing, got list=%v rv=%d", list, rv)
	}
	if list.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", list.Len())
	}
}

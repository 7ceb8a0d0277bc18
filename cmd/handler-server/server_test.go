package handlerserver

import (
	"context"
	"syscall"
	"testing"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/log"
	bpb "github.com/bridgefs/bridgefs/pkg/pb/bridge"
)

func TestUnsetSlotsReportEPERM(t *testing.T) {
	ctx := context.Background()
	srv := newBridgeServer(log.Discarder(), bridge.Callbacks{})

	openResp, err := srv.Open(ctx, &bpb.OpenRequest{Path: "/f"})
	if err != nil || openResp.Result != eperm() {
		t.Errorf("open: expected EPERM result, got %v/%v", openResp, err)
	}
	attrResp, err := srv.GetAttributes(ctx, &bpb.GetAttributesRequest{Path: "/f"})
	if err != nil || attrResp.Result != eperm() {
		t.Errorf("getattr: expected EPERM result, got %v/%v", attrResp, err)
	}
	readResp, err := srv.Read(ctx, &bpb.ReadRequest{Path: "/f", Size: 8})
	if err != nil || readResp.Result != eperm() {
		t.Errorf("read: expected EPERM result, got %v/%v", readResp, err)
	}
	writeResp, err := srv.Write(ctx, &bpb.WriteRequest{Path: "/f", Data: []byte("x")})
	if err != nil || writeResp.Result != eperm() {
		t.Errorf("write: expected EPERM result, got %v/%v", writeResp, err)
	}
	readdirResp, err := srv.ReadDirectory(ctx, &bpb.ReadDirectoryRequest{Path: "/"})
	if err != nil || readdirResp.Result != eperm() {
		t.Errorf("readdir: expected EPERM result, got %v/%v", readdirResp, err)
	}
}

func TestOpenReflectsDescriptorState(t *testing.T) {
	srv := newBridgeServer(log.Discarder(), bridge.Callbacks{
		Open: func(path string, info *bridge.FileInfo) int {
			info.Handle = 9
			info.Nonseekable = true
			return 0
		},
	})

	resp, err := srv.Open(context.Background(), &bpb.OpenRequest{
		Path: "/f",
		Info: &bpb.FileInfo{Flags: uint32(syscall.O_RDONLY)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Result != 0 {
		t.Fatalf("expected success, got %d", resp.Result)
	}
	if resp.Info == nil || resp.Info.Handle != 9 || !resp.Info.Nonseekable {
		t.Errorf("expected descriptor state on response, got %v", resp.Info)
	}
}

func TestGetAttributesOmitsMissing(t *testing.T) {
	srv := newBridgeServer(log.Discarder(), bridge.Callbacks{
		GetAttr: func(path string, attr *bridge.FileAttributes) int {
			if path == "/here" {
				attr.Size = 4
				attr.Mode = syscall.S_IFREG | 0644
				return 0
			}
			return bridge.Errno(syscall.ENOENT)
		},
	})

	resp, err := srv.GetAttributes(context.Background(), &bpb.GetAttributesRequest{Path: "/here"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Attributes == nil || resp.Attributes.Size != 4 {
		t.Errorf("expected attributes on success, got %v", resp.Attributes)
	}

	resp, err = srv.GetAttributes(context.Background(), &bpb.GetAttributesRequest{Path: "/gone"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Result != int32(bridge.Errno(syscall.ENOENT)) {
		t.Errorf("expected ENOENT result, got %d", resp.Result)
	}
	if resp.Attributes != nil {
		t.Error("expected no attributes for a missing path")
	}
}

func TestReadTruncatesToResult(t *testing.T) {
	srv := newBridgeServer(log.Discarder(), bridge.Callbacks{
		Read: func(path string, p []byte, offset uint64, info *bridge.FileInfo) int {
			return copy(p, "hi")
		},
	})

	resp, err := srv.Read(context.Background(), &bpb.ReadRequest{Path: "/f", Size: 32})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Result != 2 || string(resp.Data) != "hi" {
		t.Errorf("expected 2-byte read, got result %d data %q", resp.Result, resp.Data)
	}
}

func TestReadDirectoryListingSemantics(t *testing.T) {
	ctx := context.Background()
	srv := newBridgeServer(log.Discarder(), bridge.Callbacks{
		ReadDir: func(path string, alloc bridge.DirAlloc) (*bridge.DirList, int) {
			if path != "/" {
				return nil, 0
			}
			list := alloc(2)
			list.Append(".")
			list.Append("..")
			return list, 0
		},
	})

	resp, err := srv.ReadDirectory(ctx, &bpb.ReadDirectoryRequest{Path: "/"})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Found {
		t.Error("expected found listing for root")
	}
	if len(resp.Entries) != 2 || resp.Entries[0] != "." || resp.Entries[1] != ".." {
		t.Errorf("expected dot entries, got %v", resp.Entries)
	}

	// Missing directories cross the wire as found=false, not as an empty
	// listing.
	resp, err = srv.ReadDirectory(ctx, &bpb.ReadDirectoryRequest{Path: "/gone"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Found {
		t.Error("expected found=false for missing directory")
	}
	if len(resp.Entries) != 0 {
		t.Errorf("expected no entries, got %v", resp.Entries)
	}
}

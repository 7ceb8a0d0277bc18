package relayserver

import (
	"context"
	"syscall"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/log"
	bpb "github.com/bridgefs/bridgefs/pkg/pb/bridge"
)

// remoteCallbacks forwards every bridge operation to a handler server over
// gRPC. Handler result codes pass through verbatim; transport failures map to
// EIO, the closest the result domain comes to "the handler is unreachable".
type remoteCallbacks struct {
	logger *log.Logger
	client bpb.BridgeServiceClient
}

func newRemoteCallbacks(logger *log.Logger, client bpb.BridgeServiceClient) *remoteCallbacks {
	return &remoteCallbacks{logger: logger, client: client}
}

// RemoteCallbacks builds a handler configuration forwarding every operation
// to the given bridge service client.
func RemoteCallbacks(logger *log.Logger, client bpb.BridgeServiceClient) bridge.Callbacks {
	return newRemoteCallbacks(logger, client).callbacks()
}

func (r *remoteCallbacks) callbacks() bridge.Callbacks {
	return bridge.Callbacks{
		Open:    r.open,
		GetAttr: r.getattr,
		Read:    r.read,
		Write:   r.write,
		ReadDir: r.readdir,
	}
}

func (r *remoteCallbacks) open(path string, info *bridge.FileInfo) int {
	resp, err := r.client.Open(context.Background(), &bpb.OpenRequest{
		Path: path,
		Info: packInfo(info),
	})
	if err != nil {
		r.logger.Errorf("open %s: %v", path, err)
		return bridge.Errno(syscall.EIO)
	}

	// Descriptor state the handler set at open has to survive on the driver
	// side; copy it back across the wire.
	unpackInfo(resp.Info, info)
	return int(resp.Result)
}

func (r *remoteCallbacks) getattr(path string, attr *bridge.FileAttributes) int {
	resp, err := r.client.GetAttributes(context.Background(), &bpb.GetAttributesRequest{Path: path})
	if err != nil {
		r.logger.Errorf("getattr %s: %v", path, err)
		return bridge.Errno(syscall.EIO)
	}

	if resp.Attributes != nil {
		attr.Size = resp.Attributes.Size
		attr.Mode = resp.Attributes.Mode
		attr.UID = resp.Attributes.Uid
		attr.GID = resp.Attributes.Gid
	}
	return int(resp.Result)
}

func (r *remoteCallbacks) read(path string, p []byte, offset uint64, info *bridge.FileInfo) int {
	resp, err := r.client.Read(context.Background(), &bpb.ReadRequest{
		Path:   path,
		Size:   uint32(len(p)),
		Offset: offset,
		Info:   packInfo(info),
	})
	if err != nil {
		r.logger.Errorf("read %s: %v", path, err)
		return bridge.Errno(syscall.EIO)
	}

	unpackInfo(resp.Info, info)
	if resp.Result < 0 {
		return int(resp.Result)
	}
	return copy(p, resp.Data)
}

func (r *remoteCallbacks) write(path string, p []byte, offset uint64, info *bridge.FileInfo) int {
	resp, err := r.client.Write(context.Background(), &bpb.WriteRequest{
		Path:   path,
		Data:   p,
		Offset: offset,
		Info:   packInfo(info),
	})
	if err != nil {
		r.logger.Errorf("write %s: %v", path, err)
		return bridge.Errno(syscall.EIO)
	}

	unpackInfo(resp.Info, info)
	return int(resp.Result)
}

func (r *remoteCallbacks) readdir(path string, alloc bridge.DirAlloc) (*bridge.DirList, int) {
	resp, err := r.client.ReadDirectory(context.Background(), &bpb.ReadDirectoryRequest{Path: path})
	if err != nil {
		r.logger.Errorf("readdir %s: %v", path, err)
		// A non-nil empty listing keeps "missing directory" reserved for the
		// handler's say-so.
		return alloc(0), bridge.Errno(syscall.EIO)
	}

	if !resp.Found {
		return nil, int(resp.Result)
	}

	list := alloc(len(resp.Entries))
	for _, entry := range resp.Entries {
		list.Append(entry)
	}
	return list, int(resp.Result)
}

func packInfo(info *bridge.FileInfo) *bpb.FileInfo {
	return &bpb.FileInfo{
		Handle:      info.Handle,
		Flags:       info.Flags,
		DirectIo:    info.DirectIO,
		Nonseekable: info.Nonseekable,
	}
}

func unpackInfo(pb *bpb.FileInfo, info *bridge.FileInfo) {
	if pb == nil {
		return
	}
	info.Handle = pb.Handle
	info.Flags = pb.Flags
	info.DirectIO = pb.DirectIo
	info.Nonseekable = pb.Nonseekable
}

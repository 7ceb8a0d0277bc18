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

package handlerserver

import (
	"context"
	"syscall"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/log"
	bpb "github.com/bridgefs/bridgefs/pkg/pb/bridge"
)

// bridgeServer serves a handler configuration over gRPC. The registry
// convention crosses the wire intact: an unset slot answers EPERM in the
// result code, never as an RPC error.
type bridgeServer struct {
	logger    *log.Logger
	callbacks bridge.Callbacks
}

var _ bpb.BridgeServiceServer = &bridgeServer{}

func newBridgeServer(logger *log.Logger, callbacks bridge.Callbacks) *bridgeServer {
	return &bridgeServer{logger: logger, callbacks: callbacks}
}

func eperm() int32 {
	return int32(bridge.Errno(syscall.EPERM))
}

func (b *bridgeServer) Open(ctx context.Context, req *bpb.OpenRequest) (*bpb.OpenResponse, error) {
	if b.callbacks.Open == nil {
		return &bpb.OpenResponse{Result: eperm()}, nil
	}

	info := unpackInfo(req.Info)
	rv := b.callbacks.Open(req.Path, &info)
	return &bpb.OpenResponse{Result: int32(rv), Info: packInfo(&info)}, nil
}

func (b *bridgeServer) GetAttributes(ctx context.Context, req *bpb.GetAttributesRequest) (*bpb.GetAttributesResponse, error) {
	if b.callbacks.GetAttr == nil {
		return &bpb.GetAttributesResponse{Result: eperm()}, nil
	}

	var attr bridge.FileAttributes
	rv := b.callbacks.GetAttr(req.Path, &attr)
	resp := &bpb.GetAttributesResponse{Result: int32(rv)}
	if rv != bridge.Errno(syscall.ENOENT) {
		resp.Attributes = &bpb.FileAttributes{
			Size: attr.Size,
			Mode: attr.Mode,
			Uid:  attr.UID,
			Gid:  attr.GID,
		}
	}
	return resp, nil
}

func (b *bridgeServer) Read(ctx context.Context, req *bpb.ReadRequest) (*bpb.ReadResponse, error) {
	if b.callbacks.Read == nil {
		return &bpb.ReadResponse{Result: eperm()}, nil
	}

	buf := make([]byte, req.Size)
	info := unpackInfo(req.Info)
	rv := b.callbacks.Read(req.Path, buf, req.Offset, &info)
	resp := &bpb.ReadResponse{Result: int32(rv), Info: packInfo(&info)}
	if rv >= 0 {
		resp.Data = buf[:rv]
	}
	return resp, nil
}

func (b *bridgeServer) Write(ctx context.Context, req *bpb.WriteRequest) (*bpb.WriteResponse, error) {
	if b.callbacks.Write == nil {
		return &bpb.WriteResponse{Result: eperm()}, nil
	}

	info := unpackInfo(req.Info)
	rv := b.callbacks.Write(req.Path, req.Data, req.Offset, &info)
	return &bpb.WriteResponse{Result: int32(rv), Info: packInfo(&info)}, nil
}

func (b *bridgeServer) ReadDirectory(ctx context.Context, req *bpb.ReadDirectoryRequest) (*bpb.ReadDirectoryResponse, error) {
	if b.callbacks.ReadDir == nil {
		return &bpb.ReadDirectoryResponse{Result: eperm()}, nil
	}

	list, rv := b.callbacks.ReadDir(req.Path, bridge.NewDirList)
	if list == nil {
		return &bpb.ReadDirectoryResponse{Result: int32(rv), Found: false}, nil
	}

	// The server side owns the listing: drain it onto the wire, then release.
	entries := make([]string, 0, list.Len())
	list.Drain(func(name string) bool {
		entries = append(entries, name)
		return true
	})
	list.Release()

	return &bpb.ReadDirectoryResponse{Result: int32(rv), Found: true, Entries: entries}, nil
}

func packInfo(info *bridge.FileInfo) *bpb.FileInfo {
	return &bpb.FileInfo{
		Handle:      info.Handle,
		Flags:       info.Flags,
		DirectIo:    info.DirectIO,
		Nonseekable: info.Nonseekable,
	}
}

func unpackInfo(pb *bpb.FileInfo) bridge.FileInfo {
	if pb == nil {
		return bridge.FileInfo{}
	}
	return bridge.FileInfo{
		Handle:      pb.Handle,
		Flags:       pb.Flags,
		DirectIO:    pb.DirectIo,
		Nonseekable: pb.Nonseekable,
	}
}

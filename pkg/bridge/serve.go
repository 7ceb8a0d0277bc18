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
	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"github.com/bridgefs/bridgefs/pkg/log"
)

// Mount attaches a filesystem connection at mountPoint. The caller owns the
// returned connection and closes it after serving.
func Mount(logger *log.Logger, mountPoint, fsName, volName string) (*fuse.Conn, error) {
	conn, err := fuse.Mount(
		mountPoint,
		fuse.FSName(fsName),
		fuse.VolumeName(volName),
	)
	if err != nil {
		return nil, err
	}

	logger.Infof("mounted point: %s", mountPoint)
	return conn, nil
}

// Unmount detaches the filesystem mounted at mountPoint.
func Unmount(logger *log.Logger, mountPoint string) error {
	if err := fuse.Unmount(mountPoint); err != nil {
		return err
	}
	logger.Infof("unmounted point: %s", mountPoint)
	return nil
}

// Serve runs the host dispatch loop over conn, routing operations through the
// dispatcher. It blocks until the loop exits and propagates its error.
func Serve(conn *fuse.Conn, dispatcher *Dispatcher) error {
	return fusefs.Serve(conn, dispatcher)
}

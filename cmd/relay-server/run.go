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

package relayserver

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"google.golang.org/grpc"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/cli"
	"github.com/bridgefs/bridgefs/pkg/log"
	bpb "github.com/bridgefs/bridgefs/pkg/pb/bridge"
)

var RelayServerCmd = &cli.Command{
	Run:       relayServerCmdRun,
	UsageLine: "relay-server [-handler-server addr] [-unmount] [logger flags] <mount-point>",
	Short:     "mount a filesystem backed by a remote handler server",
	Long: `
Relay-server is the driver process: it mounts a filesystem at the specified
mount point and forwards every operation (open, read, write, getattr,
readdir) to a handler server over gRPC. Handler result codes pass through
unchanged; if the handler server is unreachable, operations fail with EIO.
    `,
}

func relayServerCmdRun(cmd *cli.Command, args []string) error {
	var (
		handlerServerFlag  string
		unmountFlag        bool
		logDirFlag         string
		suppressStderrFlag bool
		logModeFlag        logMode
	)

	cmd.FlagSet.StringVar(&handlerServerFlag, "handler-server", "localhost:10780",
		"Address of the handler server [host:port]")
	cmd.FlagSet.BoolVar(&unmountFlag, "unmount", false,
		"Unmount filesystem at specified directory")
	cmd.FlagSet.StringVar(&logDirFlag, "log-dir", "",
		"Write log files to the specified directory")
	cmd.FlagSet.BoolVar(&suppressStderrFlag, "suppress-stderr", false,
		"Suppress standard error logging")
	cmd.FlagSet.Var(&logModeFlag, "log-mode",
		"Log mode for logs emitted globally")

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}

	if cmd.FlagSet.NArg() > 1 {
		return cli.CmdParseError(
			errors.New(fmt.Sprintf("unrecognized arguments: %v", cmd.FlagSet.Args()[1:])))
	}
	if cmd.FlagSet.NArg() == 0 {
		return cli.CmdParseError(errors.New("unspecified mount-point"))
	}
	mountPoint := cmd.FlagSet.Arg(0)

	if logModeFlag.set {
		log.SetGlobalLogMode(logModeFlag.m)
	}

	writer := ioutil.Discard
	if logDirFlag != "" {
		writer = log.LogRotationWriter(logDirFlag, 50<<20 /* 50 MiB */)
	}
	if !suppressStderrFlag {
		writer = log.MultiWriter(writer, os.Stderr)
	}
	writer = log.SynchronizedWriter(writer)
	logf := log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile | log.LUTC | log.Lmode
	logger := log.New(log.Writer(writer), log.Flags(logf), log.SkipBasePath())

	if unmountFlag {
		if err := bridge.Unmount(logger, mountPoint); err != nil {
			logger.Error(err.Error())
			return err
		}
		return nil
	}

	conn, err := grpc.Dial(handlerServerFlag, grpc.WithInsecure())
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer conn.Close()
	client := bpb.NewBridgeServiceClient(conn)

	fuseConn, err := bridge.Mount(logger, mountPoint, "bridgefs", "Bridgefs")
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer fuseConn.Close()

	dispatcher := bridge.NewDispatcher(logger, RemoteCallbacks(logger, client))
	return bridge.Serve(fuseConn, dispatcher)
}

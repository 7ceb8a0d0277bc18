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

package helloserver

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/cli"
	"github.com/bridgefs/bridgefs/pkg/log"
)

var HelloServerCmd = &cli.Command{
	Run:       helloServerCmdRun,
	UsageLine: "hello-server [-unmount] [logger flags] <mount-point>",
	Short:     "mount the hello reference filesystem",
	Long: `
Hello-server mounts the reference filesystem: a read-only /greeting file
containing "Hello World!". The handler runs in process, with only the
getattr, readdir, open and read slots registered; writes fail with EPERM.
It exists to exercise the callback bridge end to end without a handler
server.
    `,
}

func helloServerCmdRun(cmd *cli.Command, args []string) error {
	var (
		unmountFlag        bool
		logDirFlag         string
		suppressStderrFlag bool
		logModeFlag        logMode
	)

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

	conn, err := bridge.Mount(logger, mountPoint, "bridgefs", "Hello")
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer conn.Close()

	dispatcher := bridge.NewDispatcher(logger, callbacks())
	return bridge.Serve(conn, dispatcher)
}

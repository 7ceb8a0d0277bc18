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
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/soheilhy/cmux"
	"google.golang.org/grpc"

	"github.com/bridgefs/bridgefs/pkg/cli"
	"github.com/bridgefs/bridgefs/pkg/log"
	bpb "github.com/bridgefs/bridgefs/pkg/pb/bridge"
)

var HandlerServerCmd = &cli.Command{
	Run:       handlerServerCmdRun,
	UsageLine: "handler-server [-port port] [-store path] [-seal-secret secret] [logger flags]",
	Short:     "run the out-of-process filesystem handler",
	Long: `
Handler-server is the out-of-process side of the bridge: it serves the
filesystem operations (open, read, write, getattr, readdir) over gRPC,
backed by a persistent store. A relay-server pointed at it mounts the
store's contents.

An empty store is seeded with the reference /greeting file. With
-seal-secret set, file content is sealed at rest; the same secret must be
supplied on every run against that store.
    `,
}

func handlerServerCmdRun(cmd *cli.Command, args []string) error {
	var (
		portFlag           int
		storeFlag          string
		sealSecretFlag     string
		logDirFlag         string
		suppressStderrFlag bool
		logModeFlag        logMode
	)

	cmd.FlagSet.IntVar(&portFlag, "port", 10780,
		"Port on which the server will run on")
	cmd.FlagSet.StringVar(&storeFlag, "store", "bridgefs.db",
		"Path of the backing store file")
	cmd.FlagSet.StringVar(&sealSecretFlag, "seal-secret", "",
		"Secret used to seal store content at rest (empty disables sealing)")
	cmd.FlagSet.StringVar(&logDirFlag, "log-dir", "",
		"Write log files to the specified directory")
	cmd.FlagSet.BoolVar(&suppressStderrFlag, "suppress-stderr", false,
		"Suppress standard error logging")
	cmd.FlagSet.Var(&logModeFlag, "log-mode",
		"Log mode for logs emitted globally")

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}

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

	wait, shutdown, err := Start(logger, portFlag, storeFlag, sealSecretFlag)
	if err != nil {
		return err
	}

	wait()
	shutdown()

	return nil
}

// Start brings up the handler server on the given port, multiplexing gRPC
// and gRPC-web/HTTP over the one listener. A non-empty sealSecret enables
// at-rest content sealing.
func Start(logger *log.Logger, port int, storePath, sealSecret string) (wait func(), shutdown func(), err error) {
	var wg sync.WaitGroup

	var slr *sealer
	if sealSecret != "" {
		if slr, err = newSealer([]byte(sealSecret)); err != nil {
			return nil, nil, err
		}
	}

	st, err := openStore(logger, storePath, slr)
	if err != nil {
		return nil, nil, err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		logger.Errorf("failed to open TCP port: %v", err)
		st.close()
		return nil, nil, err
	}

	mux := cmux.New(lis)
	grpcL := mux.Match(cmux.HTTP2HeaderField("content-type", "application/grpc"))
	httpL := mux.Match(cmux.Any())

	grpcServer := grpc.NewServer()
	bpb.RegisterBridgeServiceServer(grpcServer, newBridgeServer(logger, st.callbacks()))

	httpServer := http.Server{Handler: grpcweb.WrapServer(grpcServer)}

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving RPC server on port: %d", port)
		if err := grpcServer.Serve(grpcL); err != nil {
			logger.Errorf("grpc server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving HTTP server on port: %d", port)
		if err := httpServer.Serve(httpL); err != nil {
			logger.Errorf("http server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := mux.Serve(); err != nil {
			logger.Errorf("cmux server error: %v", err)
		}
	}()

	shutdown = func() {
		lis.Close()
		grpcServer.Stop()
		httpServer.Shutdown(context.Background())
		st.close()
	}

	return wg.Wait, shutdown, nil
}

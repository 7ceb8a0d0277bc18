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

package main

import (
	"os"

	"github.com/bridgefs/bridgefs/doc"
	"github.com/bridgefs/bridgefs/pkg/cli"

	handlerserver "github.com/bridgefs/bridgefs/cmd/handler-server"
	helloserver "github.com/bridgefs/bridgefs/cmd/hello-server"
	relayserver "github.com/bridgefs/bridgefs/cmd/relay-server"
)

func main() {
	// We aggregate all the top-level commands (i.e. 'bridgefs <command> ...')
	// as needed.
	var commands cli.Commands

	commands = append(commands, relayserver.RelayServerCmd)
	commands = append(commands, handlerserver.HandlerServerCmd)
	commands = append(commands, helloserver.HelloServerCmd)

	// We also include a documentation pseudo-command for the directory
	// listing ownership protocol.
	commands = append(commands, doc.OwnershipCmd)

	abstract := "Bridgefs bridges filesystem callbacks to out-of-process handlers."
	if err := cli.Process(abstract, commands); err != nil {
		os.Exit(1)
	}
}

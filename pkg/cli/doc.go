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

// Package cli implements the subcommand surface for multi-command binaries.
// Commands are declared individually and aggregated at the top level:
//
//      var commands cli.Commands
//      commands = append(commands, relayserver.RelayServerCmd)
//      commands = append(commands, handlerserver.HandlerServerCmd)
//      commands = append(commands, doc.OwnershipCmd)
//
//      abstract := "Bridgefs bridges filesystem callbacks to out-of-process handlers."
//      if err := cli.Process(abstract, commands); err != nil {
//              os.Exit(1)
//      }
//
// This generates the following top-level behaviour:
//
//      $ bridgefs {,-h,help}
//      Bridgefs bridges filesystem callbacks to out-of-process handlers.
//
//      Usage:
//
//          bridgefs command [arguments]
//
//      The commands are:
//
//              relay-server           ...
//              handler-server         ...
//
//      Use 'bridgefs help [command]' for more information about a command.
//
// Individual commands also have their own '-h' switches for additional
// command details. Commands with a nil Run are documentation pseudo-commands,
// listed under "Additional help topics" and rendered via
// '<program> help [topic]'.
package cli

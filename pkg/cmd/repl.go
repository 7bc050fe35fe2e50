// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-aexp/pkg/aexp"
	"github.com/consensys/go-aexp/pkg/util/termio"
	"github.com/k0kubun/pp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "scan expressions interactively.",
	Long: `Read expressions a line at a time, reporting the tokens recognised in each.
	 Exit with ctrl-d.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		debug := GetFlag(cmd, "debug")
		// Construct (raw mode) terminal
		terminal, err := termio.NewTerminal()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		terminal.SetPrompt("> ")
		//
		for {
			line, err := terminal.ReadLine()
			if err != nil {
				// End of input (e.g. ctrl-d)
				terminal.Restore()
				return
			}
			//
			lexer := aexp.NewLexer(line)
			tokens := lexer.Collect()
			//
			if debug {
				terminal.WriteLine(pp.Sprint(tokens))
			}
			//
			for _, token := range tokens {
				terminal.WriteLine(token.String())
			}
			// Report any text the scan could not get past
			if n := lexer.Remaining(); n != 0 {
				terminal.WriteLine(fmt.Sprintf("unknown text encountered: %q", line[len(line)-int(n):]))
			}
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("debug", false, "dump scanned tokens in full")
}

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
	"github.com/consensys/go-aexp/pkg/util"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] expression_file(s)",
	Short: "scan expression file(s) into tokens.",
	Long: `Scan a given set of expression file(s), reporting every token recognised
	 along with the position at which it begins.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			jsonOut = GetFlag(cmd, "json")
			timed   = GetFlag(cmd, "time")
			failed  = false
		)
		// Read each source file
		for _, srcfile := range readSourceFiles(args) {
			stats := util.NewPerfStats()
			// Scan the file
			tokens, errs := aexp.Lex(srcfile)
			//
			elapsed := stats.Elapsed()
			stats.Log("scanning " + srcfile.Filename())
			// Report tokens
			if jsonOut {
				writeTokensJson(tokens)
			} else {
				writeTokens(tokens)
			}
			// Report any text the scan could not get past
			for _, err := range errs {
				printSyntaxError(&err)
				//
				failed = true
			}
			//
			if timed {
				fmt.Printf("%s: %d token(s) in %s\n", srcfile.Filename(), len(tokens), elapsed)
			}
		}
		//
		if failed {
			os.Exit(2)
		}
	},
}

// Write tokens in a human-readable form, one per line.  When writing to a
// terminal this includes a header and column alignment; otherwise the form
// is tab-separated for further processing.
func writeTokens(tokens []aexp.Token) {
	tty := isatty.IsTerminal(os.Stdout.Fd())
	//
	if tty {
		fmt.Printf("%-10s %-12s %s\n", "POSITION", "KIND", "LEXEME")
	}
	//
	for _, token := range tokens {
		if tty {
			position := fmt.Sprintf("%d:%d", token.Line, token.Column)
			fmt.Printf("%-10s %-12s %s\n", position, token.Kind, token.Text)
		} else {
			fmt.Printf("%d:%d\t%s\t%s\n", token.Line, token.Column, token.Kind, token.Text)
		}
	}
}

// View of a token as reported by "tokens --json".
type jsonToken struct {
	Kind   string `json:"kind"`
	Op     string `json:"op,omitempty"`
	Number int32  `json:"number,omitempty"`
	Text   string `json:"text"`
	Line   uint   `json:"line"`
	Column uint   `json:"column"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Write tokens as a JSON array.
func writeTokensJson(tokens []aexp.Token) {
	views := lo.Map(tokens, func(token aexp.Token, _ int) jsonToken {
		view := jsonToken{
			Kind:   token.Kind.String(),
			Text:   token.Text,
			Line:   token.Line,
			Column: token.Column,
			Start:  token.Span.Start(),
			End:    token.Span.End(),
		}
		//
		switch token.Kind {
		case aexp.OPERATOR:
			view.Op = token.Op.String()
		case aexp.NUMBER:
			view.Number = token.Number
		}
		//
		return view
	})
	//
	bytes, err := json.Marshal(views)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Println(string(bytes))
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().Bool("json", false, "report tokens as a JSON array")
	tokensCmd.Flags().Bool("time", false, "report time taken to scan each file")
}

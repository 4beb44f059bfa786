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
	"runtime/debug"
	"strings"

	"github.com/consensys/go-flatten/pkg/util/field"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flatten [flags] file1.lisp file2.lisp ...",
	Short: "Flatten arithmetic programs into quadratic safe form.",
	Long: `Flatten a given set of arithmetic programs such that every expression contains
at most one multiplication of non-constant terms.  The flattened programs are
printed to stdout.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		} else if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, flattenCmds)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// FieldAgnosticCmd represents a command to be executed for a given field.
type FieldAgnosticCmd struct {
	Field    field.Config
	Function func(*cobra.Command, []string)
}

// Run a field agnostic top-level command.
func runFieldAgnosticCmd(cmd *cobra.Command, args []string, cmds []FieldAgnosticCmd) {
	var (
		fieldName = GetString(cmd, "field")
		// Field configuration
		config = field.GetConfig(fieldName)
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Sanity check
	if config == nil {
		fmt.Printf("unknown field \"%s\" (expected one of %s)\n", fieldName, strings.Join(field.ConfigNames(), ", "))
		os.Exit(3)
	}
	// Find command to dispatch
	for _, c := range cmds {
		if c.Field == *config {
			c.Function(cmd, args)
			return
		}
	}
	//
	fmt.Printf("field %s unsupported for command '%s'\n", fieldName, cmd.Name())
	os.Exit(2)
}

func printVersion() {
	fmt.Print("flatten ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Printf("%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Printf("(unknown version)")
	}
	//
	fmt.Println()
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().Bool("stats", false, "report statistics for each flattened program")
	rootCmd.PersistentFlags().BoolP("verbose", "v", env.Bool("FLATTEN_VERBOSE"), "increase logging verbosity")
	rootCmd.PersistentFlags().String("field", env.Str("FLATTEN_FIELD", field.BN254.Name),
		fmt.Sprintf("prime field to use throughout (%s)", strings.Join(field.ConfigNames(), ", ")))
}

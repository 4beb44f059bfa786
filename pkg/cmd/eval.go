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

	"github.com/consensys/go-flatten/pkg/ast"
	"github.com/consensys/go-flatten/pkg/eval"
	"github.com/consensys/go-flatten/pkg/flatten"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/consensys/go-flatten/pkg/util/field/bls12_377"
	"github.com/consensys/go-flatten/pkg/util/field/bn254"
	"github.com/consensys/go-flatten/pkg/util/field/gf251"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] file1.lisp file2.lisp ...",
	Short: "Evaluate a program before and after flattening.",
	Long: `Evaluate a given program on a given set of arguments, both before and after
flattening, and report the results.  Comparisons in the flattened program are
resolved by decomposing differences into bits.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, evalCmds)
	},
}

// Available instances
var evalCmds = []FieldAgnosticCmd{
	{field.GF_251, runEvalCmd[gf251.Element]},
	{field.BN254, runEvalCmd[bn254.Element]},
	{field.BLS12_377, runEvalCmd[bls12_377.Element]},
}

func runEvalCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	var (
		name     = GetString(cmd, "program")
		strict   = GetFlag(cmd, "strict")
		programs = ReadSourceFiles[F](args)
		program  = selectProgram(name, programs)
		inputs   = parseArguments[F](GetStringArray(cmd, "args"))
		options  = []eval.Option[F]{eval.WithHint(eval.BitDecomposition[F](flatten.ComparisonBitWidth))}
	)
	//
	if strict {
		options = append(options, eval.Strict[F]())
	}
	//
	flattened, err := flatten.Program(program)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	expected, serr := eval.Run(program, inputs)
	actual, ferr := eval.Run(flattened, inputs, options...)
	//
	report("source", expected, serr)
	report("flattened", actual, ferr)
	//
	if serr != nil || ferr != nil || expected.Cmp(actual) != 0 {
		os.Exit(5)
	}
}

// Select the program to evaluate, which can be omitted when there is only one.
func selectProgram[F field.Element[F]](name string, programs []ast.Program[F]) ast.Program[F] {
	if name == "" && len(programs) == 1 {
		return programs[0]
	} else if name == "" {
		fmt.Println("multiple programs found (use --program)")
		os.Exit(1)
	}
	//
	for _, p := range programs {
		if p.Name == name {
			return p
		}
	}
	//
	fmt.Printf("unknown program \"%s\"\n", name)
	os.Exit(1)
	// unreachable
	return ast.Program[F]{}
}

func parseArguments[F field.Element[F]](args []string) []F {
	var vals = make([]F, len(args))
	//
	for i, arg := range args {
		val, err := field.Parse[F](arg)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		vals[i] = val
	}
	//
	return vals
}

func report[F field.Element[F]](kind string, val F, err error) {
	if err != nil {
		fmt.Printf("%s: %s\n", kind, err)
	} else {
		fmt.Printf("%s: %s\n", kind, val)
	}
}

func init() {
	evalCmd.Flags().StringSlice("args", nil, "comma separated arguments (e.g. 1,-2,0x10)")
	evalCmd.Flags().String("program", "", "program to evaluate")
	evalCmd.Flags().Bool("strict", false, "treat every redefinition as an equality constraint")
	rootCmd.AddCommand(evalCmd)
}

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
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/flatten"
	"github.com/consensys/go-flatten/pkg/util"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/consensys/go-flatten/pkg/util/field/bls12_377"
	"github.com/consensys/go-flatten/pkg/util/field/bn254"
	"github.com/consensys/go-flatten/pkg/util/field/gf251"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// Available instances
var flattenCmds = []FieldAgnosticCmd{
	{field.GF_251, runFlattenCmd[gf251.Element]},
	{field.BN254, runFlattenCmd[bn254.Element]},
	{field.BLS12_377, runFlattenCmd[bls12_377.Element]},
}

func runFlattenCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	var (
		stats     = GetFlag(cmd, "stats")
		programs  = ReadSourceFiles[F](args)
		flattener = flatten.New[F]()
		perf      = util.NewPerfStats()
		errs      error
		count     int
	)
	//
	for _, program := range programs {
		flattened, err := flattener.Flatten(program)
		//
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		} else if count != 0 {
			fmt.Println()
		}
		//
		fmt.Print(flattened.String())
		count++
		//
		if stats {
			logStatistics(program, flattened, flattener.Symbols())
		}
	}
	//
	perf.Log("flattening")
	//
	if errs != nil {
		for _, err := range multierr.Errors(errs) {
			fmt.Fprintln(os.Stderr, err)
		}
		//
		os.Exit(2)
	}
}

func logStatistics[F field.Element[F]](program ast.Program[F], flattened ast.Program[F], symbols uint) {
	log.Infof("%s: %d statements (depth %d) flattened into %d statements (depth %d) using %d symbols",
		program.Name, len(program.Statements), maxDepth(program), len(flattened.Statements), maxDepth(flattened),
		symbols)
}

// Determine the depth of the deepest expression in a given program.
func maxDepth[F field.Element[F]](program ast.Program[F]) uint {
	var depth uint
	//
	for _, s := range program.Statements {
		for _, e := range stmt.Expressions(s) {
			depth = max(depth, expr.Depth(e))
		}
	}
	//
	return depth
}

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
package util

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
)

// ReadInputFile reads an input file as a sequence of lines.  Files ending in
// ".bz2" are decompressed on the fly.  A missing file is treated as having no
// lines.
func ReadInputFile(filename string) ([]string, error) {
	var (
		reader io.Reader
		lines  []string
	)
	//
	file, err := os.Open(filename)
	//
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	switch path.Ext(filename) {
	case ".bz2":
		reader = bzip2.NewReader(file)
	default:
		reader = file
	}
	//
	scanner := bufio.NewScanner(bufio.NewReaderSize(reader, 1024*128))
	//
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	//
	return lines, errors.Wrapf(scanner.Err(), "reading %s", filename)
}

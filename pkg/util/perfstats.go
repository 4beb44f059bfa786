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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of time and memory allocation at a given point,
// against which later points can be compared.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log the time taken and memory allocated since this snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := (m.TotalAlloc - p.startMem) / 1024 / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds()
	//
	log.Debugf("%s took %0.3fs using %vMb (%v GC events)", prefix, exectime, alloc, gcs)
}

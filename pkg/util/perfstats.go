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
	"fmt"
	"runtime"
	"time"
)

// PerfStats provides a snapshot of memory allocation and time at a given
// point, such that the cost of executing a program from that point can be
// reported.
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

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Summary describes the difference between the state now and as it was when
// the PerfStats object was created, for a run of the given number of steps.
func (p *PerfStats) Summary(prefix string, steps uint) string {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds()
	//
	rate := float64(steps)
	if exectime > 0 {
		rate = rate / exectime
	}
	//
	return fmt.Sprintf("%s took %0.3fs for %d steps (%0.0f steps/s) using %v Kb (%v GC events)", prefix, exectime,
		steps, rate, alloc, gcs)
}

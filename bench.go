// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/cybrota/avlindex/avl"
	"github.com/schollz/progressbar/v3"
)

// progress is redrawn this many times per phase at most
const progressSteps = 100

// BenchResult is the outcome of one timed phase.
type BenchResult struct {
	Phase    string
	Count    int
	Duration time.Duration
	Err      error // invariant or result check failure
}

func (r BenchResult) Passed() bool {
	return r.Err == nil
}

// PerOp is the mean cost of one operation.
func (r BenchResult) PerOp() time.Duration {
	if r.Count == 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Count)
}

type benchRunner struct {
	w      io.Writer
	rng    *rand.Rand
	config BenchConfig
}

// runBenchmarks times bulk insert, search and remove on an OrderedTree.
func runBenchmarks(w io.Writer, config BenchConfig) []BenchResult {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	fmt.Fprintf(w, "%sRunning performance phases (seed %d)...%s\n", Info, seed, Reset)

	r := &benchRunner{
		w:      w,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		config: config,
	}

	results := []BenchResult{
		r.insertPhase(config.InsertCount),
		r.searchPhase(config.SearchCount),
		r.removePhase(config.RemoveCount),
	}
	printBenchSummary(w, results)
	return results
}

func (r *benchRunner) newBar(total int, description string) *progressbar.ProgressBar {
	if !r.config.ShowProgress || total <= 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerHead:    "#",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.w)
		}),
	)
}

// step returns a loop callback advancing bar in coarse increments.
func step(bar *progressbar.ProgressBar, total int) func(i int) {
	if bar == nil {
		return func(int) {}
	}
	chunk := max(total/progressSteps, 1)
	return func(i int) {
		if (i+1)%chunk == 0 || i+1 == total {
			_ = bar.Set(i + 1)
		}
	}
}

func (r *benchRunner) randomKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.rng.IntN(n*2) + 1
	}
	return keys
}

func (r *benchRunner) insertPhase(n int) BenchResult {
	keys := r.randomKeys(n)
	tree := avl.NewOrdered[int]()
	bar := r.newBar(n, "Inserting")
	advance := step(bar, n)

	start := time.Now()
	for i, k := range keys {
		tree.Insert(k)
		advance(i)
	}
	result := BenchResult{Phase: "insert", Count: n, Duration: time.Since(start)}

	result.Err = tree.Check()
	r.report(result, "Inserted", "insertion")
	return result
}

func (r *benchRunner) searchPhase(n int) BenchResult {
	keys := r.randomKeys(n)
	tree := avl.NewOrdered[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	bar := r.newBar(n, "Searching")
	advance := step(bar, n)

	missed := 0
	start := time.Now()
	for i, k := range keys {
		if !tree.Contains(k) {
			missed++
		}
		advance(i)
	}
	result := BenchResult{Phase: "search", Count: n, Duration: time.Since(start)}

	if missed > 0 {
		result.Err = fmt.Errorf("%d inserted values not found", missed)
	}
	r.report(result, "Searched", "search")
	return result
}

func (r *benchRunner) removePhase(n int) BenchResult {
	tree := avl.NewOrdered[int]()
	for k := range n {
		tree.Insert(k)
	}
	order := r.rng.Perm(n)
	bar := r.newBar(n, "Removing")
	advance := step(bar, n)

	missed := 0
	start := time.Now()
	for i, k := range order {
		if !tree.Remove(k) {
			missed++
		}
		advance(i)
	}
	result := BenchResult{Phase: "remove", Count: n, Duration: time.Since(start)}

	switch {
	case missed > 0:
		result.Err = fmt.Errorf("%d values could not be removed", missed)
	case !tree.IsEmpty():
		result.Err = fmt.Errorf("%d values left after removing all", tree.Len())
	}
	r.report(result, "Removed", "removal")
	return result
}

func (r *benchRunner) report(result BenchResult, verb, noun string) {
	perOp := float64(result.PerOp().Nanoseconds()) / 1000
	fmt.Fprintf(r.w, "%s %d elements in %dms (%.2f μs per %s)\n",
		verb, result.Count, result.Duration.Milliseconds(), perOp, noun)
}

func printBenchSummary(w io.Writer, results []BenchResult) {
	fmt.Fprintf(w, "\n%s====================================\n", Info)
	fmt.Fprintf(w, "           Benchmark Summary\n")
	fmt.Fprintf(w, "====================================%s\n", Reset)

	passed := 0
	var total time.Duration
	for _, result := range results {
		total += result.Duration
		if result.Passed() {
			passed++
			fmt.Fprintf(w, "%s+ %s", Green, Reset)
		} else {
			fmt.Fprintf(w, "%s- %s", Error, Reset)
		}
		fmt.Fprintf(w, "%-20s (%.3fs)", result.Phase, result.Duration.Seconds())
		if !result.Passed() {
			fmt.Fprintf(w, "%s ! %v%s", Error, result.Err, Reset)
		}
		fmt.Fprintln(w)
	}

	color := Green
	if passed != len(results) {
		color = Error
	}
	fmt.Fprintf(w, "\nResults: %s%d/%d phases passed%s\n", color, passed, len(results), Reset)
	fmt.Fprintf(w, "%sTotal time: %.3f seconds%s\n", Info, total.Seconds(), Reset)
}

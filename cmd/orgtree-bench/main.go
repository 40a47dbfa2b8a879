// orgtree-bench is a benchmark and stress test for the orgtree library.
// It grows a balanced hierarchy and a left-leaning chain through Insert and
// measures the three traversals over each.
package main

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/phroun/orgtree"
)

const (
	balancedDepth  = 14 // 2^14 - 1 members
	chainLength    = 10_000
	traversalLoops = 20
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Microsecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Microsecond))
}

func main() {
	fmt.Println("orgtree Benchmark and Stress Test")
	fmt.Println("=================================")
	fmt.Printf("Balanced members: %d\n", 1<<balancedDepth-1)
	fmt.Printf("Chain length: %d\n", chainLength)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	var results []BenchResult

	// Helper to run and print each benchmark
	runBench := func(name string, fn func() BenchResult) {
		fmt.Printf("  %-40s ", name+"...")
		result := fn()
		fmt.Printf("%v\n", result.Duration.Round(time.Microsecond))
		results = append(results, result)
	}

	var balanced, chain *orgtree.Tree

	fmt.Println("Insertion:")
	runBench("Balanced tree (breadth-first)", func() BenchResult {
		var r BenchResult
		balanced, r = benchBuildBalanced(balancedDepth)
		return r
	})
	runBench("Left chain", func() BenchResult {
		var r BenchResult
		chain, r = benchBuildChain(chainLength)
		return r
	})

	for _, tc := range []struct {
		label string
		tree  *orgtree.Tree
	}{
		{"balanced", balanced},
		{"chain", chain},
	} {
		if tc.tree == nil {
			continue
		}
		fmt.Printf("\nTraversals (%s):\n", tc.label)
		for _, o := range orgtree.Orders {
			runBench(fmt.Sprintf("%s x%d", o, traversalLoops), func() BenchResult {
				return benchTraverse(tc.tree, o, tc.label)
			})
		}
		runBench("Lookup missing member", func() BenchResult {
			return benchLookupMiss(tc.tree, tc.label)
		})
	}

	// Print summary
	fmt.Println("\n" + "=")
	fmt.Println("SUMMARY")
	fmt.Println("=")
	for _, r := range results {
		fmt.Println(r)
	}

	// Memory stats
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println()
	fmt.Printf("Peak heap allocation: %d MB\n", m.HeapSys/(1024*1024))
	fmt.Printf("Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
}

// benchBuildBalanced fills the tree level by level: member i reports to
// member (i-1)/2, on the left when i is odd.
func benchBuildBalanced(depth int) (*orgtree.Tree, BenchResult) {
	name := "Build balanced tree"
	total := 1<<depth - 1

	start := time.Now()
	tree := orgtree.NewWithRoot("0")
	for i := 1; i < total; i++ {
		side := orgtree.Right
		if i%2 == 1 {
			side = orgtree.Left
		}
		if err := tree.Insert(strconv.Itoa((i-1)/2), strconv.Itoa(i), side); err != nil {
			return nil, BenchResult{Name: name, Duration: time.Since(start), Extra: fmt.Sprintf("ERROR: %v", err)}
		}
	}

	return tree, BenchResult{
		Name:     name,
		Duration: time.Since(start),
		Ops:      total - 1,
		Extra:    fmt.Sprintf("%d members", tree.Len()),
	}
}

func benchBuildChain(length int) (*orgtree.Tree, BenchResult) {
	name := "Build left chain"

	start := time.Now()
	tree := orgtree.NewWithRoot("0")
	for i := 1; i < length; i++ {
		if err := tree.Insert(strconv.Itoa(i-1), strconv.Itoa(i), orgtree.Left); err != nil {
			return nil, BenchResult{Name: name, Duration: time.Since(start), Extra: fmt.Sprintf("ERROR: %v", err)}
		}
	}

	return tree, BenchResult{
		Name:     name,
		Duration: time.Since(start),
		Ops:      length - 1,
		Extra:    fmt.Sprintf("%d members", tree.Len()),
	}
}

func benchTraverse(tree *orgtree.Tree, o orgtree.Order, label string) BenchResult {
	name := fmt.Sprintf("%s %s", label, o)

	start := time.Now()
	visited := 0
	for i := 0; i < traversalLoops; i++ {
		visited += len(orgtree.Traverse(tree.Root(), o))
	}

	return BenchResult{
		Name:     name,
		Duration: time.Since(start),
		Ops:      traversalLoops,
		Extra:    fmt.Sprintf("%d visits", visited),
	}
}

func benchLookupMiss(tree *orgtree.Tree, label string) BenchResult {
	name := fmt.Sprintf("%s lookup miss", label)

	start := time.Now()
	for i := 0; i < traversalLoops; i++ {
		if tree.Contains("absent") {
			return BenchResult{Name: name, Duration: time.Since(start), Extra: "ERROR: unexpected match"}
		}
	}

	return BenchResult{Name: name, Duration: time.Since(start), Ops: traversalLoops}
}

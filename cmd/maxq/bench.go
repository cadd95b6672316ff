package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/maxq/Trees"
	"github.com/schollz/progressbar/v3"
)

type benchResult struct {
	size     int
	insertNs int64 // per element
	popNs    int64 // per element
	height   int
}

func newTree(ascending bool) Trees.MaxHeap[int] {
	if ascending {
		return Trees.NewC(func(a, b int) bool { return a > b })
	}
	return Trees.New[int]()
}

// measure inserts size random values and then pops all of them, timing both
// phases separately.
func measure(size int, seed int64, ascending bool) benchResult {
	vs := rand.New(rand.NewSource(seed)).Perm(size)
	res := benchResult{size: size}

	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			t := newTree(ascending)
			for _, v := range vs {
				t.Insert(v)
			}
			res.height = t.Height()
		}
	})
	res.insertNs = br.NsPerOp() / int64(size)

	br = testing.Benchmark(func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			t := newTree(ascending)
			for _, v := range vs {
				t.Insert(v)
			}
			b.StartTimer()
			for !t.Empty() {
				t.Pop()
			}
		}
	})
	res.popNs = br.NsPerOp() / int64(size)
	return res
}

func runBench(config *Config, out, progress io.Writer) error {
	testing.Init()
	if err := flag.Set("test.benchtime", config.Bench.BenchTime); err != nil {
		return fmt.Errorf("benchtime %q: %w", config.Bench.BenchTime, err)
	}
	bar := progressbar.NewOptions(len(config.Bench.Sizes),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("measuring"),
		progressbar.OptionClearOnFinish(),
	)
	results := make([]benchResult, 0, len(config.Bench.Sizes))
	for _, size := range config.Bench.Sizes {
		results = append(results, measure(size, config.Bench.Seed, config.Bench.Ascending))
		bar.Add(1)
	}
	bar.Finish()

	fmt.Fprintf(out, "%10s %8s %12s %12s\n", "size", "height", "insert ns", "pop ns")
	for _, r := range results {
		fmt.Fprintf(out, "%10d %8d %12d %12d\n", r.size, r.height, r.insertNs, r.popNs)
	}
	return nil
}

package main

import (
	"fmt"
	"math/rand"
	"time"

	"bumppool"
)

// benchOptions holds the simulation parameters as runtime flags.
type benchOptions struct {
	Capacity       uint64
	MaxLen         int
	DeallocPercent int
	Repeats        int
	Seed           int64
}

// simResult is the per-run counters printed at the end of a simulation.
type simResult struct {
	Allocs       uint64
	AllocsFailed uint64
	Frees        uint64
	Elapsed      time.Duration
}

func (r simResult) String() string {
	return fmt.Sprintf(
		"+-------------------------------------------------------+\n"+
			"|                 Simulation Statistics                  |\n"+
			"+-------------------------------------------------------+\n"+
			"| Successful Allocs      : %-12d                 |\n"+
			"| Failed Allocs          : %-12d                 |\n"+
			"| Frees                  : %-12d                 |\n"+
			"+-------------------------------------------------------+\n",
		r.Allocs, r.AllocsFailed, r.Frees,
	)
}

func run(opts benchOptions) error {
	rng := rand.New(rand.NewSource(opts.Seed))
	sizes := make([]int, opts.Repeats)
	for i := range sizes {
		sizes[i] = 1 + rng.Intn(opts.MaxLen)
	}

	nativeResult := simulateNative(sizes, opts.DeallocPercent, rng)
	fmt.Printf("\n** Time required (native Go allocator)   : %s\n", nativeResult.Elapsed)
	fmt.Println(nativeResult)

	a, err := bumppool.New(opts.Capacity)
	if err != nil {
		return err
	}
	defer a.Close()

	poolResult := simulatePool(a, sizes, opts.DeallocPercent, rng)
	fmt.Printf("\n** Time required (bumppool allocator)    : %s\n", poolResult.Elapsed)
	fmt.Println(poolResult)
	fmt.Println(a.DumpStats())

	if nativeResult.Elapsed > 0 {
		pct := float64(nativeResult.Elapsed-poolResult.Elapsed) / float64(nativeResult.Elapsed) * 100
		fmt.Printf("\n*** Time comparison of bumppool allocator: %.2f%%\n", pct)
	}
	return nil
}

// simulateNative runs the same allocation schedule against make([]byte, n),
// the host Go allocator.
func simulateNative(sizes []int, deallocPercent int, rng *rand.Rand) simResult {
	var res simResult
	live := make([][]byte, 0, len(sizes))

	start := time.Now()
	for _, n := range sizes {
		buf := make([]byte, n+1)
		res.Allocs++
		dirty(buf)
		live = append(live, buf)

		if deallocPercent > 0 && rng.Intn(100) < deallocPercent {
			i := rng.Intn(len(live))
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
			res.Frees++
		}
	}
	res.Elapsed = time.Since(start)
	return res
}

// simulatePool runs the same allocation schedule against the bumppool allocator.
func simulatePool(a *bumppool.Allocator, sizes []int, deallocPercent int, rng *rand.Rand) simResult {
	var res simResult
	live := make([]bumppool.Addr, 0, len(sizes))

	start := time.Now()
	for _, n := range sizes {
		addr, ok := a.Allocate(uint64(n + 1))
		if !ok {
			res.AllocsFailed++
			continue
		}
		res.Allocs++
		dirty(a.Bytes(addr, uint64(n+1)))
		live = append(live, addr)

		if deallocPercent > 0 && rng.Intn(100) < deallocPercent {
			i := rng.Intn(len(live))
			addrToFree := live[i]
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
			_ = a.Deallocate(addrToFree)
			res.Frees++
		}
	}
	res.Elapsed = time.Since(start)

	for _, addr := range live {
		_ = a.Deallocate(addr)
		res.Frees++
	}
	return res
}

// dirty writes arbitrary bytes into buf to ensure its pages are touched.
func dirty(buf []byte) {
	for i := range buf {
		buf[i] = 'A'
	}
}

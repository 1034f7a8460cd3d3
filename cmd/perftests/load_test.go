package perftests

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/storeerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumUsers        int
	NumAuctions     int
	BidsPerUser     int
	ReadRatio       int
	MaxBidIncrement int
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (fastest, slowest, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration{}, om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	fastest = latencies[0]
	slowest = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_BiddingSystem runs multiple scenarios
func Benchmark_Load_BiddingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 10, 0, 50, false},
		{"High-Contention-WriteHeavy", 500, 10, 20, 0, 20, false},
		{"Mixed-Workload", 300, 50, 15, 7, 30, false},
		{"ReadHeavy", 200, 50, 5, 9, 20, false},
		{"Edge-Case-SingleAuction", 100, 1, 10, 5, 10, false},
		{"Peak-Burst", 500, 50, 50, 0, 20, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupRepo(s.NumAuctions, 100)
	ctx := context.Background()

	var totalOps, successfulBids, failedBids, totalReads int64
	auctionSuccess := make([]int64, s.NumAuctions)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))
		st := bidder(fmt.Sprintf("user_%d", rnd.Intn(s.NumUsers)))
		placed := 0

		for pb.Next() {
			index := rnd.Intn(s.NumAuctions)
			id := auctionID(index)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.MinimumNextBid(ctx, id); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				if placed >= s.BidsPerUser {
					st = bidder(fmt.Sprintf("user_%d", rnd.Intn(s.NumUsers)))
					placed = 0
				}
				known, err := svc.MinimumNextBid(ctx, id)
				if err != nil {
					b.Fatalf("failed to read minimum bid: %v", err)
				}
				// race others with a stale view of the price
				bidAmount := known + float64(rnd.Intn(s.MaxBidIncrement))
				known -= svc.Increment()
				if _, err := svc.PlaceBid(ctx, st, id, bidAmount, &known); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					placed++
					atomic.AddInt64(&successfulBids, 1)
					atomic.AddInt64(&auctionSuccess[index], 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	fastest, slowest, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulBids, failedBids, totalReads, elapsed,
		throughput,
		float64(fastest.Microseconds()), float64(avg.Microseconds()), float64(slowest.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range auctionSuccess {
		if v > 0 {
			b.Logf("Auction %d successful bids: %d", i, v)
		}
	}
}

// TestConcurrentBids_FinalPriceIsHighestAccepted checks that contention never
// lets a lower bid overwrite a higher one
func TestConcurrentBids_FinalPriceIsHighestAccepted(t *testing.T) {
	repo, svc := setupRepo(1, 100)
	ctx := context.Background()
	id := auctionID(0)

	const bidders = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []float64
	)
	start := 100.0

	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st := bidder(fmt.Sprintf("user_%d", i))
			for j := 0; j < 20; j++ {
				amount := start + float64(1+(i*7+j*13)%200)
				res, err := svc.PlaceBid(ctx, st, id, amount, &start)
				if err != nil {
					var conflict *storeerrors.ConflictError
					if assert.True(t, errors.As(err, &conflict), "unexpected error: %v", err) {
						assert.GreaterOrEqual(t, conflict.CurrentPrice, amount)
					}
					continue
				}
				assert.Equal(t, amount, res.CurrentPrice)
				mu.Lock()
				accepted = append(accepted, amount)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.NotEmpty(t, accepted)
	highest := accepted[0]
	for _, a := range accepted[1:] {
		highest = max(highest, a)
	}

	a, err := repo.GetAuction(ctx, id)
	require.NoError(t, err)
	require.Equal(t, highest, a.EffectivePrice())

	bids, err := repo.GetBidsByAuction(ctx, id)
	require.NoError(t, err)
	require.Len(t, bids, len(accepted))
}

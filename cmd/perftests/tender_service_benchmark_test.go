package perftests

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/bidhistory"
	"tender-dapp/internal/contract"
	"tender-dapp/internal/models"
	tendering "tender-dapp/internal/tenderService"
	"tender-dapp/internal/wallet"
	"tender-dapp/utils"
)

func init() {
	utils.SetOutput(io.Discard)
}

// setupService connects a TenderService for a single dev account over a ledger
// seeded with numTenders tenders
func setupService(b *testing.B, numTenders int) (*tendering.TenderService, *contract.Memory) {
	b.Helper()
	w, err := wallet.NewRandom(big.NewInt(31337), 1)
	if err != nil {
		b.Fatalf("failed to create wallet: %v", err)
	}
	ledger := setupLedger(b, numTenders)
	svc := tendering.NewTenderService(ledger, w, bidhistory.NewMemoryStore(), tendering.Options{Official: benchOfficial})
	if _, err := svc.Connect(context.Background()); err != nil {
		b.Fatalf("failed to connect: %v", err)
	}
	b.Cleanup(svc.Close)
	return svc, ledger
}

// Benchmark 1: SubmitBid - Isolated Tenders (Low Contention - Micro Benchmark)
func Benchmark_SubmitBid_Isolated(b *testing.B) {
	ledger := setupLedger(b, b.N)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		amount := big.NewInt(int64(100 + rand.Intn(100)))
		if err := ledger.SubmitBid(ctx, bidderAddress(i), uint64(i+1), amount); err != nil {
			b.Fatalf("failed to submit bid: %v", err)
		}
	}
}

// Benchmark 2: SubmitBid - Shared Tender (High Contention - Concurrency Benchmark)
func Benchmark_SubmitBid_ConcurrentSharedTender(b *testing.B) {
	ledger := setupLedger(b, 1)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var nextBidder int64

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := bidderAddress(int(atomic.AddInt64(&nextBidder, 1)))
			amount := big.NewInt(int64(100 + rnd.Intn(50)))
			if err := ledger.SubmitBid(ctx, bidder, 1, amount); err != nil {
				b.Errorf("failed to submit bid: %v", err)
				return
			}
		}
	})
}

// Benchmark 3: LoadTenders - full reload through the service
func Benchmark_LoadTenders(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d-tenders", n), func(b *testing.B) {
			svc, _ := setupService(b, n)
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tenders, err := svc.LoadTenders(ctx)
				if err != nil {
					b.Fatalf("failed to load tenders: %v", err)
				}
				if len(tenders) != n {
					b.Fatalf("expected %d tenders, got %d", n, len(tenders))
				}
			}
		})
	}
}

// Benchmark 4: ViewBids sorted by amount on a busy tender
func Benchmark_ViewBids_Sorted(b *testing.B) {
	svc, ledger := setupService(b, 1)
	ctx := context.Background()

	for j := 0; j < 500; j++ {
		amount := big.NewInt(int64(100 + rand.Intn(10000)))
		if err := ledger.SubmitBid(ctx, bidderAddress(j), 1, amount); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bids, err := svc.ViewBids(ctx, 1, true)
		if err != nil {
			b.Fatalf("failed to view bids: %v", err)
		}
		if len(bids) != 500 {
			b.Fatalf("expected 500 bids, got %d", len(bids))
		}
	}
}

// Benchmark 5: SortByAmount on an unsorted snapshot
func Benchmark_SortByAmount(b *testing.B) {
	rnd := rand.New(rand.NewSource(42))
	bids := make([]models.Bid, 1000)
	for i := range bids {
		bids[i] = models.Bid{Bidder: bidderAddress(i), Amount: big.NewInt(rnd.Int63n(1_000_000))}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tendering.SortByAmount(bids)
	}
}

// Benchmark 6: Mixed Workload on the bid history (Readers + Writers concurrently)
func Benchmark_BidHistory_MixedWorkload(b *testing.B) {
	store := bidhistory.NewMemoryStore()
	accounts := make([]common.Address, 256)
	for i := range accounts {
		accounts[i] = bidderAddress(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			tenderID := uint64(rnd.Intn(50) + 1)
			account := accounts[rnd.Intn(len(accounts))]
			if rnd.Intn(10) < 3 {
				store.Record(tenderID, account)
			} else {
				_ = store.HasBid(tenderID, account)
			}
		}
	})
}

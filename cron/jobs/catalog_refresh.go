package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/aguilerap-jc/thecatmanor/catalog"
	"github.com/aguilerap-jc/thecatmanor/cron"
)

var (
	mu  sync.Mutex
	agg *catalog.Aggregator
)

// UseAggregator hands the catalog to the refresh job. Called from main before
// the scheduler starts; the job is a no-op until then.
func UseAggregator(a *catalog.Aggregator) {
	mu.Lock()
	agg = a
	mu.Unlock()
}

func init() {
	cron.Register("catalog_refresh", "@every 5m", func(args ...string) {
		mu.Lock()
		a := agg
		mu.Unlock()
		if a == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		n := a.Refresh(ctx)
		log.Printf("catalog_refresh: resolved %d products", n)
	})
}

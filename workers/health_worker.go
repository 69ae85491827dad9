package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"ffmax-tournament-api/store"

	"github.com/go-co-op/gocron/v2"
)

const (
	heartbeatInterval = 30 * time.Second
	pingTimeout       = 5 * time.Second
)

// StoreHealthWorker pings the document store on a schedule and keeps the
// last result for the /test diagnostic. Store failures are logged and
// reported, never fatal.
type StoreHealthWorker struct {
	Store store.Store

	mu        sync.RWMutex
	healthy   bool
	lastCheck time.Time

	sched gocron.Scheduler
}

func NewStoreHealthWorker(st store.Store) *StoreHealthWorker {
	return &StoreHealthWorker{Store: st}
}

// Start runs the heartbeat until Stop is called. The first check fires
// immediately so /test has a status right after boot.
func (w *StoreHealthWorker) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	w.sched = sched

	_, err = sched.NewJob(
		gocron.DurationJob(heartbeatInterval),
		gocron.NewTask(w.check),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	sched.Start()
	return nil
}

func (w *StoreHealthWorker) Stop() {
	if w.sched != nil {
		_ = w.sched.Shutdown()
	}
}

func (w *StoreHealthWorker) check() {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	err := w.Store.Ping(ctx)

	w.mu.Lock()
	wasHealthy := w.healthy
	w.healthy = err == nil
	w.lastCheck = time.Now()
	w.mu.Unlock()

	switch {
	case err != nil && wasHealthy:
		log.Printf("⚠️ [HealthWorker] store heartbeat failed: %v", err)
	case err == nil && !wasHealthy:
		log.Println("✅ [HealthWorker] store heartbeat recovered")
	}
}

func (w *StoreHealthWorker) Healthy() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.healthy
}

func (w *StoreHealthWorker) LastCheck() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastCheck
}

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"jalsetu/core/records"
	"jalsetu/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type cachedSnapshot struct {
	snap  *Snapshot
	built time.Time
}

// Loader fetches tenant snapshots from a record source.
//
// Failed fetches never surface as errors: the collection is taken from the
// last archived snapshot when one exists, otherwise it is left empty, and the
// substitution is recorded in Snapshot.Degraded.
type Loader struct {
	source records.Source
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu    sync.RWMutex
	cache map[string]cachedSnapshot
	// generation is bumped by Invalidate; a fetch started under an older
	// generation is returned to its callers but never cached.
	generation map[string]uint64
	sf         singleflight.Group
}

// NewLoader creates a new snapshot loader. A nil client disables archiving and archive fallback.
func NewLoader(source records.Source, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source: source,
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		cache:  make(map[string]cachedSnapshot),

		generation: make(map[string]uint64),
	}
}

// Load returns the tenant's snapshot, served from cache while it is fresh.
// Concurrent loads for the same tenant share a single fetch.
func (l *Loader) Load(ctx context.Context, tenantID string) *Snapshot {
	if snap, ok := l.cached(tenantID); ok {
		return snap
	}

	result, _, _ := l.sf.Do(tenantID, func() (any, error) {
		if snap, ok := l.cached(tenantID); ok {
			return snap, nil
		}

		l.mu.RLock()
		started := l.generation[tenantID]
		l.mu.RUnlock()

		snap := l.Fetch(ctx, tenantID)
		// Degraded snapshots are not cached so the next request retries the source.
		if !snap.IsDegraded() && l.cfg.CacheTTL() > 0 {
			l.mu.Lock()
			if l.generation[tenantID] == started {
				l.cache[tenantID] = cachedSnapshot{snap: snap, built: l.now()}
			}
			l.mu.Unlock()
		}
		return snap, nil
	})

	return result.(*Snapshot)
}

// Fetch loads a snapshot from the source, bypassing the cache.
func (l *Loader) Fetch(ctx context.Context, tenantID string) *Snapshot {
	snap := &Snapshot{TenantID: tenantID}

	fetches := []struct {
		collection Collection
		run        func() error
	}{
		{CollectionUsage, func() (err error) {
			snap.Usage, err = l.source.FetchUsagePeriods(ctx, tenantID)
			return err
		}},
		{CollectionPayments, func() (err error) {
			snap.Payments, err = l.source.FetchPayments(ctx, tenantID)
			return err
		}},
		{CollectionTasks, func() (err error) {
			snap.Tasks, err = l.source.FetchTasks(ctx, tenantID)
			return err
		}},
		{CollectionStaff, func() (err error) {
			snap.Staff, err = l.source.FetchStaff(ctx, tenantID)
			return err
		}},
		{CollectionComplaints, func() (err error) {
			snap.Complaints, err = l.source.FetchComplaints(ctx, tenantID)
			return err
		}},
		{CollectionWaterMetrics, func() (err error) {
			snap.WaterMetrics, err = l.source.FetchWaterMetrics(ctx, tenantID)
			return err
		}},
		{CollectionTankCleanings, func() (err error) {
			snap.TankCleanings, err = l.source.FetchTankCleanings(ctx, tenantID)
			return err
		}},
	}

	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = f.run()
		}()
	}
	wg.Wait()

	snap.LoadedAt = l.now()

	for i, f := range fetches {
		if err := errs[i]; err != nil {
			l.logger.Warn("Collection fetch failed",
				zap.String("tenant", tenantID),
				zap.String("collection", string(f.collection)),
				zap.Error(err),
			)
			snap.Degraded = append(snap.Degraded, f.collection)
		}
	}

	if snap.IsDegraded() {
		l.substitute(ctx, snap)
		snap.ensureCollections()
		return snap
	}

	snap.ensureCollections()
	if l.cfg.Archive {
		if err := l.Archive(ctx, snap); err != nil {
			l.logger.Warn("Failed to archive snapshot", zap.String("tenant", tenantID), zap.Error(err))
		}
	}
	return snap
}

// substitute fills degraded collections from the archive when possible.
func (l *Loader) substitute(ctx context.Context, snap *Snapshot) {
	archived, err := l.Archived(ctx, snap.TenantID)
	if err != nil {
		if !errors.Is(err, storage.ErrObjectNotFound) {
			l.logger.Warn("Failed to read archived snapshot", zap.String("tenant", snap.TenantID), zap.Error(err))
		}
		archived = &Snapshot{}
	}

	for _, c := range snap.Degraded {
		switch c {
		case CollectionUsage:
			snap.Usage = archived.Usage
		case CollectionPayments:
			snap.Payments = archived.Payments
		case CollectionTasks:
			snap.Tasks = archived.Tasks
		case CollectionStaff:
			snap.Staff = archived.Staff
		case CollectionComplaints:
			snap.Complaints = archived.Complaints
		case CollectionWaterMetrics:
			snap.WaterMetrics = archived.WaterMetrics
		case CollectionTankCleanings:
			snap.TankCleanings = archived.TankCleanings
		}
	}
}

// Archive writes the snapshot to object storage.
func (l *Loader) Archive(ctx context.Context, snap *Snapshot) error {
	if l.client == nil {
		return nil
	}
	if err := storage.PutJSON(ctx, l.client, l.bucket, l.cfg.ObjectName(snap.TenantID), snap); err != nil {
		return fmt.Errorf("failed to archive snapshot for %s: %w", snap.TenantID, err)
	}
	return nil
}

// Archived reads the last archived snapshot of a tenant.
func (l *Loader) Archived(ctx context.Context, tenantID string) (*Snapshot, error) {
	if l.client == nil {
		return nil, storage.ErrObjectNotFound
	}
	var snap Snapshot
	if err := storage.GetJSON(ctx, l.client, l.bucket, l.cfg.ObjectName(tenantID), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Invalidate drops the cached snapshot of a tenant, e.g. after a mutation.
// A load already in flight is detached so later loads read the source again.
func (l *Loader) Invalidate(tenantID string) {
	l.mu.Lock()
	delete(l.cache, tenantID)
	l.generation[tenantID]++
	l.mu.Unlock()
	l.sf.Forget(tenantID)
}

func (l *Loader) cached(tenantID string) (*Snapshot, bool) {
	ttl := l.cfg.CacheTTL()
	if ttl == 0 {
		return nil, false
	}

	l.mu.RLock()
	entry, ok := l.cache[tenantID]
	l.mu.RUnlock()

	if !ok || l.now().Sub(entry.built) > ttl {
		return nil, false
	}
	return entry.snap, true
}

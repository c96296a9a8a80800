package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	calls atomic.Int32

	usage      []reconcile.UsagePeriod
	payments   []reconcile.Payment
	tasks      []reconcile.Task
	staff      []reconcile.Staff
	complaints []reconcile.Complaint
	metrics    []reconcile.WaterMetric

	paymentsErr error
	metricsErr  error
	staffErr    error

	// tasksGate, when set, holds FetchTasks after the tasks are read until it is closed.
	tasksGate    chan struct{}
	tasksStarted chan struct{}
}

func (f *fakeSource) FetchUsagePeriods(context.Context, string) ([]reconcile.UsagePeriod, error) {
	f.calls.Add(1)
	return f.usage, nil
}

func (f *fakeSource) FetchPayments(context.Context, string) ([]reconcile.Payment, error) {
	return f.payments, f.paymentsErr
}

func (f *fakeSource) FetchTasks(context.Context, string) ([]reconcile.Task, error) {
	tasks := f.tasks
	if f.tasksGate != nil {
		f.tasksStarted <- struct{}{}
		<-f.tasksGate
	}
	return tasks, nil
}

func (f *fakeSource) FetchStaff(context.Context, string) ([]reconcile.Staff, error) {
	if f.staffErr != nil {
		return nil, f.staffErr
	}
	return f.staff, nil
}

func (f *fakeSource) FetchComplaints(context.Context, string) ([]reconcile.Complaint, error) {
	return f.complaints, nil
}

func (f *fakeSource) FetchWaterMetrics(context.Context, string) ([]reconcile.WaterMetric, error) {
	return f.metrics, f.metricsErr
}

func (f *fakeSource) FetchTankCleanings(context.Context, string) ([]reconcile.TankCleaning, error) {
	return nil, nil
}

var due = time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)

func healthySource() *fakeSource {
	return &fakeSource{
		usage: []reconcile.UsagePeriod{{
			ID: "u1", SubscriberID: "H001", PeriodNumber: 10, Year: 2025,
			AmountDue: decimal.NewFromInt(250), DueDate: due,
		}},
		staff: []reconcile.Staff{{ID: "s1", Name: "Ramesh", DutyStatus: reconcile.OnDuty}},
	}
}

func TestLoader_FetchHealthyArchives(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", "snapshots/LGD1.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	l := NewLoader(healthySource(), client, "bucket", Config{Prefix: "snapshots", Archive: true}, zap.NewNop())
	snap := l.Fetch(context.Background(), "LGD1")

	assert.False(t, snap.IsDegraded())
	assert.Len(t, snap.Usage, 1)
	assert.NotNil(t, snap.Payments)
	assert.Empty(t, snap.Payments)
	client.AssertExpectations(t)
}

func TestLoader_FailedFetchUsesArchive(t *testing.T) {
	archived := Snapshot{
		TenantID: "LGD1",
		Payments: []reconcile.Payment{{
			ID: "p1", UsagePeriodID: "u1", Status: reconcile.PaymentCompleted,
			AmountPaid: decimal.NewFromInt(250), PaidAt: due,
		}},
		Staff: []reconcile.Staff{{ID: "s9", Name: "Archived", DutyStatus: reconcile.OffDuty}},
	}
	data, err := json.Marshal(archived)
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "snapshots/LGD1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	source := healthySource()
	source.paymentsErr = errors.New("timeout")

	l := NewLoader(source, client, "bucket", Config{Archive: true}, zap.NewNop())
	snap := l.Fetch(context.Background(), "LGD1")

	assert.Equal(t, []Collection{CollectionPayments}, snap.Degraded)
	require.Len(t, snap.Payments, 1)
	assert.Equal(t, "p1", snap.Payments[0].ID)
	// Healthy collections keep the live data.
	assert.Equal(t, "Ramesh", snap.Staff[0].Name)

	rows := reconcile.ReconcileBilling(snap.Usage, snap.Payments, due.AddDate(0, 0, 1))
	assert.Equal(t, reconcile.UsagePaid, rows[0].Status)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoader_FailedMetricsFetchUsesArchive(t *testing.T) {
	archived := Snapshot{
		TenantID:     "LGD1",
		WaterMetrics: []reconcile.WaterMetric{{ID: "m1", Date: due, TotalAvailable: 50000, TotalUsed: 20000}},
	}
	data, err := json.Marshal(archived)
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "snapshots/LGD1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	source := healthySource()
	source.metricsErr = errors.New("timeout")

	l := NewLoader(source, client, "bucket", Config{Archive: true}, zap.NewNop())
	snap := l.Fetch(context.Background(), "LGD1")

	assert.Equal(t, []Collection{CollectionWaterMetrics}, snap.Degraded)
	require.Len(t, snap.WaterMetrics, 1)
	assert.Equal(t, float64(40), reconcile.UsageOn(snap.WaterMetrics, due).UsedPercent)
	assert.NotNil(t, snap.TankCleanings)
}

func TestLoader_FailedFetchWithoutArchiveIsEmpty(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "snapshots/LGD1.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

	source := healthySource()
	source.staffErr = errors.New("connection refused")

	l := NewLoader(source, client, "bucket", Config{}, zap.NewNop())
	snap := l.Fetch(context.Background(), "LGD1")

	assert.Equal(t, []Collection{CollectionStaff}, snap.Degraded)
	assert.NotNil(t, snap.Staff)
	assert.Empty(t, snap.Staff)
}

func TestLoader_NoClient(t *testing.T) {
	source := healthySource()
	source.staffErr = errors.New("down")

	l := NewLoader(source, nil, "", Config{Archive: true}, nil)
	snap := l.Fetch(context.Background(), "LGD1")

	assert.True(t, snap.IsDegraded())
	assert.Empty(t, snap.Staff)
	assert.Len(t, snap.Usage, 1)
}

func TestLoader_LoadCachesUntilTTL(t *testing.T) {
	source := healthySource()
	l := NewLoader(source, nil, "", Config{CacheTTLSeconds: 30}, zap.NewNop())

	current := due
	l.now = func() time.Time { return current }

	first := l.Load(context.Background(), "LGD1")
	second := l.Load(context.Background(), "LGD1")
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), source.calls.Load())

	current = current.Add(31 * time.Second)
	third := l.Load(context.Background(), "LGD1")
	assert.NotSame(t, first, third)
	assert.Equal(t, int32(2), source.calls.Load())

	l.Invalidate("LGD1")
	l.Load(context.Background(), "LGD1")
	assert.Equal(t, int32(3), source.calls.Load())
}

func TestLoader_InvalidateDuringLoadDropsStaleResult(t *testing.T) {
	source := healthySource()
	source.tasks = []reconcile.Task{{ID: "T101", Status: reconcile.TaskPending}}
	source.tasksGate = make(chan struct{})
	source.tasksStarted = make(chan struct{}, 2)

	l := NewLoader(source, nil, "", Config{CacheTTLSeconds: 30}, zap.NewNop())

	inFlight := make(chan *Snapshot)
	go func() {
		inFlight <- l.Load(context.Background(), "LGD1")
	}()

	<-source.tasksStarted
	// The task is completed while the first load still holds the old rows.
	source.tasks = []reconcile.Task{{ID: "T101", Status: reconcile.TaskCompleted}}
	l.Invalidate("LGD1")
	close(source.tasksGate)

	stale := <-inFlight
	assert.Equal(t, reconcile.TaskPending, stale.Tasks[0].Status)

	fresh := l.Load(context.Background(), "LGD1")
	require.Len(t, fresh.Tasks, 1)
	assert.Equal(t, reconcile.TaskCompleted, fresh.Tasks[0].Status)
	assert.Equal(t, int32(2), source.calls.Load())

	// The fresh snapshot is the one cached.
	assert.Same(t, fresh, l.Load(context.Background(), "LGD1"))
	assert.Equal(t, int32(2), source.calls.Load())
}

func TestLoader_DegradedIsNotCached(t *testing.T) {
	source := healthySource()
	source.staffErr = errors.New("down")
	l := NewLoader(source, nil, "", Config{CacheTTLSeconds: 30}, zap.NewNop())

	l.Load(context.Background(), "LGD1")
	l.Load(context.Background(), "LGD1")
	assert.Equal(t, int32(2), source.calls.Load())
}

func TestLoader_ConcurrentLoads(t *testing.T) {
	source := healthySource()
	l := NewLoader(source, nil, "", Config{CacheTTLSeconds: 30}, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := l.Load(context.Background(), "LGD1")
			assert.Len(t, snap.Usage, 1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, source.calls.Load(), int32(20))
	assert.GreaterOrEqual(t, source.calls.Load(), int32(1))
}

func TestConfig(t *testing.T) {
	assert.Equal(t, time.Duration(0), Config{}.CacheTTL())
	assert.Equal(t, 5*time.Second, Config{CacheTTLSeconds: 5}.CacheTTL())
	assert.Equal(t, "snapshots/LGD1.json", Config{}.ObjectName("LGD1"))
	assert.Equal(t, "archive/LGD1.json", Config{Prefix: "archive"}.ObjectName("LGD1"))
}

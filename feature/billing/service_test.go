package billing

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	usage       []reconcile.UsagePeriod
	usageErr    error
	payments    []reconcile.Payment
	paymentsErr error
}

func (s stubSource) FetchUsagePeriods(context.Context, string) ([]reconcile.UsagePeriod, error) {
	if s.usageErr != nil {
		return nil, s.usageErr
	}
	return s.usage, nil
}

func (s stubSource) FetchPayments(context.Context, string) ([]reconcile.Payment, error) {
	return s.payments, s.paymentsErr
}

func (stubSource) FetchTasks(context.Context, string) ([]reconcile.Task, error) { return nil, nil }

func (stubSource) FetchStaff(context.Context, string) ([]reconcile.Staff, error) { return nil, nil }

func (stubSource) FetchComplaints(context.Context, string) ([]reconcile.Complaint, error) {
	return nil, nil
}

func (stubSource) FetchWaterMetrics(context.Context, string) ([]reconcile.WaterMetric, error) {
	return nil, nil
}

func (stubSource) FetchTankCleanings(context.Context, string) ([]reconcile.TankCleaning, error) {
	return nil, nil
}

func TestService_DegradedPaymentsShowAsUnpaid(t *testing.T) {
	due := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	src := stubSource{
		usage: []reconcile.UsagePeriod{
			{ID: "u1", SubscriberID: "H001", PeriodNumber: 10, Year: 2025, AmountDue: decimal.NewFromInt(250), DueDate: due},
		},
		paymentsErr: errors.New("payments table unavailable"),
	}
	loader := snapshot.NewLoader(src, nil, "", snapshot.Config{}, zap.NewNop())
	svc := NewService(loader, zap.NewNop(), nil)

	dash := svc.Dashboard(context.Background(), "LGD1", due.AddDate(0, 0, 1), nil)
	require.Len(t, dash.Usage, 1)
	assert.Equal(t, reconcile.UsageOverdue, dash.Usage[0].Status)
	assert.Equal(t, []snapshot.Collection{snapshot.CollectionPayments}, dash.Degraded)
}

func TestService_EmptyTenant(t *testing.T) {
	loader := snapshot.NewLoader(stubSource{}, nil, "", snapshot.Config{}, zap.NewNop())
	svc := NewService(loader, zap.NewNop(), nil)

	dash := svc.Dashboard(context.Background(), "LGD9", time.Now(), nil)
	assert.Empty(t, dash.Usage)
	assert.Equal(t, reconcile.PaymentShare{}, dash.Share)
	assert.Empty(t, dash.Revenue)
}

func TestService_EvaluationTime(t *testing.T) {
	svc := NewService(nil, zap.NewNop(), time.UTC)
	fixed := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.EvaluationTime("")
	require.NoError(t, err)
	assert.Equal(t, fixed, got)
}

func TestService_SubscriberOnDegradedUsage(t *testing.T) {
	src := stubSource{usageErr: errors.New("water_usage table unavailable")}
	loader := snapshot.NewLoader(src, nil, "", snapshot.Config{}, zap.NewNop())
	svc := NewService(loader, zap.NewNop(), time.UTC)

	_, err := svc.Subscriber(context.Background(), "LGD1", "H001", time.Now())
	assert.ErrorIs(t, err, ErrUsageUnavailable)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/billing/LGD1/subscribers/H001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestService_SubscriberUnknownOnHealthyUsage(t *testing.T) {
	due := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	src := stubSource{usage: []reconcile.UsagePeriod{
		{ID: "u1", SubscriberID: "H001", PeriodNumber: 10, Year: 2025, AmountDue: decimal.NewFromInt(250), DueDate: due},
	}}
	loader := snapshot.NewLoader(src, nil, "", snapshot.Config{}, zap.NewNop())
	svc := NewService(loader, zap.NewNop(), time.UTC)

	_, err := svc.Subscriber(context.Background(), "LGD1", "H404", due)
	assert.ErrorIs(t, err, ErrUnknownSubscriber)
}

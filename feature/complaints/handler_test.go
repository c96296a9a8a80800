package complaints_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jalsetu/core/database"
	"jalsetu/core/reconcile"
	"jalsetu/core/records"
	"jalsetu/core/snapshot"
	"jalsetu/feature/complaints"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func setupTestApp(t *testing.T) *fiber.App {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, records.Migrate(db))

	require.NoError(t, db.Create(&[]records.StaffRow{
		{ID: "s1", PanchayatLGD: "LGD1", Name: "Ramesh", DutyStatus: "On Duty"},
	}).Error)

	submitted := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]records.ComplaintRow{
		{ID: "C001", PanchayatLGD: "LGD1", HouseNo: "H005", Type: "Leakage", Description: "Pipe leak",
			Latitude: ptr(12.9716), Longitude: ptr(77.5946), AssignedTo: ptr("s1"), Status: "Resolved", CreatedAt: submitted},
		{ID: "C002", PanchayatLGD: "LGD1", HouseNo: "H007", Type: "Household", Description: "Low pressure",
			Status: "Pending", CreatedAt: submitted},
		{ID: "C003", PanchayatLGD: "LGD1", HouseNo: "H009", Type: "Leakage", Description: "Dripping valve",
			AssignedTo: ptr("s7"), Status: "In Progress", CreatedAt: submitted},
	}).Error)

	store := records.NewStore(db, zap.NewNop())
	loader := snapshot.NewLoader(store, nil, "", snapshot.Config{CacheTTLSeconds: 60}, zap.NewNop())

	app := fiber.New()
	require.NoError(t, complaints.NewFeature(loader, store, zap.NewNop()).Load(app))
	return app
}

func list(t *testing.T, app *fiber.App, target string) complaints.Report {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report complaints.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	return report
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(t)
	report := list(t, app, "/complaints/LGD1")

	require.Len(t, report.Complaints, 3)
	names := map[string]string{}
	for _, c := range report.Complaints {
		names[c.Item.ID] = c.StaffName
	}
	assert.Equal(t, map[string]string{"C001": "Ramesh", "C002": "Unassigned", "C003": "Unassigned"}, names)
	assert.Equal(t, 2, report.Categories[reconcile.CategoryLeakage])
	assert.Equal(t, 1, report.Categories[reconcile.CategoryHousehold])
	assert.InDelta(t, 33.33, report.ResolutionRate, 0.01)
}

func TestHandleList_CategoryFilter(t *testing.T) {
	app := setupTestApp(t)
	report := list(t, app, "/complaints/LGD1?category=leakage")

	assert.Equal(t, reconcile.CategoryLeakage, report.Category)
	require.Len(t, report.Complaints, 2)
	assert.Equal(t, 1, report.Status[reconcile.ComplaintResolved])
	assert.Equal(t, 1, report.Status[reconcile.ComplaintInProgress])
	assert.Equal(t, float64(50), report.ResolutionRate)
	assert.Equal(t, 1, report.Categories[reconcile.CategoryHousehold])

	resp, err := app.Test(httptest.NewRequest("GET", "/complaints/LGD1?category=Fire", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSubmit(t *testing.T) {
	app := setupTestApp(t)
	list(t, app, "/complaints/LGD1") // warm the cache

	body := `{"location_ref":"H012","category":"household","description":"No water since morning","gps":{"latitude":12.97,"longitude":77.59}}`
	req := httptest.NewRequest("POST", "/complaints/LGD1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created reconcile.Complaint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, reconcile.ComplaintPending, created.Status)
	assert.Equal(t, reconcile.CategoryHousehold, created.Category)
	require.NotNil(t, created.GPS)

	report := list(t, app, "/complaints/LGD1")
	assert.Len(t, report.Complaints, 4)
	assert.Equal(t, 2, report.Categories[reconcile.CategoryHousehold])
}

func TestHandleSubmit_Invalid(t *testing.T) {
	app := setupTestApp(t)

	bodies := []string{
		`{"category":"Leakage","description":"x"}`,
		`{"location_ref":"H1","category":"Leakage","description":"   "}`,
		`{"location_ref":"H1","category":"Fire","description":"x"}`,
		`{"location_ref":"H1","category":"Leakage","description":"x","gps":{"latitude":91,"longitude":0}}`,
		`{`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest("POST", "/complaints/LGD1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
}

package management_test

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
	"jalsetu/feature/management"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, records.Migrate(db))

	staff := []records.StaffRow{
		{ID: "s1", PanchayatLGD: "LGD1", Name: "Ramesh", Role: "Plumber", DutyStatus: "On Duty"},
		{ID: "s2", PanchayatLGD: "LGD1", Name: "Suresh", Role: "Electrician", DutyStatus: "Off Duty"},
	}
	require.NoError(t, db.Create(&staff).Error)

	created := time.Date(2025, 10, 4, 9, 0, 0, 0, time.UTC)
	tasks := []records.TaskRow{
		{TaskID: "T101", PanchayatLGD: "LGD1", HouseNo: "H008", Issue: "Leakage", AssignedTo: ptr("s1"), Status: "In Progress", CreatedAt: created},
		{TaskID: "T102", PanchayatLGD: "LGD1", HouseNo: "H010", Issue: "Low Pressure", AssignedTo: ptr("s9"), Status: "Pending", CreatedAt: created},
		{TaskID: "T103", PanchayatLGD: "LGD1", HouseNo: "H011", Issue: "Meter", Status: "Completed", CreatedAt: created},
	}
	require.NoError(t, db.Create(&tasks).Error)

	store := records.NewStore(db, zap.NewNop())
	loader := snapshot.NewLoader(store, nil, "", snapshot.Config{CacheTTLSeconds: 60}, zap.NewNop())

	app := fiber.New()
	require.NoError(t, management.NewFeature(loader, store, zap.NewNop()).Load(app))
	return app, db
}

func getDashboard(t *testing.T, app *fiber.App) management.Dashboard {
	resp, err := app.Test(httptest.NewRequest("GET", "/management/LGD1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var dash management.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dash))
	return dash
}

func TestHandleDashboard(t *testing.T) {
	app, _ := setupTestApp(t)
	dash := getDashboard(t, app)

	assert.Equal(t, 1, dash.Duty[reconcile.OnDuty])
	assert.Equal(t, 1, dash.Duty[reconcile.OffDuty])

	require.Len(t, dash.Tasks, 3)
	names := map[string]string{}
	for _, task := range dash.Tasks {
		names[task.Item.ID] = task.StaffName
	}
	assert.Equal(t, map[string]string{"T101": "Ramesh", "T102": "Unassigned", "T103": "Unassigned"}, names)
	assert.Equal(t, 1, dash.Orphaned)

	assert.Equal(t, 1, dash.TaskStatus[reconcile.TaskCompleted])
	assert.InDelta(t, 33.33, dash.CompletionRate, 0.01)
}

func TestHandleCompleteTask(t *testing.T) {
	app, _ := setupTestApp(t)

	// Warm the cache so the mutation has something to invalidate.
	before := getDashboard(t, app)
	assert.Equal(t, 1, before.TaskStatus[reconcile.TaskCompleted])

	resp, err := app.Test(httptest.NewRequest("POST", "/management/LGD1/tasks/T101/complete", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var task reconcile.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&task))
	assert.Equal(t, reconcile.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedBy)
	assert.Equal(t, "s1", *task.CompletedBy)

	after := getDashboard(t, app)
	assert.Equal(t, 2, after.TaskStatus[reconcile.TaskCompleted])

	resp, err = app.Test(httptest.NewRequest("POST", "/management/LGD1/tasks/T999/complete", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleSetDuty(t *testing.T) {
	app, db := setupTestApp(t)

	put := func(target, body string) int {
		req := httptest.NewRequest("PUT", target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, put("/management/LGD1/staff/s2/duty", `{"duty_status":"on-duty"}`))

	var row records.StaffRow
	require.NoError(t, db.Where("id = ?", "s2").First(&row).Error)
	assert.Equal(t, "On Duty", row.DutyStatus)

	assert.Equal(t, fiber.StatusBadRequest, put("/management/LGD1/staff/s2/duty", `{"duty_status":"asleep"}`))
	assert.Equal(t, fiber.StatusBadRequest, put("/management/LGD1/staff/s2/duty", `not json`))
	assert.Equal(t, fiber.StatusNotFound, put("/management/LGD1/staff/s404/duty", `{"duty_status":"Off Duty"}`))
}

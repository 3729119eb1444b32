package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/openvelo/road-backend-go/internal/database"
	"github.com/openvelo/road-backend-go/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := testDB(t)
	// Running the migrations again must be a no-op
	require.NoError(t, database.Migrate(db))
}

func TestSeed(t *testing.T) {
	db := testDB(t)
	require.NoError(t, database.Seed(db))

	segs, err := NewSegmentRepository(db).ListSegments()
	require.NoError(t, err)
	assert.NotEmpty(t, segs)

	// Seeding twice must not duplicate the demo data
	require.NoError(t, database.Seed(db))
	again, err := NewSegmentRepository(db).ListSegments()
	require.NoError(t, err)
	assert.Len(t, again, len(segs))
}

func TestUserRepository(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	created, err := repo.CreateUser("alice")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byID, err := repo.GetUserByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetUserByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := repo.GetUserByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	users, err := repo.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSegmentRepository(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	repo := NewSegmentRepository(db)

	owner, err := users.CreateUser("alice")
	require.NoError(t, err)

	created, err := repo.CreateSegment(&models.Segment{
		UserID: owner.ID, StartLat: 1.30, StartLon: 103.80, EndLat: 1.301, EndLon: 103.801,
		Status: models.StatusOptimal, Obstacle: "pothole", RoadName: "Beach Road",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.LastAggregated)

	aggregatedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateSegmentStatus(created.ID, models.StatusMaintenance, aggregatedAt))

	loaded, err := repo.GetSegmentByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, models.StatusMaintenance, loaded.Status)
	require.NotNil(t, loaded.LastAggregated)
	assert.Equal(t, "Beach Road", loaded.RoadName)

	require.NoError(t, repo.OverrideSegmentStatus(created.ID, models.StatusMedium))
	loaded, err = repo.GetSegmentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusMedium, loaded.Status)

	missing, err := repo.GetSegmentByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReportRepository(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	segments := NewSegmentRepository(db)
	repo := NewReportRepository(db)

	owner, err := users.CreateUser("alice")
	require.NoError(t, err)
	seg, err := segments.CreateSegment(&models.Segment{
		UserID: owner.ID, StartLat: 1.30, StartLon: 103.80, EndLat: 1.301, EndLon: 103.801,
		Status: models.StatusOptimal,
	})
	require.NoError(t, err)

	report, err := repo.CreateReport(seg.ID, "big pothole")
	require.NoError(t, err)
	assert.False(t, report.Confirmed)

	require.NoError(t, repo.ConfirmReport(report.ID))
	loaded, err := repo.GetReportByID(report.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Confirmed)

	list, err := repo.ListReportsBySegment(seg.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	total, confirmed, err := repo.CountReports()
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), confirmed)
}

func TestTripRepository(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	repo := NewTripRepository(db)

	owner, err := users.CreateUser("alice")
	require.NoError(t, err)

	private := models.NewLineString([][]float64{{103.860, 1.283}, {103.870, 1.293}})
	created, err := repo.CreateTrip(&models.Trip{
		UserID:  owner.ID,
		FromLat: 1.283, FromLon: 103.861, ToLat: 1.293, ToLon: 103.871,
		PrivateFromLat: 1.28345, PrivateFromLon: 103.86078,
		PrivateToLat: 1.29345, PrivateToLon: 103.87078,
		DistanceMeters: 1500, DurationSeconds: 136,
		Geometry:        models.NewLineString([][]float64{{103.861, 1.283}, {103.871, 1.293}}),
		PrivateGeometry: &private,
		WeatherSummary:  "Sunny, 28.0°C",
		RouteSource:     "fallback",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	loaded, err := repo.GetTripByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1.28345, loaded.PrivateFromLat)
	require.NotNil(t, loaded.PrivateGeometry)
	assert.Len(t, loaded.PrivateGeometry.Coordinates, 2)
	assert.Equal(t, "Sunny, 28.0°C", loaded.WeatherSummary)

	byUser, err := repo.ListTrips(&owner.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	all, err := repo.ListTrips(nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := repo.DeleteTrip(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteTrip(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSettingsRepository(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	repo := NewSettingsRepository(db)

	owner, err := users.CreateUser("alice")
	require.NoError(t, err)

	// Never saved yet
	missing, err := repo.GetSettings(owner.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	settings := models.DefaultSettings(owner.ID)
	settings.Language = "it"
	require.NoError(t, repo.SaveSettings(&settings))

	loaded, err := repo.GetSettings(owner.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "it", loaded.Language)

	// Upsert replaces the previous row
	settings.DarkMode = true
	require.NoError(t, repo.SaveSettings(&settings))
	loaded, err = repo.GetSettings(owner.ID)
	require.NoError(t, err)
	assert.True(t, loaded.DarkMode)
}

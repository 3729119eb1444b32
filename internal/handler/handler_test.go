package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
)

type stubUserStore struct {
	users map[int64]*models.User
}

func (s *stubUserStore) CreateUser(username string) (*models.User, error) { return nil, nil }
func (s *stubUserStore) GetUserByID(id int64) (*models.User, error)       { return s.users[id], nil }
func (s *stubUserStore) GetUserByUsername(username string) (*models.User, error) {
	return nil, nil
}
func (s *stubUserStore) ListUsers() ([]models.User, error) { return nil, nil }

type stubSettingsStore struct {
	settings map[int64]*models.Settings
}

func (s *stubSettingsStore) GetSettings(userID int64) (*models.Settings, error) {
	return s.settings[userID], nil
}
func (s *stubSettingsStore) SaveSettings(settings *models.Settings) error { return nil }

type stubSegmentStore struct {
	segments []models.Segment
}

func (s *stubSegmentStore) CreateSegment(seg *models.Segment) (*models.Segment, error) {
	return seg, nil
}
func (s *stubSegmentStore) GetSegmentByID(id int64) (*models.Segment, error) { return nil, nil }
func (s *stubSegmentStore) ListSegments() ([]models.Segment, error)          { return s.segments, nil }
func (s *stubSegmentStore) UpdateSegmentStatus(id int64, status string, aggregatedAt time.Time) error {
	return nil
}
func (s *stubSegmentStore) OverrideSegmentStatus(id int64, status string) error { return nil }

func segmentListRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserStore{users: map[int64]*models.User{1: {ID: 1, Username: "marta"}}}
	saved := models.DefaultSettings(1)
	saved.Language = "it"
	settings := &stubSettingsStore{settings: map[int64]*models.Settings{1: &saved}}
	segments := &stubSegmentStore{segments: []models.Segment{
		{ID: 1, UserID: 1, Status: models.StatusMaintenance},
	}}

	settingsSvc := service.NewSettingsService(settings, users)
	segmentSvc := service.NewSegmentService(segments, users)
	h := NewSegmentHandler(segmentSvc, settingsSvc)

	r := gin.New()
	r.GET("/api/segments", h.List)
	return r
}

func listSegments(t *testing.T, r *gin.Engine, target string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestSavedLanguageDrivesLocalization(t *testing.T) {
	r := segmentListRouter(t)

	// No lang query: the user's saved language decides
	body := listSegments(t, r, "/api/segments?user_id=1")
	assert.Contains(t, body, "In Manutenzione")
}

func TestLangQueryOverridesSavedLanguage(t *testing.T) {
	r := segmentListRouter(t)

	body := listSegments(t, r, "/api/segments?user_id=1&lang=zh")
	assert.Contains(t, body, "维护中")
	assert.NotContains(t, body, "In Manutenzione")
}

func TestUnknownUserFallsBackToEnglish(t *testing.T) {
	r := segmentListRouter(t)

	body := listSegments(t, r, "/api/segments?user_id=9")
	assert.Contains(t, body, "Under Maintenance")

	body = listSegments(t, r, "/api/segments")
	assert.Contains(t, body, "Under Maintenance")
}

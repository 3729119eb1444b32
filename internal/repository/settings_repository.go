package repository

import (
	"database/sql"
	"fmt"

	"github.com/openvelo/road-backend-go/internal/models"
)

// SettingsRepository handles database operations for per-user settings
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings retrieves a user's settings, nil when never saved
func (r *SettingsRepository) GetSettings(userID int64) (*models.Settings, error) {
	var s models.Settings
	err := r.db.QueryRow(`
		SELECT user_id, auto_detect_enabled, auto_confirm_threshold, default_map_zoom,
			preferred_route_mode, notifications_enabled, dark_mode, language
		FROM settings WHERE user_id = ?`, userID,
	).Scan(
		&s.UserID, &s.AutoDetectEnabled, &s.AutoConfirmThreshold, &s.DefaultMapZoom,
		&s.PreferredRouteMode, &s.NotificationsEnabled, &s.DarkMode, &s.Language,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

// SaveSettings inserts or replaces a user's settings
func (r *SettingsRepository) SaveSettings(s *models.Settings) error {
	_, err := r.db.Exec(`
		INSERT INTO settings (user_id, auto_detect_enabled, auto_confirm_threshold, default_map_zoom,
			preferred_route_mode, notifications_enabled, dark_mode, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			auto_detect_enabled = excluded.auto_detect_enabled,
			auto_confirm_threshold = excluded.auto_confirm_threshold,
			default_map_zoom = excluded.default_map_zoom,
			preferred_route_mode = excluded.preferred_route_mode,
			notifications_enabled = excluded.notifications_enabled,
			dark_mode = excluded.dark_mode,
			language = excluded.language`,
		s.UserID, s.AutoDetectEnabled, s.AutoConfirmThreshold, s.DefaultMapZoom,
		s.PreferredRouteMode, s.NotificationsEnabled, s.DarkMode, s.Language,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

package models

import "time"

// User represents a registered rider
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserCreate is the payload for user registration
type UserCreate struct {
	Username string `json:"username" binding:"required,min=1"`
}

// Settings holds per-user preferences
type Settings struct {
	UserID               int64  `json:"user_id" db:"user_id"`
	AutoDetectEnabled    bool   `json:"auto_detect_enabled" db:"auto_detect_enabled"`
	AutoConfirmThreshold int    `json:"auto_confirm_threshold" db:"auto_confirm_threshold"`
	DefaultMapZoom       int    `json:"default_map_zoom" db:"default_map_zoom"`
	PreferredRouteMode   string `json:"preferred_route_mode" db:"preferred_route_mode"`
	NotificationsEnabled bool   `json:"notifications_enabled" db:"notifications_enabled"`
	DarkMode             bool   `json:"dark_mode" db:"dark_mode"`
	Language             string `json:"language" db:"language"`
}

// DefaultSettings returns the settings applied to a user who never saved any
func DefaultSettings(userID int64) Settings {
	return Settings{
		UserID:               userID,
		AutoDetectEnabled:    true,
		AutoConfirmThreshold: 2,
		DefaultMapZoom:       12,
		PreferredRouteMode:   "fastest",
		NotificationsEnabled: true,
		DarkMode:             false,
		Language:             "en",
	}
}

package service

import (
	"github.com/openvelo/road-backend-go/internal/i18n"
	"github.com/openvelo/road-backend-go/internal/models"
)

// SettingsService manages per-user preferences. Users who never saved
// anything read back the defaults.
type SettingsService struct {
	settings SettingsStore
	users    UserStore
}

func NewSettingsService(settings SettingsStore, users UserStore) *SettingsService {
	return &SettingsService{settings: settings, users: users}
}

func (s *SettingsService) Get(userID int64) (*models.Settings, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user_id not found")
	}
	saved, err := s.settings.GetSettings(userID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		defaults := models.DefaultSettings(userID)
		return &defaults, nil
	}
	return saved, nil
}

// Put replaces the user's settings wholesale
func (s *SettingsService) Put(userID int64, settings models.Settings) (*models.Settings, error) {
	if _, err := s.Get(userID); err != nil {
		return nil, err
	}
	if !i18n.ValidLanguage(settings.Language) {
		return nil, InvalidArgument("unsupported language")
	}
	settings.UserID = userID
	if err := s.settings.SaveSettings(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Patch merges the provided fields into the current settings. Unknown keys
// are ignored.
func (s *SettingsService) Patch(userID int64, fields map[string]any) (*models.Settings, error) {
	current, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	for key, value := range fields {
		switch key {
		case "auto_detect_enabled":
			if v, ok := value.(bool); ok {
				current.AutoDetectEnabled = v
			}
		case "auto_confirm_threshold":
			if v, ok := value.(float64); ok && v >= 1 {
				current.AutoConfirmThreshold = int(v)
			}
		case "default_map_zoom":
			if v, ok := value.(float64); ok {
				current.DefaultMapZoom = int(v)
			}
		case "preferred_route_mode":
			if v, ok := value.(string); ok && v != "" {
				current.PreferredRouteMode = v
			}
		case "notifications_enabled":
			if v, ok := value.(bool); ok {
				current.NotificationsEnabled = v
			}
		case "dark_mode":
			if v, ok := value.(bool); ok {
				current.DarkMode = v
			}
		case "language":
			if v, ok := value.(string); ok {
				if !i18n.ValidLanguage(v) {
					return nil, InvalidArgument("unsupported language")
				}
				current.Language = v
			}
		}
	}
	if err := s.settings.SaveSettings(current); err != nil {
		return nil, err
	}
	return current, nil
}

// Language returns the user's saved language, defaulting to English when
// the user is unknown or has no saved settings
func (s *SettingsService) Language(userID int64) string {
	saved, err := s.settings.GetSettings(userID)
	if err != nil || saved == nil || saved.Language == "" {
		return i18n.DefaultLanguage
	}
	return saved.Language
}

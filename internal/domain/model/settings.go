package model

const (
	MinPollingInterval     = 10
	MaxPollingInterval     = 120
	DefaultPollingInterval = 20
)

// Settings is the dashboard configuration blob persisted in the settings store.
type Settings struct {
	PollingInterval    int    `json:"pollingInterval"`
	SoundEnabled       bool   `json:"soundEnabled"`
	VibrateEnabled     bool   `json:"vibrateEnabled"`
	SpreadsheetID      string `json:"spreadsheetId"`
	GoogleClientID     string `json:"googleClientId"`
	GoogleClientSecret string `json:"googleClientSecret"`
}

// DefaultSettings returns documented defaults.
func DefaultSettings() Settings {
	return Settings{
		PollingInterval: DefaultPollingInterval,
		SoundEnabled:    true,
		VibrateEnabled:  true,
	}
}

// Normalize clamps the polling interval into its allowed range.
func (s Settings) Normalize() Settings {
	switch {
	case s.PollingInterval < MinPollingInterval:
		s.PollingInterval = MinPollingInterval
	case s.PollingInterval > MaxPollingInterval:
		s.PollingInterval = MaxPollingInterval
	}
	return s
}

// SettingsPatch carries a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	PollingInterval    *int
	SoundEnabled       *bool
	VibrateEnabled     *bool
	SpreadsheetID      *string
	GoogleClientID     *string
	GoogleClientSecret *string
}

// Apply merges the patch over s, last write wins.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.PollingInterval != nil {
		s.PollingInterval = *p.PollingInterval
	}
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	if p.VibrateEnabled != nil {
		s.VibrateEnabled = *p.VibrateEnabled
	}
	if p.SpreadsheetID != nil {
		s.SpreadsheetID = *p.SpreadsheetID
	}
	if p.GoogleClientID != nil {
		s.GoogleClientID = *p.GoogleClientID
	}
	if p.GoogleClientSecret != nil {
		s.GoogleClientSecret = *p.GoogleClientSecret
	}
	return s.Normalize()
}

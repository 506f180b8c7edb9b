package dto

// SettingsResponse mirrors the stored settings. The client secret is never echoed back.
type SettingsResponse struct {
	PollingInterval       int    `json:"pollingInterval"`
	SoundEnabled          bool   `json:"soundEnabled"`
	VibrateEnabled        bool   `json:"vibrateEnabled"`
	SpreadsheetID         string `json:"spreadsheetId"`
	GoogleClientID        string `json:"googleClientId"`
	GoogleClientSecretSet bool   `json:"googleClientSecretSet"`
}

// SettingsPatchRequest is a partial update; absent keys stay unchanged.
type SettingsPatchRequest struct {
	PollingInterval    *int    `json:"pollingInterval"`
	SoundEnabled       *bool   `json:"soundEnabled"`
	VibrateEnabled     *bool   `json:"vibrateEnabled"`
	SpreadsheetID      *string `json:"spreadsheetId"`
	GoogleClientID     *string `json:"googleClientId"`
	GoogleClientSecret *string `json:"googleClientSecret"`
}

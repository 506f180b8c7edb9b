package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/orderdesk/internal/config"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
)

func newSettings(repo *memSettingsRepo, cfg *config.Config) *SettingsUseCase {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewSettingsUseCase(cfg, repo, auth.NewSecretBox("test-secret"), testLogger())
}

func TestSettingsDefaultsSeededFromConfig(t *testing.T) {
	uc := newSettings(&memSettingsRepo{}, &config.Config{SpreadsheetID: "sheet-1", GoogleClientID: "cid", GoogleClientSecret: "cs"})
	require.NoError(t, uc.Load(context.Background()))

	got := uc.Get()
	assert.Equal(t, model.DefaultPollingInterval, got.PollingInterval)
	assert.True(t, got.SoundEnabled)
	assert.True(t, got.VibrateEnabled)
	assert.Equal(t, "sheet-1", got.SpreadsheetID)
	assert.Equal(t, "cid", got.GoogleClientID)
	assert.Equal(t, "cs", got.GoogleClientSecret)
}

func TestSettingsLoadMergesOverDefaults(t *testing.T) {
	repo := &memSettingsRepo{blob: []byte(`{"pollingInterval":45,"soundEnabled":false,"theme":"dark"}`)}
	uc := newSettings(repo, &config.Config{GoogleClientSecret: "from-env"})
	require.NoError(t, uc.Load(context.Background()))

	got := uc.Get()
	assert.Equal(t, 45, got.PollingInterval)
	assert.False(t, got.SoundEnabled)
	assert.True(t, got.VibrateEnabled)
	assert.Equal(t, "from-env", got.GoogleClientSecret)
}

func TestSettingsLoadClampsInterval(t *testing.T) {
	for blob, want := range map[string]int{
		`{"pollingInterval":5}`:   model.MinPollingInterval,
		`{"pollingInterval":500}`: model.MaxPollingInterval,
	} {
		uc := newSettings(&memSettingsRepo{blob: []byte(blob)}, nil)
		require.NoError(t, uc.Load(context.Background()))
		assert.Equal(t, want, uc.Get().PollingInterval, blob)
	}
}

func TestSettingsLoadCorruptBlobKeepsDefaults(t *testing.T) {
	uc := newSettings(&memSettingsRepo{blob: []byte(`{not json`)}, nil)
	require.NoError(t, uc.Load(context.Background()))
	assert.Equal(t, model.DefaultSettings(), uc.Get())
}

func TestSettingsLoadRepositoryError(t *testing.T) {
	uc := newSettings(&memSettingsRepo{loadErr: errors.New("disk")}, nil)
	assert.Error(t, uc.Load(context.Background()))
}

func TestSettingsSecretSealedAtRest(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := newSettings(repo, nil)

	secret := "GOCSPX-abc"
	_, err := uc.Update(context.Background(), model.SettingsPatch{GoogleClientSecret: &secret})
	require.NoError(t, err)
	require.NotNil(t, repo.blob)
	assert.False(t, strings.Contains(string(repo.blob), secret))

	reloaded := newSettings(repo, nil)
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Equal(t, secret, reloaded.Get().GoogleClientSecret)
}

func TestSettingsUnopenableSecretDropped(t *testing.T) {
	repo := &memSettingsRepo{blob: []byte(`{"googleClientSecret":"plain-text"}`)}
	uc := newSettings(repo, nil)
	require.NoError(t, uc.Load(context.Background()))
	assert.Empty(t, uc.Get().GoogleClientSecret)
}

func TestSettingsUpdatePersistsImmediately(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := newSettings(repo, nil)

	interval := 300
	sheet := "sheet-9"
	got, err := uc.Update(context.Background(), model.SettingsPatch{PollingInterval: &interval, SpreadsheetID: &sheet})
	require.NoError(t, err)
	assert.Equal(t, model.MaxPollingInterval, got.PollingInterval)
	assert.Equal(t, 1, repo.saves)
	assert.Contains(t, string(repo.blob), `"spreadsheetId":"sheet-9"`)
	assert.Equal(t, 120*time.Second, uc.PollInterval())
}

func TestSettingsUpdateSaveFailureKeepsMemoryValue(t *testing.T) {
	repo := &memSettingsRepo{saveErr: errors.New("readonly")}
	uc := newSettings(repo, nil)

	sound := false
	got, err := uc.Update(context.Background(), model.SettingsPatch{SoundEnabled: &sound})
	assert.Error(t, err)
	assert.False(t, got.SoundEnabled)
	assert.False(t, uc.Get().SoundEnabled)
}

func TestSettingsNotConfigured(t *testing.T) {
	uc := newSettings(&memSettingsRepo{}, nil)

	_, err := uc.SpreadsheetID()
	assert.ErrorIs(t, err, domainErrors.ErrNotConfigured)
	_, _, err = uc.OAuthClient()
	assert.ErrorIs(t, err, domainErrors.ErrNotConfigured)

	sheet, client := "s", "c"
	_, err = uc.Update(context.Background(), model.SettingsPatch{SpreadsheetID: &sheet, GoogleClientID: &client})
	require.NoError(t, err)

	id, err := uc.SpreadsheetID()
	require.NoError(t, err)
	assert.Equal(t, "s", id)
	cid, _, err := uc.OAuthClient()
	require.NoError(t, err)
	assert.Equal(t, "c", cid)
}

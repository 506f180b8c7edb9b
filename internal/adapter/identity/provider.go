package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Scopes requested on every login: profile plus spreadsheet read/write.
var Scopes = []string{
	"openid",
	"email",
	"profile",
	"https://www.googleapis.com/auth/spreadsheets",
}

// Credentials yields the OAuth client currently configured by staff.
type Credentials interface {
	OAuthClient() (clientID, clientSecret string, err error)
}

// Options configures Provider endpoints.
type Options struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
	RedirectURL string
	Timeout     time.Duration
}

// Provider performs the authorization code flow and loads the user profile.
type Provider struct {
	opts       Options
	creds      Credentials
	httpClient *http.Client
	logger     *slog.Logger
}

type userInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// NewProvider creates Provider.
func NewProvider(opts Options, creds Credentials, logger *slog.Logger) *Provider {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Provider{
		opts:       opts,
		creds:      creds,
		logger:     logger,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

func (p *Provider) oauthConfig() (*oauth2.Config, error) {
	clientID, clientSecret, err := p.creds.OAuthClient()
	if err != nil {
		return nil, err
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  p.opts.RedirectURL,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  p.opts.AuthURL,
			TokenURL: p.opts.TokenURL,
		},
	}, nil
}

// AuthCodeURL returns the consent page URL carrying state.
func (p *Provider) AuthCodeURL(state string) (string, error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "consent select_account")), nil
}

// Exchange trades an authorization code for a bearer token.
func (p *Provider) Exchange(ctx context.Context, code string) (string, error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return "", err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			p.logger.Warn("oauth code exchange rejected", slog.String("error_code", re.ErrorCode))
			return "", fmt.Errorf("%w: %s", domainErrors.ErrUnauthorized, re.ErrorCode)
		}
		return "", fmt.Errorf("exchange code: %w", err)
	}
	return token.AccessToken, nil
}

// Profile loads email, name and picture for token.
func (p *Provider) Profile(ctx context.Context, token string) (*model.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.opts.UserInfoURL, nil)
	if err != nil {
		return nil, &domainErrors.ProfileFetchError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &domainErrors.ProfileFetchError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var info userInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, &domainErrors.ProfileFetchError{Err: fmt.Errorf("decode userinfo: %w", err)}
		}
		return &model.Profile{Email: info.Email, Name: info.Name, Picture: info.Picture}, nil
	case http.StatusUnauthorized:
		return nil, domainErrors.ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		p.logger.Error("userinfo request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, &domainErrors.ProfileFetchError{StatusCode: resp.StatusCode}
	}
}

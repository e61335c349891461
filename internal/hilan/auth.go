package hilan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/ronharel02/hilan-attendance/internal/attendance"
	"github.com/ronharel02/hilan-attendance/internal/config"
)

// clientID identifies this tool to the portal's token endpoint. The
// password grant needs no client secret.
const clientID = "hilan-cli"

// tokenFilePath returns the path to the cached token file.
func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hilan-attendance", "tokens.json"), nil
}

func oauth2Config(baseURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  baseURL + "/oauth2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// loadToken reads the token cache. A missing cache is not an error,
// it just means the user has to log in with their credentials.
func loadToken() (*oauth2.Token, error) {
	path, err := tokenFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token cache: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("token cache %s is unreadable, delete it to log in again: %w", path, err)
	}
	return &tok, nil
}

// saveToken replaces the token cache. The swap goes through a temp
// file and rename so an interrupted write cannot leave a torn cache.
func saveToken(tok *oauth2.Token) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating token cache dir: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing token cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing token cache: %w", err)
	}
	return nil
}

// savingTokenSource wraps a TokenSource and persists refreshed tokens.
type savingTokenSource struct {
	ts oauth2.TokenSource
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	// Best-effort save; ignore errors.
	_ = saveToken(tok)
	return tok, nil
}

// Login authenticates against the portal and returns a ready Client. A
// cached token is reused while still usable; otherwise the configured
// credentials are exchanged for a new one, which is then cached.
func Login(ctx context.Context, cfg config.Config) (*Client, error) {
	oc := oauth2Config(cfg.URL)

	tok, err := loadToken()
	if err != nil {
		return nil, &attendance.SessionError{Op: "load cached token", Err: err}
	}
	if tok == nil || (!tok.Valid() && tok.RefreshToken == "") {
		tok, err = oc.PasswordCredentialsToken(ctx, cfg.Username, cfg.Password)
		if err != nil {
			return nil, &attendance.SessionError{Op: "authenticate", Err: err}
		}
		_ = saveToken(tok)
	}

	httpClient := oauth2.NewClient(ctx, &savingTokenSource{ts: oc.TokenSource(ctx, tok)})
	return NewClient(cfg.URL, httpClient), nil
}

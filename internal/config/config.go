// Package config loads the hilan configuration from
// ~/.config/hilan-attendance.json. The file supports single-line //
// comments for documentation purposes.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ronharel02/hilan-attendance/internal/model"
)

// Config is the root configuration for the hilan CLI.
type Config struct {
	// Username and Password authenticate against the portal.
	Username string `json:"username"`
	Password string `json:"password"`
	// URL is the portal base URL, e.g. "https://yourcompany.hilan.co.il".
	URL string `json:"url"`
	// Pattern is the weekly work pattern used to generate expected
	// attendance.
	Pattern PatternConfig `json:"pattern"`
	// PayPeriodStartDay anchors the pay period, e.g. 20 for periods
	// running from the 20th through the 19th.
	PayPeriodStartDay int `json:"pay_period_start_day"`
}

// PatternConfig is the raw on-disk form of the work pattern: times as
// "HH:MM" strings and a weekday-name to work-type mapping. Weekdays left
// out are weekends.
type PatternConfig struct {
	EntryTime string            `json:"entry_time"`
	ExitTime  string            `json:"exit_time"`
	Days      map[string]string `json:"days"`
}

const (
	DefaultEntryTime         = "09:00"
	DefaultExitTime          = "18:00"
	DefaultPayPeriodStartDay = 20
)

// defaultDays is the default work week (Sunday through Thursday, office).
var defaultDays = map[string]string{
	"sunday":    "office",
	"monday":    "office",
	"tuesday":   "office",
	"wednesday": "office",
	"thursday":  "office",
}

// DefaultPath returns the path to ~/.config/hilan-attendance.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hilan-attendance.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the configuration file. An empty path means the default
// location. Zero-value fields are backfilled with built-in defaults so
// callers always get a usable Config even when the file is partial.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, &model.ConfigError{Field: "file", Reason: fmt.Sprintf("not found at %s", path)}
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return Config{}, &model.ConfigError{Field: "file", Reason: fmt.Sprintf("parsing %s: %v", path, err)}
	}

	if cfg.Pattern.EntryTime == "" {
		cfg.Pattern.EntryTime = DefaultEntryTime
	}
	if cfg.Pattern.ExitTime == "" {
		cfg.Pattern.ExitTime = DefaultExitTime
	}
	if cfg.Pattern.Days == nil {
		cfg.Pattern.Days = defaultDays
	}
	if cfg.PayPeriodStartDay == 0 {
		cfg.PayPeriodStartDay = DefaultPayPeriodStartDay
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Username == "":
		return &model.ConfigError{Field: "username", Reason: "required"}
	case c.Password == "":
		return &model.ConfigError{Field: "password", Reason: "required"}
	case c.URL == "":
		return &model.ConfigError{Field: "url", Reason: "required"}
	}
	return nil
}

// WorkPattern converts the raw pattern config into the validated model
// type.
func (c Config) WorkPattern() (model.WorkPattern, error) {
	entry, err := model.ParseTimeOfDay(c.Pattern.EntryTime)
	if err != nil {
		return model.WorkPattern{}, &model.ConfigError{Field: "pattern.entry_time", Reason: err.Error()}
	}
	exit, err := model.ParseTimeOfDay(c.Pattern.ExitTime)
	if err != nil {
		return model.WorkPattern{}, &model.ConfigError{Field: "pattern.exit_time", Reason: err.Error()}
	}

	days := make(map[time.Weekday]model.WorkType, len(c.Pattern.Days))
	for name, typ := range c.Pattern.Days {
		weekday, err := model.ParseWeekday(name)
		if err != nil {
			return model.WorkPattern{}, &model.ConfigError{Field: "pattern.days", Reason: err.Error()}
		}
		workType, err := model.ParseWorkType(typ)
		if err != nil {
			return model.WorkPattern{}, &model.ConfigError{Field: "pattern.days", Reason: err.Error()}
		}
		days[weekday] = workType
	}

	pattern := model.WorkPattern{EntryTime: entry, ExitTime: exit, Days: days}
	if err := pattern.Validate(); err != nil {
		return model.WorkPattern{}, err
	}
	return pattern, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// CheckLevel is the severity knob shared by the optional checks.
type CheckLevel string

const (
	CheckError   CheckLevel = "error"
	CheckWarning CheckLevel = "warning"
	CheckNone    CheckLevel = "none"
)

func (l *CheckLevel) UnmarshalText(text []byte) error {
	switch v := CheckLevel(strings.ToLower(string(text))); v {
	case CheckError, CheckWarning, CheckNone:
		*l = v
		return nil
	default:
		return fmt.Errorf("invalid check level %q (want error, warning or none)", text)
	}
}

// Enabled reports whether the check contributes issues at all.
func (l CheckLevel) Enabled() bool { return l != CheckNone && l != "" }

// MostSevere folds levels with any-error-wins, then any-warning-wins.
func MostSevere(levels ...CheckLevel) CheckLevel {
	out := CheckNone
	for _, l := range levels {
		if l == CheckError {
			return CheckError
		}
		if l == CheckWarning {
			out = CheckWarning
		}
	}
	return out
}

// RefStyle selects which ref kind realizes floating versions.
type RefStyle string

const (
	RefStyleTags     RefStyle = "tags"
	RefStyleBranches RefStyle = "branches"
)

func (s *RefStyle) UnmarshalText(text []byte) error {
	switch v := RefStyle(strings.ToLower(string(text))); v {
	case RefStyleTags, RefStyleBranches:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid floating-versions-use %q (want tags or branches)", text)
	}
}

// Config carries the action inputs plus the ambient GitHub Actions
// environment. Input names follow the INPUT_* convention the runner uses
// to pass `with:` values.
type Config struct {
	Token      string `env:"INPUT_TOKEN"`
	Repository string `env:"GITHUB_REPOSITORY,required"`
	APIBase    string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	ServerBase string `env:"GITHUB_SERVER_URL" envDefault:"https://github.com"`

	CheckMinorVersion        CheckLevel `env:"INPUT_CHECK-MINOR-VERSION" envDefault:"warning"`
	CheckReleases            CheckLevel `env:"INPUT_CHECK-RELEASES" envDefault:"none"`
	CheckReleaseImmutability CheckLevel `env:"INPUT_CHECK-RELEASE-IMMUTABILITY" envDefault:"none"`
	IgnorePreviewReleases    bool       `env:"INPUT_IGNORE-PREVIEW-RELEASES" envDefault:"false"`
	FloatingVersionsUse      RefStyle   `env:"INPUT_FLOATING-VERSIONS-USE" envDefault:"tags"`
	AutoFix                  bool       `env:"INPUT_AUTO-FIX" envDefault:"false"`
	IgnoreVersions           []string   `env:"INPUT_IGNORE-VERSIONS" envSeparator:","`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	for i, v := range cfg.IgnoreVersions {
		cfg.IgnoreVersions[i] = strings.TrimSpace(v)
	}
	if _, _, err := splitRepository(cfg.Repository); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Owner returns the repository owner half of GITHUB_REPOSITORY.
func (c *Config) Owner() string {
	owner, _, _ := splitRepository(c.Repository)
	return owner
}

// Name returns the repository name half of GITHUB_REPOSITORY.
func (c *Config) Name() string {
	_, name, _ := splitRepository(c.Repository)
	return name
}

func splitRepository(full string) (string, string, error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid GITHUB_REPOSITORY %q (want owner/name)", full)
	}
	return owner, name, nil
}

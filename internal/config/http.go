package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	BaseURL   InterpolatedString `yaml:"baseUrl"`
	Session   Session            `yaml:"session"`
	RateLimit RateLimit          `yaml:"rateLimit"`
	Metrics   Metrics            `yaml:"metrics"`
	Debug     Debug              `yaml:"debug"`
}

type Session struct {
	Name   InterpolatedString      `yaml:"name"`
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
}

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

type Metrics struct {
	Enabled InterpolatedBool `yaml:"enabled"`
}

type Debug struct {
	Enabled InterpolatedBool `yaml:"enabled"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${SHOPVIBE_HTTP_ADDRESS:-:8080}",
		BaseURL: "${SHOPVIBE_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Name: "${SHOPVIBE_HTTP_SESSION_NAME:-shopvibe_visitor}",
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   NewInterpolatedDuration(24 * time.Hour),
			},
		},
		RateLimit: RateLimit{
			Rate:  20,
			Burst: 40,
		},
		Metrics: Metrics{
			Enabled: false,
		},
		Debug: Debug{
			Enabled: false,
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":        []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":        []*yaml.Comment{yaml.HeadComment(" Public base URL of the storefront")},
		".session":        []*yaml.Comment{yaml.HeadComment(" Visitor session cookie")},
		".session.keys":   []*yaml.Comment{yaml.HeadComment(" Cookie signing keys, a random key is generated when empty")},
		".rateLimit":      []*yaml.Comment{yaml.HeadComment(" Navbar events rate limit, per visitor")},
		".rateLimit.rate": []*yaml.Comment{yaml.HeadComment(" Sustained events per second")},
		".metrics":        []*yaml.Comment{yaml.HeadComment(" Expose Prometheus metrics on /metrics")},
		".debug":          []*yaml.Comment{yaml.HeadComment(" Expose runtime profiles and expvar on /debug/pprof")},
	}
}

package log

import (
	"log/slog"
	"net/url"
	"strings"
)

var sensitiveParams = []string{"token", "key", "secret", "password", "signature"}

// ScrubbedURL returns an attribute holding rawURL with its password and
// the values of credential-like query parameters masked.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	query := u.Query()
	scrubbed := false

	for param := range query {
		lower := strings.ToLower(param)
		for _, s := range sensitiveParams {
			if strings.Contains(lower, s) {
				query.Set(param, "xxxxx")
				scrubbed = true
				break
			}
		}
	}

	if scrubbed {
		u.RawQuery = query.Encode()
	}

	return slog.String(name, u.Redacted())
}

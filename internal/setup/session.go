package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/shopvibe/internal/config"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keys := make([][]byte, 0, len(conf.HTTP.Session.Keys))
	for _, k := range conf.HTTP.Session.Keys {
		keys = append(keys, []byte(k))
	}

	if len(keys) == 0 {
		slog.WarnContext(ctx, "no session keys configured, generating a random one, sessions will not survive a restart")

		key := securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("could not generate session key")
		}

		keys = append(keys, key)
	}

	store := sessions.NewCookieStore(keys...)

	cookie := conf.HTTP.Session.Cookie

	maxAge := 24 * time.Hour
	if cookie.MaxAge != nil {
		maxAge = time.Duration(*cookie.MaxAge)
	}

	store.Options = &sessions.Options{
		Path:     string(cookie.Path),
		HttpOnly: bool(cookie.HTTPOnly),
		Secure:   bool(cookie.Secure),
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}

	return store, nil
})

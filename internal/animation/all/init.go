package all

import (
	_ "github.com/bornholm/shopvibe/internal/animation/htmx"
	_ "github.com/bornholm/shopvibe/internal/animation/logging"
	_ "github.com/bornholm/shopvibe/internal/animation/noop"
)

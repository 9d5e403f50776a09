package animation

import (
	"encoding/json"
	"time"
)

type Kind string

const (
	KindNavEntrance       Kind = "nav-entrance"
	KindLogoEntrance      Kind = "logo-entrance"
	KindBadgeEntrance     Kind = "badge-entrance"
	KindDropdownEnter     Kind = "dropdown-enter"
	KindDropdownExit      Kind = "dropdown-exit"
	KindDropdownItemEnter Kind = "dropdown-item-enter"
	KindSearchOpen        Kind = "search-open"
	KindSearchClose       Kind = "search-close"
	KindMobilePanelEnter  Kind = "mobile-panel-enter"
	KindMobilePanelExit   Kind = "mobile-panel-exit"
	KindMobileItemEnter   Kind = "mobile-item-enter"
)

// Command asks the playback layer to run one visual transition on the
// element identified by Target, after Delay.
type Command struct {
	Kind   Kind
	Target string
	Delay  time.Duration
}

type jsonCommand struct {
	Kind   Kind    `json:"kind"`
	Target string  `json:"target"`
	Delay  float64 `json:"delay"`
}

// MarshalJSON implements json.Marshaler. Delay is expressed in seconds.
func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCommand{
		Kind:   c.Kind,
		Target: c.Target,
		Delay:  c.Delay.Seconds(),
	})
}

var _ json.Marshaler = Command{}

package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Visitors struct {
	IdleTimeout   *InterpolatedDuration `yaml:"idleTimeout"`
	SweepInterval *InterpolatedDuration `yaml:"sweepInterval"`
}

func NewDefaultVisitorsConfig() Visitors {
	return Visitors{
		IdleTimeout:   NewInterpolatedDuration(30 * time.Minute),
		SweepInterval: NewInterpolatedDuration(time.Minute),
	}
}

func NewVisitorsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":               []*yaml.Comment{yaml.HeadComment(" Visitors tracking")},
		".idleTimeout":   []*yaml.Comment{yaml.HeadComment(" Visitors idle for longer are evicted and their navbar unmounted")},
		".sweepInterval": []*yaml.Comment{yaml.HeadComment(" Idle visitors sweep interval")},
	}
}

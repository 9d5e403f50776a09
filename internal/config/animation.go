package config

import (
	"fmt"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/bornholm/shopvibe/internal/animation/htmx"
	"github.com/goccy/go-yaml"
)

type Animation struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultAnimationConfig() Animation {
	return Animation{
		Type: InterpolatedString(fmt.Sprintf("${SHOPVIBE_ANIMATION_TYPE:-%s}", htmx.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"event": fmt.Sprintf("${SHOPVIBE_ANIMATION_EVENT:-%s}", htmx.DefaultEvent),
			},
		},
	}
}

func NewAnimationConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Animation playback configuration")},
		".type":    []*yaml.Comment{yaml.HeadComment(" Animation driver", fmt.Sprintf(" Available: %v", animation.Registered()))},
		".options": []*yaml.Comment{yaml.HeadComment(" Driver options")},
	}
}

package controller

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outback":    ease.OutBack,
	"outbounce":  ease.OutBounce,
}

// EasingByName looks up a crouch easing curve. Names are case-insensitive and
// an empty name selects linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

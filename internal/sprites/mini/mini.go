// Package mini provides a compact three-line pup theme for narrow terminals.
package mini

import (
	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/sprites"
)

func init() {
	sprites.Register(sprites.NewStatic("mini", "Mini Pup", table))
}

func cels(c core.Color, frames ...[]string) []sprites.Frame {
	out := make([]sprites.Frame, 0, len(frames))
	for _, lines := range frames {
		out = append(out, sprites.Frame{Lines: lines, Color: c})
	}
	return out
}

var table = map[pet.Behavior][]sprites.Frame{
	pet.BehaviorIdle: cels(core.ColorWhite,
		[]string{`n___n`, `(o o)`, ` u-u `},
		[]string{`n___n`, `(- -)`, ` u-u `}),
	pet.BehaviorHappy: cels(core.ColorBrightYellow,
		[]string{`n___n`, `(^w^)`, ` u-u~`},
		[]string{`n___n`, `(^w^)`, `~u-u `}),
	pet.BehaviorEating: cels(core.ColorBrightGreen,
		[]string{`n___n`, `(-o-)`, ` u*u `},
		[]string{`n___n`, `(-w-)`, ` u.u `}),
	pet.BehaviorSleeping: cels(core.ColorBlue,
		[]string{`n___n z`, `(_ _)`, ` u-u `},
		[]string{`n___n zz`, `(_ _)`, ` u-u `}),
	pet.BehaviorHungry: cels(core.ColorOrange,
		[]string{`n___n`, `(o~o)`, ` u-u \_/`},
		[]string{`n___n`, `(0~0)`, ` u-u \_/`}),
	pet.BehaviorSick: cels(core.ColorBrightRed,
		[]string{`n___n`, `(x~x)`, ` u-u '`},
		[]string{`n___n`, `(x_x)`, ` u-u ,`}),
	pet.BehaviorPlaying: cels(core.ColorCyan,
		[]string{`n___n  o`, `(> <)`, ` u-u `},
		[]string{`n___n`, `(< >)`, ` u-u  o`}),
	pet.BehaviorVomiting: cels(core.ColorGreen,
		[]string{`n___n`, `(@_@)`, ` uOu~`},
		[]string{`n___n`, `(@_@)`, ` uOu~~`}),
}

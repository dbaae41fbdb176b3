// Package classic provides the default pup sprite theme: a five-line dog
// with two animation cels per behavior.
package classic

import (
	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/sprites"
)

func init() {
	sprites.Register(sprites.NewStatic("classic", "Classic Pup", table))
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
		[]string{
			`  /)___(\`,
			` ( o   o )`,
			` (   w   )`,
			`  |     |`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\`,
			` ( -   - )`,
			` (   w   )`,
			`  |     |`,
			` (_)---(_)`,
		}),
	pet.BehaviorHappy: cels(core.ColorBrightYellow,
		[]string{
			`  /)___(\`,
			` ( ^   ^ )`,
			` (   U   )`,
			`  |     |~`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\`,
			` ( ^   ^ )`,
			` (   U   )`,
			` ~|     |`,
			` (_)---(_)`,
		}),
	pet.BehaviorEating: cels(core.ColorBrightGreen,
		[]string{
			`  /)___(\`,
			` ( -   - )`,
			` (   O   )`,
			`  | *   |`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\`,
			` ( -   - )`,
			` (   w   )`,
			`  |   . |`,
			` (_)---(_)`,
		}),
	pet.BehaviorSleeping: cels(core.ColorBlue,
		[]string{
			`  /)___(\  z`,
			` ( _   _ )`,
			` (   w   )`,
			`  |     |`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\ zz`,
			` ( _   _ )`,
			` (   w   )`,
			`  |     |`,
			` (_)---(_)`,
		}),
	pet.BehaviorHungry: cels(core.ColorOrange,
		[]string{
			`  /)___(\`,
			` ( o   o )`,
			` (   ~   )`,
			`  |     | \_/`,
			` (_)---(_)`,
		},
		[]string{
			`  (\___/)`,
			` ( 0   0 )`,
			` (   ~   )`,
			`  |     | \_/`,
			` (_)---(_)`,
		}),
	pet.BehaviorSick: cels(core.ColorBrightRed,
		[]string{
			`  /)___(\`,
			` ( x   x )  '`,
			` (   ~   )`,
			`  |     |`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\`,
			` ( x   x )`,
			` (   ~   )  ,`,
			`  |     |`,
			` (_)---(_)`,
		}),
	pet.BehaviorPlaying: cels(core.ColorCyan,
		[]string{
			`  /)___(\   o`,
			` ( >   < )`,
			` (   w   )`,
			`  |     |`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\`,
			` ( <   > )`,
			` (   w   )`,
			`  |     |  o`,
			` (_)---(_)`,
		}),
	pet.BehaviorVomiting: cels(core.ColorGreen,
		[]string{
			`  /)___(\`,
			` ( @   @ )`,
			` (   O   )~`,
			`  |     |`,
			` (_)---(_)`,
		},
		[]string{
			`  /)___(\`,
			` ( @   @ )`,
			` (   O   )~~`,
			`  |     |`,
			` (_)---(_)`,
		}),
}

package engine

import (
	"fmt"
	"strings"

	"github.com/atelierlabs/atelier/internal/state"
)

// The palette minigame: a theme is drawn for the day and the player composes
// a three-color palette. Scoring is deterministic from the picks; the reward
// feeds back through the ordinary stat mutation path.

type paletteTheme struct {
	Name    string
	Palette [3]string
}

var paletteThemes = []paletteTheme{
	{Name: "sunset", Palette: [3]string{"red", "yellow", "purple"}},
	{Name: "dawn forest", Palette: [3]string{"green", "blue", "yellow"}},
	{Name: "city night", Palette: [3]string{"blue", "purple", "red"}},
}

var paletteColors = []string{"red", "blue", "yellow", "green", "purple"}

const palettePicks = 3

// paletteSession is the ephemeral minigame state, separate from the
// persistent economy. Only one session exists at a time.
type paletteSession struct {
	Theme paletteTheme
	Picks []string
}

// paletteRewardTiers maps score thresholds to fixed stat deltas, highest
// first.
var paletteRewardTiers = []struct {
	MinScore    int
	Aesthetics  int
	Inspiration int
	Note        string
}{
	{100, 15, 10, "A flawless composition!"},
	{70, 10, 5, "A lovely palette."},
	{40, 5, 0, "A pleasant study."},
	{0, 2, 0, "An experiment, at least."},
}

func guardMinigame(e *Engine) error {
	if e.state.Flags.MinigamePlayed {
		return reject(KindDailyLimitReached, "Today's creative exercise is already done.")
	}
	if e.game != nil {
		return reject(KindInvalidTarget, "A creative session is already underway.")
	}
	return nil
}

func runStartMinigame(e *Engine, _ map[string]any) (string, error) {
	e.state.Flags.MinigamePlayed = true
	theme := paletteThemes[e.rand.IntN(len(paletteThemes))]
	e.game = &paletteSession{Theme: theme}
	e.state.ScenarioID = sceneMinigame
	return fmt.Sprintf("Compose a palette for today's theme: %s. Choose three colors.", theme.Name), nil
}

func runPickColor(e *Engine, params map[string]any) (string, error) {
	if e.game == nil {
		return "", reject(KindInvalidTarget, "No creative session is underway.")
	}
	color, err := colorFromParams(params)
	if err != nil {
		return "", err
	}

	e.game.Picks = append(e.game.Picks, color)
	if len(e.game.Picks) < palettePicks {
		return fmt.Sprintf("You add %s to the palette. (%d/%d)", color, len(e.game.Picks), palettePicks), nil
	}
	return e.finishPalette(), nil
}

func colorFromParams(params map[string]any) (string, error) {
	raw, ok := params["color"]
	if !ok {
		return "", reject(KindInvalidTarget, "No color was chosen.")
	}
	color, ok := raw.(string)
	if !ok {
		return "", reject(KindInvalidTarget, "No color was chosen.")
	}
	color = strings.ToLower(strings.TrimSpace(color))
	for _, c := range paletteColors {
		if c == color {
			return color, nil
		}
	}
	return "", reject(KindInvalidTarget, "That color is not on your shelf.")
}

func (e *Engine) finishPalette() string {
	score := paletteScore(e.game.Theme, e.game.Picks)
	e.game = nil
	e.state.ScenarioID = sceneIntro

	for _, tier := range paletteRewardTiers {
		if score < tier.MinScore {
			continue
		}
		e.state.AddStat(state.StatAesthetics, tier.Aesthetics)
		if tier.Inspiration > 0 {
			e.state.AddStat(state.StatInspiration, tier.Inspiration)
			return fmt.Sprintf("%s (+%d aesthetics, +%d inspiration)", tier.Note, tier.Aesthetics, tier.Inspiration)
		}
		return fmt.Sprintf("%s (+%d aesthetics)", tier.Note, tier.Aesthetics)
	}
	return ""
}

// paletteScore maps distinct theme matches to a score: 3 → 100, 2 → 70,
// 1 → 40, 0 → 10.
func paletteScore(theme paletteTheme, picks []string) int {
	matched := map[string]bool{}
	for _, p := range picks {
		for _, c := range theme.Palette {
			if p == c {
				matched[p] = true
			}
		}
	}
	switch len(matched) {
	case 3:
		return 100
	case 2:
		return 70
	case 1:
		return 40
	default:
		return 10
	}
}

package feedback

import (
	"fmt"

	"github.com/abhisek/pathwise/internal/catalog"
)

// EthicsBand labels a scenario option's ethics score for display.
type EthicsBand string

const (
	EthicsPoor EthicsBand = "poor" // score < 4
	EthicsFair EthicsBand = "fair" // 4-7
	EthicsGood EthicsBand = "good" // score > 7
)

// DisplayName returns a human-readable name for an ethics band.
func (b EthicsBand) DisplayName() string {
	switch b {
	case EthicsPoor:
		return "Poor"
	case EthicsFair:
		return "Fair"
	case EthicsGood:
		return "Good"
	default:
		return string(b)
	}
}

// BandForScore maps an ethics score onto its display band.
func BandForScore(score int) EthicsBand {
	switch {
	case score < 4:
		return EthicsPoor
	case score > 7:
		return EthicsGood
	default:
		return EthicsFair
	}
}

// ScenarioOutcome is the result of choosing one option in a scenario.
type ScenarioOutcome struct {
	Option catalog.ScenarioOption
	Score  int
	Band   EthicsBand
}

// ScoreScenario looks up the outcome of a chosen scenario option. Pure
// and stateless: nothing is recorded.
func ScoreScenario(sc catalog.Scenario, chosen int) (ScenarioOutcome, error) {
	if chosen < 0 || chosen >= len(sc.Options) {
		return ScenarioOutcome{}, fmt.Errorf("scenario %q: chose option %d of %d: %w", sc.ID, chosen, len(sc.Options), ErrInvalidOption)
	}
	opt := sc.Options[chosen]
	return ScenarioOutcome{
		Option: opt,
		Score:  opt.EthicsScore,
		Band:   BandForScore(opt.EthicsScore),
	}, nil
}

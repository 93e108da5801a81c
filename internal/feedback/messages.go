package feedback

// Class identifies one of the six fixed feedback messages, keyed by
// correctness and tier.
type Class string

const (
	ClassStrugglingCorrect    Class = "struggling-correct"
	ClassStrugglingIncorrect  Class = "struggling-incorrect"
	ClassProgressingCorrect   Class = "progressing-correct"
	ClassProgressingIncorrect Class = "progressing-incorrect"
	ClassProficientCorrect    Class = "proficient-correct"
	ClassProficientIncorrect  Class = "proficient-incorrect"
)

// ClassFor selects the message class for a correctness/tier pair.
func ClassFor(correct bool, tier Tier) Class {
	switch tier {
	case TierStruggling:
		if correct {
			return ClassStrugglingCorrect
		}
		return ClassStrugglingIncorrect
	case TierProficient:
		if correct {
			return ClassProficientCorrect
		}
		return ClassProficientIncorrect
	default:
		if correct {
			return ClassProgressingCorrect
		}
		return ClassProgressingIncorrect
	}
}

// Message returns the fixed feedback text for a class.
func (c Class) Message() string {
	switch c {
	case ClassStrugglingCorrect:
		return "Nice work — that one landed. Keep building on the basics."
	case ClassStrugglingIncorrect:
		return "Not quite. Consider reviewing the foundational concepts before moving forward."
	case ClassProgressingCorrect:
		return "Good progress! Keep practicing to strengthen your understanding."
	case ClassProgressingIncorrect:
		return "Close — read the explanation carefully and try the next one."
	case ClassProficientCorrect:
		return "Excellent work! You're mastering these concepts."
	case ClassProficientIncorrect:
		return "A rare miss. Check the explanation; you clearly know this material."
	default:
		return ""
	}
}

// Suggestions returns the study suggestions attached to a class.
func (c Class) Suggestions() []string {
	switch c {
	case ClassStrugglingCorrect:
		return []string{
			"Repeat the exercises in this module",
			"Take your time with each question",
		}
	case ClassStrugglingIncorrect:
		return []string{
			"Reread the module content",
			"Revisit the prerequisite modules",
			"Try the exercises again before the quiz",
		}
	case ClassProgressingCorrect:
		return []string{
			"Keep a steady practice rhythm",
			"Try a module from a category you haven't touched",
		}
	case ClassProgressingIncorrect:
		return []string{
			"Review the explanation for this question",
			"Redo the exercise blocks in this module",
		}
	case ClassProficientCorrect:
		return []string{
			"Try more advanced modules",
			"Explore real-world applications",
			"Help a classmate who is stuck",
		}
	case ClassProficientIncorrect:
		return []string{
			"Check the explanation for the detail you skipped",
		}
	default:
		return nil
	}
}

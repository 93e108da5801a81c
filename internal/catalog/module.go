package catalog

// Category represents a content category.
type Category string

const (
	CategoryAIBasics         Category = "ai-basics"
	CategoryApplications     Category = "applications"
	CategoryEthicsBias       Category = "ethics-bias"
	CategoryCriticalThinking Category = "critical-thinking"
	CategoryPracticalSkills  Category = "practical-skills"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAIBasics,
		CategoryApplications,
		CategoryEthicsBias,
		CategoryCriticalThinking,
		CategoryPracticalSkills,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryAIBasics:
		return "AI Basics"
	case CategoryApplications:
		return "AI Applications"
	case CategoryEthicsBias:
		return "Ethics & Bias"
	case CategoryCriticalThinking:
		return "Critical Thinking"
	case CategoryPracticalSkills:
		return "Practical Skills"
	default:
		return string(c)
	}
}

// KnownCategory reports whether c is one of the defined categories.
func KnownCategory(c Category) bool {
	for _, k := range AllCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// Difficulty represents an ordered difficulty band.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

// AllDifficulties returns the difficulty bands in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// String returns the wire form of a difficulty band.
func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for a difficulty band.
func (d Difficulty) DisplayName() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts a wire string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "beginner":
		return Beginner, true
	case "intermediate":
		return Intermediate, true
	case "advanced":
		return Advanced, true
	default:
		return Beginner, false
	}
}

// BlockKind identifies the shape of a content block. The set is closed:
// consumers switch over it exhaustively.
type BlockKind string

const (
	BlockText      BlockKind = "text"
	BlockExercise  BlockKind = "exercise"
	BlockVideo     BlockKind = "video"
	BlockCaseStudy BlockKind = "case-study"
)

// AllBlockKinds returns the block kinds in display order.
func AllBlockKinds() []BlockKind {
	return []BlockKind{BlockText, BlockExercise, BlockVideo, BlockCaseStudy}
}

// KnownBlockKind reports whether k is one of the defined block kinds.
func KnownBlockKind(k BlockKind) bool {
	switch k {
	case BlockText, BlockExercise, BlockVideo, BlockCaseStudy:
		return true
	default:
		return false
	}
}

// Icon returns a single-character icon for a block kind.
func (k BlockKind) Icon() string {
	switch k {
	case BlockText:
		return "¶"
	case BlockExercise:
		return "✎"
	case BlockVideo:
		return "▶"
	case BlockCaseStudy:
		return "§"
	default:
		return "?"
	}
}

// ContentBlock is one ordered unit of module content.
type ContentBlock struct {
	Kind  BlockKind `json:"kind"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

// Question is a single multiple-choice assessment question.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"` // index into Options
	Explanation string   `json:"explanation"`
}

// Module is a unit of learning content: ordered blocks, an assessment,
// and prerequisite edges into the rest of the catalog.
type Module struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Category      Category       `json:"category"`
	Difficulty    Difficulty     `json:"difficulty"`
	Prerequisites []string       `json:"prerequisites,omitempty"`
	Blocks        []ContentBlock `json:"blocks,omitempty"`
	Questions     []Question     `json:"questions,omitempty"`
	EstimatedMins int            `json:"estimated_mins,omitempty"`
}

// ScenarioOption is one choice in a decision scenario.
type ScenarioOption struct {
	Text        string `json:"text"`
	Consequence string `json:"consequence"`
	EthicsScore int    `json:"ethics_score"` // 0-10
}

// Scenario is a decision exercise: a situation with options of varying
// ethical quality. Scoring is stateless; see the feedback package.
type Scenario struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Context        string           `json:"context"`
	Challenge      string           `json:"challenge"`
	Options        []ScenarioOption `json:"options"`
	Considerations []string         `json:"considerations,omitempty"`
	Objectives     []string         `json:"objectives,omitempty"`
}

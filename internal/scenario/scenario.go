package scenario

// StartKey is the node key every scenario graph begins at.
const StartKey = "start"

// Difficulty represents an authored difficulty rating.
type Difficulty string

const (
	DifficultyIntro    Difficulty = "intro"
	DifficultyStandard Difficulty = "standard"
	DifficultyComplex  Difficulty = "complex"
)

// DifficultyDisplayName returns a human-readable name for a difficulty.
func DifficultyDisplayName(d Difficulty) string {
	switch d {
	case DifficultyIntro:
		return "Introductory"
	case DifficultyStandard:
		return "Standard"
	case DifficultyComplex:
		return "Complex"
	default:
		return string(d)
	}
}

// Classification is the three-way rating of a choice. The authored data
// carries two booleans; the pair (true, true) is rejected at load time so
// exactly one classification holds for every choice.
type Classification string

const (
	BestPractice     Classification = "best-practice"
	ValidAlternative Classification = "valid-alternative"
	Suboptimal       Classification = "suboptimal"
)

// Classify maps the two authored flags to a Classification.
func Classify(isBestPractice, isValidAlternative bool) Classification {
	switch {
	case isBestPractice:
		return BestPractice
	case isValidAlternative:
		return ValidAlternative
	default:
		return Suboptimal
	}
}

// Label returns the display label for a classification.
func (c Classification) Label() string {
	switch c {
	case BestPractice:
		return "Best Practice"
	case ValidAlternative:
		return "Valid Alternative"
	case Suboptimal:
		return "Suboptimal"
	default:
		return string(c)
	}
}

// Scenario is one authored branching scenario. Immutable after loading.
type Scenario struct {
	ID            int
	Title         string
	Category      string
	Difficulty    Difficulty
	EstimatedMins int
	Nodes         []Node
}

// Node is a narrative state in a scenario graph. The meter impacts apply on
// *arrival* at the node, not on the choice that led there: two choices
// pointing at the same node carry the same delta.
type Node struct {
	ScenarioID         int
	Key                string
	Content            string
	Question           string
	IsEnding           bool
	ClientStatusImpact int
	WellbeingImpact    int
	Choices            []Choice
}

// Choice is a labeled edge from its parent node to NextNodeKey in the same
// scenario.
type Choice struct {
	ID                 int
	ScenarioID         int
	NodeKey            string
	Label              string
	NextNodeKey        string
	IsBestPractice     bool
	IsValidAlternative bool
	Feedback           string
}

// Classification returns the three-way rating of the choice.
func (c Choice) Classification() Classification {
	return Classify(c.IsBestPractice, c.IsValidAlternative)
}

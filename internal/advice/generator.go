package advice

import (
	"sync"
)

// defaultMaxRecommendations caps the advisory list.
const defaultMaxRecommendations = 6

// Generator evaluates recommendation rules in priority order and returns the
// advisories of the rules that fired, truncated to the configured cap.
type Generator struct {
	rules []Rule
	max   int
	mu    sync.RWMutex
}

// GeneratorConfig contains configuration for the recommendation generator
type GeneratorConfig struct {
	MaxRecommendations int
}

// NewGenerator creates a generator with the default rule set in priority
// order: symptoms, BMI, hydration, exercise, mood, sleep.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.MaxRecommendations == 0 {
		config.MaxRecommendations = defaultMaxRecommendations
	}
	return &Generator{
		rules: []Rule{
			symptomRule{},
			bmiRule{},
			hydrationRule{},
			exerciseRule{},
			moodRule{},
			sleepRule{},
		},
		max: config.MaxRecommendations,
	}
}

// Register appends a rule after the default set.
func (g *Generator) Register(rule Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, rule)
}

// Generate evaluates every rule against the input and returns the fired
// advisories in rule order, capped at the maximum.
func (g *Generator) Generate(input Input) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for _, rule := range g.rules {
		msg, fired := rule.Evaluate(input)
		if !fired {
			continue
		}
		out = append(out, msg)
		if len(out) == g.max {
			break
		}
	}
	return out
}

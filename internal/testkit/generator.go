package testkit

import (
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GeneratorConfig configures the synthetic classifier data generator
type GeneratorConfig struct {
	ExamplesPerGroup int      `json:"examples_per_group"`
	Groups           []string `json:"groups"`
	PositiveRate     float64  `json:"positive_rate"`
	// Separation shifts positive-class score means above negative-class
	// means; larger values make the synthetic classifier stronger.
	Separation float64 `json:"separation"`
	// GroupBias shifts each successive group's scores upward, so the
	// generated data carries a detectable between-group disparity.
	GroupBias float64 `json:"group_bias"`
	Seed      int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for fairness test data
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ExamplesPerGroup: 200,
		Groups:           []string{"a", "b"},
		PositiveRate:     0.5,
		Separation:       1.5,
		GroupBias:        0.3,
		Seed:             42,
	}
}

// ClassifierDataGenerator produces aligned score, label, and group
// attribute slices with known per-group structure
type ClassifierDataGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewClassifierDataGenerator creates a new generator
func NewClassifierDataGenerator(config GeneratorConfig) *ClassifierDataGenerator {
	return &ClassifierDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns positionally aligned scores, binary labels, and
// group attribute values. Every group receives both positive and
// negative examples so per-group ROC curves are well defined.
func (g *ClassifierDataGenerator) Generate() (scores, labels []float64, attr []string) {
	n := g.config.ExamplesPerGroup * len(g.config.Groups)
	scores = make([]float64, 0, n)
	labels = make([]float64, 0, n)
	attr = make([]string, 0, n)

	for gi, group := range g.config.Groups {
		bias := g.config.GroupBias * float64(gi)
		negative := distuv.Normal{Mu: bias, Sigma: 1, Src: exprand.NewSource(uint64(g.rng.Int63()))}
		positive := distuv.Normal{Mu: bias + g.config.Separation, Sigma: 1, Src: exprand.NewSource(uint64(g.rng.Int63()))}

		for i := 0; i < g.config.ExamplesPerGroup; i++ {
			// Alternate the first two examples so no group degenerates
			// to a single class, regardless of the positive rate.
			var isPositive bool
			switch i {
			case 0:
				isPositive = false
			case 1:
				isPositive = true
			default:
				isPositive = g.rng.Float64() < g.config.PositiveRate
			}

			if isPositive {
				labels = append(labels, 1)
				scores = append(scores, positive.Rand())
			} else {
				labels = append(labels, 0)
				scores = append(scores, negative.Rand())
			}
			attr = append(attr, group)
		}
	}
	return scores, labels, attr
}

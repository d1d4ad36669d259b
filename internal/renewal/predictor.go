package renewal

// Predictor scores the likelihood that a policyholder renews, from premium,
// claim count and late payment count. Implementations are opaque to the
// rest of the system.
type Predictor interface {
	Predict(premium float64, claimCount, latePaymentCount int) float64
}

// DefaultProbability is the constant returned while no trained model is
// deployed.
const DefaultProbability = 0.78

// StaticPredictor returns a fixed probability regardless of input. It stands
// in for a trained model until one is wired in.
type StaticPredictor struct {
	Probability float64
}

// Predict returns the configured probability.
func (p StaticPredictor) Predict(premium float64, claimCount, latePaymentCount int) float64 {
	return p.Probability
}

// NewStaticPredictor creates the default stub predictor.
func NewStaticPredictor() StaticPredictor {
	return StaticPredictor{Probability: DefaultProbability}
}

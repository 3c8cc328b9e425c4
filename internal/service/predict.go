package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"regexp"
	"strconv"

	"github.com/orderly-eats/gateway/internal/upstream"
)

// ErrPredictionUnavailable is the one user-visible error in the system: the
// upstream model is unreachable and the inputs cannot feed the local
// heuristic either.
var ErrPredictionUnavailable = errors.New("unable to connect to prediction service")

// FallbackNote marks predictions produced by the local heuristic.
const FallbackNote = "Prediction service unavailable - using fallback logic"

var nonDigits = regexp.MustCompile(`\D`)

// PredictClient is the slice of the upstream API the prediction flow needs.
type PredictClient interface {
	Predict(ctx context.Context, req upstream.PredictRequest) (*upstream.Prediction, error)
}

// PredictService proxies predictions and degrades to a local heuristic when
// the model is unreachable.
type PredictService struct {
	client PredictClient

	// confidence generates the pseudo-confidence for heuristic predictions;
	// swappable for deterministic tests.
	confidence func() float64
}

// NewPredictService creates a new PredictService instance.
func NewPredictService(client PredictClient) *PredictService {
	return &PredictService{
		client: client,
		confidence: func() float64 {
			c := 0.6 + rand.Float64()*0.3
			if c > 0.95 {
				c = 0.95
			}
			return c
		},
	}
}

// Predict submits the order profile to the model, falling back to the local
// heuristic on failure.
func (s *PredictService) Predict(ctx context.Context, req upstream.PredictRequest) (*upstream.Prediction, error) {
	pred, err := s.client.Predict(ctx, req)
	if err == nil {
		return pred, nil
	}
	log.Printf("[predict] upstream prediction failed, using fallback heuristic: %v", err)

	fallback, ferr := s.fallback(req)
	if ferr != nil {
		return nil, ErrPredictionUnavailable
	}
	return fallback, nil
}

// fallback scores the order profile with fixed thresholds: short kitchen
// prep, short rider wait and short distance each earn their full weight.
func (s *PredictService) fallback(req upstream.PredictRequest) (*upstream.Prediction, error) {
	kpt, err := strconv.Atoi(req.KPTDuration)
	if err != nil {
		return nil, err
	}
	wait, err := strconv.Atoi(req.RiderWaitTime)
	if err != nil {
		return nil, err
	}
	distance := parseDistance(req.Distance)

	score := 0.1
	if kpt <= 15 {
		score = 0.4
	}
	if wait <= 5 {
		score += 0.3
	} else {
		score += 0.1
	}
	if distance <= 3 {
		score += 0.3
	} else {
		score += 0.1
	}

	performance := "Poor"
	label := 0
	if score >= 0.6 {
		performance = "Good"
		label = 1
	}

	confidence := s.confidence()
	probabilityGood := confidence
	if label == 0 {
		probabilityGood = 1 - confidence
	}

	return &upstream.Prediction{
		PredictedLabel:  label,
		Performance:     performance,
		Confidence:      confidence,
		ProbabilityGood: probabilityGood,
		Note:            FallbackNote,
	}, nil
}

// parseDistance strips units from strings like "2km" or "<1km"; an entirely
// non-numeric value counts as 1.
func parseDistance(raw string) int {
	digits := nonDigits.ReplaceAllString(raw, "")
	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 {
		return 1
	}
	return n
}

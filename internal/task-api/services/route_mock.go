package services

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	optimizationAlgorithm = "greedy_nearest_neighbor"

	minTotalDistance = 10.5
	maxTotalDistance = 150.8
	minFuelSaved     = 2.1
	maxFuelSaved     = 8.5
)

// OptimizationDetails holds the illustrative savings figures of the mock result.
type OptimizationDetails struct {
	Algorithm string `json:"algorithm"`
	TimeSaved string `json:"time_saved"`
	FuelSaved string `json:"fuel_saved"`
}

// RouteOptimizationResult is the canned result block attached to
// optimize_route tasks at read time.
type RouteOptimizationResult struct {
	TotalDistance       float64             `json:"total_distance"`
	SuggestedOrder      []int               `json:"suggested_order"`
	Timestamp           string              `json:"timestamp"`
	OptimizationDetails OptimizationDetails `json:"optimization_details"`
}

// BuildRouteOptimizationResult produces the mock optimization block. It is a
// placeholder for a future real algorithm: only the length of
// payload.locations influences the suggested order, nothing else is derived
// from the payload contents.
func BuildRouteOptimizationResult(payloadJSON string) RouteOptimizationResult {
	var payload struct {
		Locations []json.RawMessage `json:"locations"`
	}
	numLocations := 0
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err == nil {
		numLocations = len(payload.Locations)
	}
	if numLocations == 0 {
		numLocations = 3 + rand.Intn(6)
	}

	order := make([]int, numLocations)
	for i := range order {
		order[i] = i + 1
	}

	return RouteOptimizationResult{
		TotalDistance:  roundTo(minTotalDistance+rand.Float64()*(maxTotalDistance-minTotalDistance), 2),
		SuggestedOrder: order,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		OptimizationDetails: OptimizationDetails{
			Algorithm: optimizationAlgorithm,
			TimeSaved: fmt.Sprintf("%d minutes", 5+rand.Intn(41)),
			FuelSaved: fmt.Sprintf("%.1f liters", roundTo(minFuelSaved+rand.Float64()*(maxFuelSaved-minFuelSaved), 1)),
		},
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

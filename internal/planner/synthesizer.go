// Package planner synthesizes mock route options for a travel query.
// There is no real routing behind it: every draw comes from a generator
// seeded from the query string, so the same query always produces the
// same option list within a process.
package planner

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"tripmind/internal/models"
)

var providersByMode = map[models.TransportMode][]string{
	models.ModeCab:    {"Uber", "Ola"},
	models.ModeMetro:  {"DMRC"},
	models.ModeBus:    {"DTC"},
	models.ModeTrain:  {"IRCTC"},
	models.ModeAuto:   {"Rapido"},
	models.ModeFlight: {"IndiGo", "Air India"},
}

// candidateModes is the fixed draw order. auto and flight stay in the
// provider table but are not part of the randomized loop.
var candidateModes = []models.TransportMode{
	models.ModeCab,
	models.ModeMetro,
	models.ModeBus,
	models.ModeTrain,
}

const (
	minPrice = 120.0
	maxPrice = 900.0

	minDurationMinutes = 20
	maxDurationMinutes = 120

	comboProvider           = "DMRC+Uber"
	comboMinPrice           = 150.0
	comboMaxPrice           = 450.0
	comboMinDurationMinutes = 35
	comboMaxDurationMinutes = 95

	etaLayout = "03:04 PM"
)

// SeedFunc maps a query string to a generator seed.
type SeedFunc func(query string) int64

// HashSeed is the default SeedFunc, FNV-1a over the raw query bytes.
func HashSeed(query string) int64 {
	h := fnv.New64a()
	h.Write([]byte(query))
	return int64(h.Sum64())
}

// Synthesizer produces deterministic route options. The zero value is
// not usable; construct with New.
type Synthesizer struct {
	now  func() time.Time
	seed SeedFunc
}

type Option func(*Synthesizer)

// WithClock overrides the wall clock used for ETA computation.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		s.now = now
	}
}

// WithSeed overrides the query-to-seed mapping.
func WithSeed(seed SeedFunc) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		now:  time.Now,
		seed: HashSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns exactly five options for the query: one per mode in
// candidateModes order, then one combined metro+cab option. The generator
// is re-seeded from the query on every call, so identical queries yield
// identical option lists. ETAs are relative to the current wall clock.
func (s *Synthesizer) Synthesize(query string) []models.RouteOption {
	rng := rand.New(rand.NewSource(s.seed(query)))
	now := s.now()

	options := make([]models.RouteOption, 0, len(candidateModes)+1)
	for _, mode := range candidateModes {
		providers := providersByMode[mode]
		provider := providers[rng.Intn(len(providers))]
		price := roundPrice(minPrice + rng.Float64()*(maxPrice-minPrice))
		duration := minDurationMinutes + rng.Intn(maxDurationMinutes-minDurationMinutes+1)

		options = append(options, models.RouteOption{
			Mode:            mode,
			Provider:        provider,
			Price:           price,
			Currency:        models.DefaultCurrency,
			DurationMinutes: duration,
			ETA:             formatETA(now, duration),
		})
	}

	// Combined last-mile option. Its ETA comes from a separate draw, not
	// from its own duration_minutes; released behavior, kept as-is.
	price := roundPrice(comboMinPrice + rng.Float64()*(comboMaxPrice-comboMinPrice))
	duration := drawComboDuration(rng)
	etaDuration := drawComboDuration(rng)

	options = append(options, models.RouteOption{
		Mode:            models.ModeMetro,
		Provider:        comboProvider,
		Price:           price,
		Currency:        models.DefaultCurrency,
		DurationMinutes: duration,
		ETA:             formatETA(now, etaDuration),
		Legs: []models.TripLeg{
			{"mode": "metro", "line": "Blue Line", "duration": 30},
			{"mode": "cab", "provider": "Uber", "duration": 12},
		},
	})

	return options
}

func drawComboDuration(rng *rand.Rand) int {
	return comboMinDurationMinutes + rng.Intn(comboMaxDurationMinutes-comboMinDurationMinutes+1)
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatETA(now time.Time, minutes int) string {
	return now.Add(time.Duration(minutes) * time.Minute).Format(etaLayout)
}

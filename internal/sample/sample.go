// Package sample wraps a seeded random source with the statistical helpers
// the generators share: weighted draws, clamped log-normal cycle times,
// business-hour timestamps and weekend-safe dates. Every generator threads a
// single *Source through its calls, so one seed reproduces one dataset.
package sample

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source is a deterministic random source for data generation.
type Source struct {
	rng *rand.Rand
}

func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// UUID returns a v4 UUID drawn from the seeded source, so id sequences are
// reproducible across runs with the same seed.
func (s *Source) UUID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// math/rand readers never fail; keep uuid's error contract visible.
		panic(err)
	}
	return id.String()
}

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween returns a uniform integer in [min, max], both inclusive.
func (s *Source) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Gauss returns a normal sample with the given mean and standard deviation.
func (s *Source) Gauss(mean, stddev float64) float64 {
	return mean + s.rng.NormFloat64()*stddev
}

// LogNormal returns exp(N(mu, sigma)) clamped to [min, max].
func (s *Source) LogNormal(mu, sigma, min, max float64) float64 {
	v := math.Exp(mu + s.rng.NormFloat64()*sigma)
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// TimeBetween returns a uniform instant in [start, end].
func (s *Source) TimeBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(s.rng.Int63n(int64(span) + 1)))
}

// DaysAgo returns base shifted back by a uniform number of days in [min, max].
func (s *Source) DaysAgo(base time.Time, min, max int) time.Time {
	return base.AddDate(0, 0, -s.IntBetween(min, max))
}

// BusinessHours places t at a random time of day within working hours
// (08:00-18:59).
func (s *Source) BusinessHours(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		s.IntBetween(8, 18), s.IntBetween(0, 59), 0, 0, t.Location())
}

// Choice returns a uniform element of items. Items must be non-empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// Weighted returns an element of items selected proportionally to weights.
// Weights need not sum to 1; they are treated as relative masses.
// len(weights) must equal len(items) and total weight must be > 0.
func Weighted[T any](s *Source, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := s.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// WithoutReplacement returns n distinct elements of items in random order.
// If n exceeds len(items), all items are returned.
func WithoutReplacement[T any](s *Source, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	picked := make([]T, len(items))
	copy(picked, items)
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}

// Date truncates t to midnight UTC, the representation used for civil dates.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AvoidWeekend shifts Saturday and Sunday dates to the following Monday.
func AvoidWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

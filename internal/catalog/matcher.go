package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/threadtone/threadtone/internal/colour"
)

// FindColor scans catalogs in set order and returns the first thread whose
// RGB triple exactly equals the query. The boolean reports whether an exact
// match exists; every catalog is scanned in full before concluding it does
// not.
func (s *Set) FindColor(rgb colour.RGB) (ThreadColor, bool, error) {
	if s.Empty() {
		return ThreadColor{}, false, ErrEmptySet
	}
	for _, t := range s.flat {
		if t.RGB == rgb {
			return t, true, nil
		}
	}
	return ThreadColor{}, false, nil
}

// FindNearestColor returns the thread minimising weighted-RGB distance to
// the query across every catalog. Ties resolve to the earliest-scanned
// entry.
func (s *Set) FindNearestColor(rgb colour.RGB) (Match, error) {
	return s.bestMatch(rgb, colour.AlgorithmWeightedRGB)
}

// FindKNearestColors returns the k nearest threads by weighted-RGB
// distance, sorted ascending. Returns min(k, total entries) matches.
func (s *Set) FindKNearestColors(rgb colour.RGB, k int) ([]Match, error) {
	return s.FindTopMatches(rgb, k, colour.AlgorithmWeightedRGB)
}

// FindTopMatches returns the k nearest threads under the given distance
// algorithm, sorted ascending by distance. Errors if k is not positive or
// the set is empty.
func (s *Set) FindTopMatches(rgb colour.RGB, k int, algorithm colour.DistanceAlgorithm) ([]Match, error) {
	if s.Empty() {
		return nil, ErrEmptySet
	}
	if k <= 0 {
		return nil, fmt.Errorf("match count must be positive, got %d", k)
	}

	matches := make([]Match, len(s.flat))
	maxDist := algorithm.MaxDistance()
	for i, t := range s.flat {
		d := algorithm.RGBDistance(rgb, t.RGB)
		matches[i] = Match{
			Thread:     t,
			Distance:   d,
			Similarity: colour.SimilarityPercent(d, maxDist),
		}
	}

	// Stable sort keeps scan order for equidistant threads.
	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})

	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k], nil
}

// FindOptimalMatch tries an exact match first, then falls back to the
// global best under the given distance algorithm, with the similarity
// percentage scaled to that algorithm's practical bound.
func (s *Set) FindOptimalMatch(rgb colour.RGB, algorithm colour.DistanceAlgorithm) (Match, error) {
	exact, ok, err := s.FindColor(rgb)
	if err != nil {
		return Match{}, err
	}
	if ok {
		return Match{Thread: exact, Distance: 0, Similarity: 100}, nil
	}
	return s.bestMatch(rgb, algorithm)
}

// BatchColorMatch applies FindOptimalMatch independently to each colour.
// Duplicate colours collapse to a single map entry. Every colour costs a
// full catalog traversal, so the context is checked once per colour.
func (s *Set) BatchColorMatch(ctx context.Context, colors []colour.RGB, algorithm colour.DistanceAlgorithm) (map[colour.RGB]Match, error) {
	if s.Empty() {
		return nil, ErrEmptySet
	}

	out := make(map[colour.RGB]Match, len(colors))
	for _, c := range colors {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("matching interrupted: %w", err)
		}
		if _, done := out[c]; done {
			continue
		}
		m, err := s.FindOptimalMatch(c, algorithm)
		if err != nil {
			return nil, err
		}
		out[c] = m
	}
	return out, nil
}

// FindByCodeAndCatalog looks up a thread by manufacturer code within a
// named catalog. An unknown catalog or code degrades to the Unknown
// sentinel rather than failing, which keeps downstream consumers total.
func (s *Set) FindByCodeAndCatalog(code, catalogName string) ThreadColor {
	for _, c := range s.catalogs {
		if c.Name != catalogName {
			continue
		}
		for _, t := range c.Threads {
			if t.Code == code {
				return t
			}
		}
	}
	return Unknown()
}

// bestMatch returns the global minimum-distance thread under the given
// algorithm. The strict < comparison resolves ties to the earliest-scanned
// entry.
func (s *Set) bestMatch(rgb colour.RGB, algorithm colour.DistanceAlgorithm) (Match, error) {
	if s.Empty() {
		return Match{}, ErrEmptySet
	}

	best := 0
	bestDist := algorithm.RGBDistance(rgb, s.flat[0].RGB)
	for i := 1; i < len(s.flat); i++ {
		if d := algorithm.RGBDistance(rgb, s.flat[i].RGB); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return Match{
		Thread:     s.flat[best],
		Distance:   bestDist,
		Similarity: colour.SimilarityPercent(bestDist, algorithm.MaxDistance()),
	}, nil
}

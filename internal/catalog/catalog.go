// Package catalog holds embroidery thread manufacturer catalogs and the
// colour-matching operations over them.
package catalog

import (
	"errors"
	"sync"

	"github.com/threadtone/threadtone/internal/colour"
)

// ErrEmptySet is returned by every catalog-scanning operation when the
// catalog set contains no catalogs.
var ErrEmptySet = errors.New("Thread catalogs cannot be empty")

// ThreadColor is one manufacturer catalog entry. Code is unique within a
// catalog; RGB values are not guaranteed unique within or across catalogs.
type ThreadColor struct {
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	Catalog string     `json:"catalog"`
	RGB     colour.RGB `json:"rgb"`
}

// Match is a thread returned by a search, annotated with the raw distance
// and the similarity percentage under the metric that produced it.
type Match struct {
	Thread     ThreadColor `json:"thread"`
	Distance   float64     `json:"distance"`
	Similarity float64     `json:"similarity"`
}

// Catalog is one manufacturer/series: an ordered list of thread colours.
type Catalog struct {
	Name    string        `json:"name"`
	Threads []ThreadColor `json:"threads"`
}

// NewCatalog builds a catalog, stamping every thread with the catalog name.
func NewCatalog(name string, threads []ThreadColor) Catalog {
	stamped := make([]ThreadColor, len(threads))
	for i, t := range threads {
		t.Catalog = name
		stamped[i] = t
	}
	return Catalog{Name: name, Threads: stamped}
}

// Set is an ordered collection of named catalogs plus a flattened view used
// for cross-catalog search. Read-only after construction; safe for
// concurrent readers.
type Set struct {
	catalogs []Catalog
	flat     []ThreadColor
}

// NewSet builds a set from catalogs in the given order. Scan order across
// all operations follows this order, which makes tie-breaking stable.
func NewSet(catalogs ...Catalog) *Set {
	s := &Set{catalogs: catalogs}
	for _, c := range catalogs {
		s.flat = append(s.flat, c.Threads...)
	}
	return s
}

// Catalogs returns the catalogs in scan order.
func (s *Set) Catalogs() []Catalog {
	return s.catalogs
}

// Len returns the total number of thread entries across all catalogs.
func (s *Set) Len() int {
	return len(s.flat)
}

// Empty reports whether the set contains no thread entries. A set holding
// only entry-less catalogs is empty: every scanning operation would have
// nothing to match against.
func (s *Set) Empty() bool {
	return len(s.flat) == 0
}

// Unknown is the sentinel thread returned by lookups that miss. Mid-gray so
// downstream rendering stays usable without nil checks.
func Unknown() ThreadColor {
	return ThreadColor{
		Code:    "UNKNOWN",
		Name:    "Unknown",
		Catalog: "",
		RGB:     colour.RGB{R: 127, G: 127, B: 127},
	}
}

var (
	builtinOnce sync.Once
	builtinSet  *Set
)

// Builtin returns the process-wide set of generated manufacturer catalogs.
// Built once, never mutated afterwards.
func Builtin() *Set {
	builtinOnce.Do(func() {
		builtinSet = NewSet(
			NewCatalog("DMC", dmcThreads),
			NewCatalog("Anchor", anchorThreads),
			NewCatalog("Madeira", madeiraThreads),
		)
	})
	return builtinSet
}

// ByName returns the built-in catalog with the given name.
func ByName(name string) (Catalog, bool) {
	for _, c := range Builtin().Catalogs() {
		if c.Name == name {
			return c, true
		}
	}
	return Catalog{}, false
}

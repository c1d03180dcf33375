package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/threadtone/threadtone/internal/colour"
)

// catalogFile is the on-disk JSON shape for user-supplied catalogs:
//
//	{"name": "Sulky", "threads": [{"code": "1001", "name": "White", "hex": "#ffffff"}]}
type catalogFile struct {
	Name    string `json:"name"`
	Threads []struct {
		Code string `json:"code"`
		Name string `json:"name"`
		Hex  string `json:"hex"`
	} `json:"threads"`
}

// LoadFile reads a user-supplied thread catalog from a JSON file. Thread
// colours are given as hex strings.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if file.Name == "" {
		return Catalog{}, fmt.Errorf("catalog file %s has no name", path)
	}
	if len(file.Threads) == 0 {
		return Catalog{}, fmt.Errorf("catalog %q contains no threads", file.Name)
	}

	threads := make([]ThreadColor, 0, len(file.Threads))
	seen := make(map[string]bool, len(file.Threads))
	for _, t := range file.Threads {
		if t.Code == "" {
			return Catalog{}, fmt.Errorf("catalog %q has a thread with no code", file.Name)
		}
		if seen[t.Code] {
			return Catalog{}, fmt.Errorf("catalog %q has duplicate thread code %q", file.Name, t.Code)
		}
		seen[t.Code] = true

		c, err := colorful.Hex(t.Hex)
		if err != nil {
			return Catalog{}, fmt.Errorf("thread %q in catalog %q: invalid colour %q: %w", t.Code, file.Name, t.Hex, err)
		}
		r, g, b := c.RGB255()
		threads = append(threads, ThreadColor{
			Code: t.Code,
			Name: t.Name,
			RGB:  colour.RGB{R: r, G: g, B: b},
		})
	}

	return NewCatalog(file.Name, threads), nil
}

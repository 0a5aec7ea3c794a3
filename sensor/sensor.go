// Package sensor reads the data packages sent by the tracker's sensor block.
package sensor

import (
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Package is one workout as reported by the sensors: a workout code and the
// positional readings for it.
type Package struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// Samples returns the packages the tracker ships with for demonstration.
func Samples() []Package {
	return withIDs([]Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	})
}

// Decode reads a JSON array of packages. Packages without an ID are given one.
func Decode(r io.Reader) ([]Package, error) {
	var packages []Package
	err := json.NewDecoder(r).Decode(&packages)
	if err != nil {
		return nil, errors.Wrap(err, "sensor: failed to decode packages")
	}
	return withIDs(packages), nil
}

func Load(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "sensor: failed to open %s", path)
	}
	defer f.Close()
	return Decode(f)
}

func withIDs(packages []Package) []Package {
	for i := range packages {
		if packages[i].ID == "" {
			packages[i].ID = uuid.NewString()
		}
	}
	return packages
}

// Package knowledge loads and queries the static city knowledge base
// backing the assistant's lookup tools.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/marhaba-travel/marhaba/core"
)

// Attraction is a single sight with a one-line description.
type Attraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CityRecord holds everything the store knows about one city.
// Records are immutable after load.
type CityRecord struct {
	Description       string              `json:"description"`
	Attractions       []Attraction        `json:"attractions"`
	BestTime          string              `json:"best_time"`
	TemperatureWinter string              `json:"temperature_winter"`
	TemperatureSummer string              `json:"temperature_summer"`
	CulturalTips      []string            `json:"cultural_tips"`
	Activities        map[string][]string `json:"activities"`
}

// Store is the read-only city knowledge base. Safe for concurrent
// readers once loaded.
type Store struct {
	records map[string]CityRecord
}

// Load reads the knowledge file and validates every declared city.
// The file must declare exactly the supported city set; a missing file,
// malformed document, unknown city, or missing required field fails
// with core.ErrDataLoad. Loaded once per process.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", core.ErrDataLoad, path, err)
	}

	var records map[string]CityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", core.ErrDataLoad, path, err)
	}

	normalized := make(map[string]CityRecord, len(records))
	for name, rec := range records {
		key := core.NormalizeCity(name)
		if !core.IsCity(key) {
			return nil, fmt.Errorf("%w: %s declares unsupported city %q", core.ErrDataLoad, path, name)
		}
		if err := validateRecord(key, rec); err != nil {
			return nil, err
		}
		normalized[key] = rec
	}

	// The prayer table and budget multipliers cover the whole supported
	// set, so the store must too.
	for _, city := range core.Cities() {
		if _, ok := normalized[city]; !ok {
			return nil, fmt.Errorf("%w: %s missing city %q", core.ErrDataLoad, path, city)
		}
	}

	return &Store{records: normalized}, nil
}

func validateRecord(city string, rec CityRecord) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: city %q missing required field %q", core.ErrDataLoad, city, field)
	}

	if rec.Description == "" {
		return missing("description")
	}
	if len(rec.Attractions) == 0 {
		return missing("attractions")
	}
	for i, a := range rec.Attractions {
		if a.Name == "" {
			return fmt.Errorf("%w: city %q attraction %d missing name", core.ErrDataLoad, city, i)
		}
	}
	if rec.BestTime == "" {
		return missing("best_time")
	}
	if rec.TemperatureWinter == "" {
		return missing("temperature_winter")
	}
	if rec.TemperatureSummer == "" {
		return missing("temperature_summer")
	}
	if len(rec.CulturalTips) == 0 {
		return missing("cultural_tips")
	}
	if len(rec.Activities) == 0 {
		return missing("activities")
	}
	return nil
}

// City returns the record for a city, resolving user spellings through
// normalization. Unknown cities fail with core.ErrUnknownCity.
func (s *Store) City(name string) (CityRecord, error) {
	rec, ok := s.records[core.NormalizeCity(name)]
	if !ok {
		return CityRecord{}, fmt.Errorf("%w: %q", core.ErrUnknownCity, name)
	}
	return rec, nil
}

// Cities returns the loaded canonical city names in sorted order.
func (s *Store) Cities() []string {
	out := make([]string, 0, len(s.records))
	for name := range s.records {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

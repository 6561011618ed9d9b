package reference

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"bloodlink-web/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed data/districts.json data/upazilas.json
var files embed.FS

// Locations is the static district and upazila reference data, sorted by name.
type Locations struct {
	districts  []domain.Location
	upazilas   []domain.Location
	districtID map[string]string
}

var (
	loadOnce sync.Once
	loaded   *Locations
	loadErr  error
)

// Load parses the embedded data once and returns the shared instance.
func Load() (*Locations, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(mustRead("data/districts.json"), mustRead("data/upazilas.json"))
	})
	return loaded, loadErr
}

func mustRead(name string) []byte {
	b, err := files.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("reference: embedded %s missing: %v", name, err))
	}
	return b
}

// Parse builds Locations from raw districts and upazilas JSON arrays.
func Parse(districtsJSON, upazilasJSON []byte) (*Locations, error) {
	var districts, upazilas []domain.Location
	if err := json.Unmarshal(districtsJSON, &districts); err != nil {
		return nil, fmt.Errorf("reference: decode districts: %w", err)
	}
	if err := json.Unmarshal(upazilasJSON, &upazilas); err != nil {
		return nil, fmt.Errorf("reference: decode upazilas: %w", err)
	}

	l := &Locations{
		districts:  clean(districts),
		upazilas:   clean(upazilas),
		districtID: make(map[string]string, len(districts)),
	}
	for _, d := range l.districts {
		l.districtID[fold(d.Name)] = d.ID
	}
	SortByName(l.districts)
	SortByName(l.upazilas)
	return l, nil
}

func clean(in []domain.Location) []domain.Location {
	out := make([]domain.Location, 0, len(in))
	for _, loc := range in {
		loc.Name = strings.TrimSpace(loc.Name)
		if loc.Name == "" {
			continue
		}
		out = append(out, loc)
	}
	return out
}

// Districts returns every district.
func (l *Locations) Districts() []domain.Location {
	return append([]domain.Location{}, l.districts...)
}

// Upazilas returns the upazilas of the named district, or all of them when
// district is unconstrained. Unknown districts yield an empty list.
func (l *Locations) Upazilas(district string) []domain.Location {
	district = strings.TrimSpace(district)
	if district == "" || strings.EqualFold(district, "all") {
		return append([]domain.Location{}, l.upazilas...)
	}
	id, ok := l.districtID[fold(district)]
	if !ok {
		return []domain.Location{}
	}
	out := []domain.Location{}
	for _, u := range l.upazilas {
		if u.DistrictID == id {
			out = append(out, u)
		}
	}
	return out
}

// HasDistrict reports whether name is a known district.
func (l *Locations) HasDistrict(name string) bool {
	_, ok := l.districtID[fold(strings.TrimSpace(name))]
	return ok
}

// Names projects locations onto their names.
func Names(locs []domain.Location) []string {
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		out = append(out, loc.Name)
	}
	return out
}

// SortByName orders locations case-insensitively. Ties keep their input order.
func SortByName(locs []domain.Location) {
	// collate.Collator is not safe for concurrent use
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(locs, func(i, j int) bool {
		return c.CompareString(locs[i].Name, locs[j].Name) < 0
	})
}

func fold(s string) string {
	return cases.Fold().String(s)
}

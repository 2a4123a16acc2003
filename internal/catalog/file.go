package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// fileProfile is the YAML shape of one profile. Section keys mirror the
// questionnaire record sections.
type fileProfile struct {
	Name        string         `yaml:"name"`
	Symptoms    map[string]any `yaml:"symptoms"`
	TestResults map[string]any `yaml:"test_results"`
	BasicInfo   map[string]any `yaml:"basic_info"`
}

// LoadFile loads an ordered catalog from a YAML file. The file holds a list
// of profiles; scalar expectations stay scalars and two-element lists become
// inclusive ranges.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raw []fileProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no profiles", path)
	}

	profiles := make([]Profile, 0, len(raw))
	for _, fp := range raw {
		if fp.Name == "" {
			return nil, fmt.Errorf("catalog file %s contains a profile without a name", path)
		}
		profile, err := profileFromMaps(fp.Name, fp.Symptoms, fp.TestResults, fp.BasicInfo)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", fp.Name, err)
		}
		profiles = append(profiles, profile)
	}

	return New(profiles), nil
}

// profileFromMaps builds a typed Profile from decoded section maps. Shared by
// the YAML loader and the Postgres repository.
func profileFromMaps(name string, symptoms, tests, vitals map[string]any) (Profile, error) {
	profile := Profile{
		Name:     name,
		Symptoms: make(map[string]models.Value, len(symptoms)),
		Tests:    make(map[string]Expectation, len(tests)),
		Vitals:   make(map[string]Range, len(vitals)),
	}

	for key, raw := range symptoms {
		v, err := valueFromAny(raw)
		if err != nil {
			return Profile{}, fmt.Errorf("symptom %q: %w", key, err)
		}
		profile.Symptoms[key] = v
	}

	for key, raw := range tests {
		exp, err := expectationFromAny(raw)
		if err != nil {
			return Profile{}, fmt.Errorf("test %q: %w", key, err)
		}
		profile.Tests[key] = exp
	}

	for key, raw := range vitals {
		list, ok := raw.([]any)
		if !ok {
			return Profile{}, fmt.Errorf("vitals %q: expected a [min, max] range", key)
		}
		r, err := rangeFromAny(list)
		if err != nil {
			return Profile{}, fmt.Errorf("vitals %q: %w", key, err)
		}
		profile.Vitals[key] = r
	}

	return profile, nil
}

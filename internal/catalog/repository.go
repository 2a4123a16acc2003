package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ProfileRepository loads disease profiles from PostgreSQL.
type ProfileRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// LoadCatalog loads all disease profiles ordered by position. The JSONB
// columns hold the section maps in the same shape as the YAML catalog file.
func (r *ProfileRepository) LoadCatalog() (*Catalog, error) {
	query := `
		SELECT name, symptoms, test_results, basic_info
		FROM disease_profiles
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query disease profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var (
			name            string
			symptomsJSON    []byte
			testResultsJSON []byte
			basicInfoJSON   []byte
		)
		if err := rows.Scan(&name, &symptomsJSON, &testResultsJSON, &basicInfoJSON); err != nil {
			return nil, fmt.Errorf("failed to scan disease profile: %w", err)
		}

		var symptoms, tests, vitals map[string]any
		if err := json.Unmarshal(symptomsJSON, &symptoms); err != nil {
			return nil, fmt.Errorf("profile %q: failed to parse symptoms: %w", name, err)
		}
		if err := json.Unmarshal(testResultsJSON, &tests); err != nil {
			return nil, fmt.Errorf("profile %q: failed to parse test_results: %w", name, err)
		}
		if err := json.Unmarshal(basicInfoJSON, &vitals); err != nil {
			return nil, fmt.Errorf("profile %q: failed to parse basic_info: %w", name, err)
		}

		profile, err := profileFromMaps(name, symptoms, tests, vitals)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate disease profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("disease_profiles table is empty")
	}

	r.logger.Info("Loaded disease catalog from database",
		zap.Int("profile_count", len(profiles)),
	)

	return New(profiles), nil
}

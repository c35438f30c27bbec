package config

import (
	"encoding/json"
	"fmt"
	"os"

	"jobbot-engine/internal/domain"
)

// LoadProfile reads the applicant profile used to fill application
// forms.
func LoadProfile(path string) (domain.Profile, error) {
	var p domain.Profile
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

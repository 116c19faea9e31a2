package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dart-prep/dartprep/internal/models"
)

// LoadVariationProfile reads the YAML variation profile used by the
// sequence generator. A missing file is not an error: the built-in
// defaults are returned. A present but unparsable file is.
func LoadVariationProfile(path string) (*models.VariationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultVariationProfile(), nil
		}
		return nil, fmt.Errorf("reading variation profile: %w", err)
	}

	profile := models.DefaultVariationProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("parsing variation profile: %w", err)
	}
	return profile, nil
}

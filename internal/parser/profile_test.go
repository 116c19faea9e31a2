package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dart-prep/dartprep/internal/models"
)

func TestLoadVariationProfileMissingFileUsesDefaults(t *testing.T) {
	profile, err := LoadVariationProfile(filepath.Join(t.TempDir(), "variation.yaml"))
	if err != nil {
		t.Fatalf("LoadVariationProfile failed: %v", err)
	}
	if diff := cmp.Diff(models.DefaultVariationProfile(), profile); diff != "" {
		t.Errorf("Profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadVariationProfileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variation.yaml")
	content := `chlorophyll:
  min: 40
  max: 55
scale_jitter: 0.1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing profile fixture: %v", err)
	}

	profile, err := LoadVariationProfile(path)
	if err != nil {
		t.Fatalf("LoadVariationProfile failed: %v", err)
	}

	if profile.Chlorophyll.Min != 40 || profile.Chlorophyll.Max != 55 {
		t.Errorf("Expected chlorophyll range [40 55], got %+v", profile.Chlorophyll)
	}
	if profile.ScaleJitter != 0.1 {
		t.Errorf("Expected scale jitter 0.1, got %v", profile.ScaleJitter)
	}
	// Untouched fields keep their defaults.
	want := models.DefaultVariationProfile().SoilTemperature
	if profile.SoilTemperature != want {
		t.Errorf("Expected default soil temperature %+v, got %+v", want, profile.SoilTemperature)
	}
}

func TestLoadVariationProfileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variation.yaml")
	if err := os.WriteFile(path, []byte("chlorophyll: [not a map"), 0644); err != nil {
		t.Fatalf("writing profile fixture: %v", err)
	}

	if _, err := LoadVariationProfile(path); err == nil {
		t.Fatal("Expected error for malformed profile")
	}
}

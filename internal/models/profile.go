package models

// VariationProfile defines the value ranges the sequence generator draws
// from. The YAML format mirrors the built-in defaults; any absent field
// keeps its default.
type VariationProfile struct {
	// Chlorophyll is the Prospect Cab range (µg/cm²).
	Chlorophyll Range `yaml:"chlorophyll"`
	// WaterThickness is the Prospect Cw range (cm).
	WaterThickness Range `yaml:"water_thickness"`
	// SoilTemperature is the base soil temperature range (K).
	SoilTemperature Range `yaml:"soil_temperature"`
	// LeafCooling is how far below soil temperature leaves sit (K).
	LeafCooling Range `yaml:"leaf_cooling"`
	// TrunkCooling is how far below soil temperature trunks sit (K).
	TrunkCooling Range `yaml:"trunk_cooling"`
	// ScaleJitter is the relative spread applied around each tree's
	// recorded scale, e.g. 0.2 for ±20%.
	ScaleJitter float64 `yaml:"scale_jitter"`
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Width returns Max - Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// DefaultVariationProfile returns the ranges used when no variation.yaml
// is present.
func DefaultVariationProfile() *VariationProfile {
	return &VariationProfile{
		Chlorophyll:     Range{Min: 20, Max: 90},
		WaterThickness:  Range{Min: 0.01, Max: 0.05},
		SoilTemperature: Range{Min: 290, Max: 310},
		LeafCooling:     Range{Min: 1, Max: 10},
		TrunkCooling:    Range{Min: 0.5, Max: 5},
		ScaleJitter:     0.2,
	}
}

// Package config loads the JSON run configuration for the DART preparation tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigError reports a missing, malformed, or incomplete configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config is the loaded run configuration. Immutable after Load.
type Config struct {
	Paths    Paths
	Settings SimulationSettings
	Vary     ParametersToVary

	// SequenceCount is the number of sequencer variations (nbr_of_sequence).
	SequenceCount int

	// dir is the directory the config file was loaded from; relative paths
	// in the document resolve against it.
	dir string
}

// Paths holds the input and output locations.
type Paths struct {
	SimulationPath  string `json:"simulation_path"`
	PositionTxtPath string `json:"position_txt_path"`
	TreeObjPath     string `json:"tree_obj_path"`
	SoilFactorPath  string `json:"soil_factor_path"`
}

// SimulationSettings are the run-mode toggles.
type SimulationSettings struct {
	MultiSol     bool
	MultiTree    bool
	RunSequencer bool
}

// ParametersToVary selects which scene parameters get per-tree entries
// and sequencer variation.
type ParametersToVary struct {
	Scale           bool
	TreeTemperature bool
	Chlorophyl      bool
	WaterThickness  bool
	SoilTemperature bool
}

// rawConfig mirrors the JSON document with pointer fields so that missing
// keys can be told apart from explicit false values. No defaults are
// synthesized: an incomplete document is rejected.
type rawConfig struct {
	Paths *struct {
		SimulationPath  *string `json:"simulation_path"`
		PositionTxtPath *string `json:"position_txt_path"`
		TreeObjPath     *string `json:"tree_obj_path"`
		SoilFactorPath  string  `json:"soil_factor_path"`
	} `json:"paths"`
	SimulationSettings *struct {
		MultiSol     *bool `json:"multi_sol"`
		MultiTree    *bool `json:"multi_tree"`
		RunSequencer *bool `json:"run_sequencer"`
	} `json:"simulation_settings"`
	ParametersToVary *struct {
		Scale           *bool `json:"scale"`
		TreeTemperature *bool `json:"tree_temperature"`
		Chlorophyl      *bool `json:"chlorophyl"`
		WaterThickness  *bool `json:"water_thickness"`
		SoilTemperature *bool `json:"soil_temperature"`
	} `json:"parameters_to_vary"`
	SequenceCount *int `json:"nbr_of_sequence"`
}

// Load reads and validates the configuration at configPath.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, &ConfigError{Path: configPath, Err: fmt.Errorf("reading config file: %w", err)}
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: configPath, Err: fmt.Errorf("parsing config file: %w", err)}
	}

	cfg, err := raw.validate()
	if err != nil {
		return nil, &ConfigError{Path: configPath, Err: err}
	}

	absDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, &ConfigError{Path: configPath, Err: err}
	}
	cfg.dir = absDir
	cfg.resolvePaths()

	return cfg, nil
}

func (r *rawConfig) validate() (*Config, error) {
	if r.Paths == nil {
		return nil, fmt.Errorf("missing section: paths")
	}
	if r.SimulationSettings == nil {
		return nil, fmt.Errorf("missing section: simulation_settings")
	}
	if r.ParametersToVary == nil {
		return nil, fmt.Errorf("missing section: parameters_to_vary")
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"paths.simulation_path", r.Paths.SimulationPath != nil},
		{"paths.position_txt_path", r.Paths.PositionTxtPath != nil},
		{"paths.tree_obj_path", r.Paths.TreeObjPath != nil},
		{"simulation_settings.multi_sol", r.SimulationSettings.MultiSol != nil},
		{"simulation_settings.multi_tree", r.SimulationSettings.MultiTree != nil},
		{"simulation_settings.run_sequencer", r.SimulationSettings.RunSequencer != nil},
		{"parameters_to_vary.scale", r.ParametersToVary.Scale != nil},
		{"parameters_to_vary.tree_temperature", r.ParametersToVary.TreeTemperature != nil},
		{"parameters_to_vary.chlorophyl", r.ParametersToVary.Chlorophyl != nil},
		{"parameters_to_vary.water_thickness", r.ParametersToVary.WaterThickness != nil},
		{"parameters_to_vary.soil_temperature", r.ParametersToVary.SoilTemperature != nil},
	}
	for _, req := range required {
		if !req.ok {
			return nil, fmt.Errorf("missing key: %s", req.name)
		}
	}

	cfg := &Config{
		Paths: Paths{
			SimulationPath:  *r.Paths.SimulationPath,
			PositionTxtPath: *r.Paths.PositionTxtPath,
			TreeObjPath:     *r.Paths.TreeObjPath,
			SoilFactorPath:  r.Paths.SoilFactorPath,
		},
		Settings: SimulationSettings{
			MultiSol:     *r.SimulationSettings.MultiSol,
			MultiTree:    *r.SimulationSettings.MultiTree,
			RunSequencer: *r.SimulationSettings.RunSequencer,
		},
		Vary: ParametersToVary{
			Scale:           *r.ParametersToVary.Scale,
			TreeTemperature: *r.ParametersToVary.TreeTemperature,
			Chlorophyl:      *r.ParametersToVary.Chlorophyl,
			WaterThickness:  *r.ParametersToVary.WaterThickness,
			SoilTemperature: *r.ParametersToVary.SoilTemperature,
		},
	}

	if r.SequenceCount != nil {
		cfg.SequenceCount = *r.SequenceCount
	}
	if *r.SimulationSettings.RunSequencer {
		if r.SequenceCount == nil {
			return nil, fmt.Errorf("missing key: nbr_of_sequence (required when run_sequencer is true)")
		}
		if cfg.SequenceCount < 1 {
			return nil, fmt.Errorf("nbr_of_sequence must be at least 1, got %d", cfg.SequenceCount)
		}
	}

	if *r.SimulationSettings.MultiSol && r.Paths.SoilFactorPath == "" {
		return nil, fmt.Errorf("missing key: paths.soil_factor_path (required when multi_sol is true)")
	}

	return cfg, nil
}

// resolvePaths converts relative paths to absolute based on the config file location.
func (c *Config) resolvePaths() {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(c.dir, *p)
		}
	}
	resolve(&c.Paths.SimulationPath)
	resolve(&c.Paths.PositionTxtPath)
	resolve(&c.Paths.TreeObjPath)
	resolve(&c.Paths.SoilFactorPath)
}

// Dir returns the directory the config file was loaded from.
func (c *Config) Dir() string { return c.dir }

// InputDir returns the DART input directory under the simulation root.
func (c *Config) InputDir() string {
	return filepath.Join(c.Paths.SimulationPath, "input")
}

// PerTreeOptical reports whether per-tree leaf optical entries are generated.
func (c *Config) PerTreeOptical() bool {
	return c.Vary.Chlorophyl || c.Vary.WaterThickness
}

// PerTreeThermal reports whether per-tree thermal entries are generated.
func (c *Config) PerTreeThermal() bool {
	return c.Vary.TreeTemperature
}

package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dart-prep/dartprep/internal/config"
)

// fixtureOpts shapes the on-disk simulation tree the tests run against.
type fixtureOpts struct {
	multiSol     bool
	multiTree    bool
	runSequencer bool

	scale     bool
	treeTemp  bool
	chl       bool
	water     bool
	soilTemp  bool
	seqCount  int
	positions string
	models    []string
	phaseXML  string
	maketXML  string
	// soils maps folder name to band file names.
	soils map[string][]string
}

const defaultPositions = `// index x y z xscale yscale zscale xrot yrot zrot
complete transformation
0 1.5 2.5 0.0 1.0 1.0 1.0 0.0 0.0 0.0
1 -3.25 4.75 0.0 0.8 0.8 0.8 0.0 0.0 45.0
`

const defaultMaket = `<?xml version="1.0" encoding="UTF-8"?>
<DartFile build="v1410" version="5.10.6">
    <Maket dartZone="0" exactlyPeriodicScene="1">
        <Scene>
            <CellDimensions x="0.5" z="0.5"/>
        </Scene>
        <Soil>
            <OpticalPropertyLink ident="Lambertian_Phase_Function_1" indexFctPhase="0" type="0"/>
            <ThermalPropertyLink idTemperature="ThermalFunction290_310" indexTemperature="0"/>
            <Topography presenceOfTopography="0"/>
        </Soil>
    </Maket>
</DartFile>
`

// newFixture writes the simulation tree and a config.json pointing at
// it, then loads the config the same way the CLI does.
func newFixture(t *testing.T, opts fixtureOpts) *config.Config {
	t.Helper()
	base := t.TempDir()

	simPath := filepath.Join(base, "sim")
	inputDir := filepath.Join(simPath, "input")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		t.Fatalf("creating simulation tree: %v", err)
	}

	positions := opts.positions
	if positions == "" {
		positions = defaultPositions
	}
	posPath := filepath.Join(base, "positions.txt")
	if err := os.WriteFile(posPath, []byte(positions), 0644); err != nil {
		t.Fatalf("writing positions: %v", err)
	}

	modelDir := filepath.Join(base, "models")
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		t.Fatalf("creating model dir: %v", err)
	}
	models := opts.models
	if models == nil {
		models = []string{"tree_a.obj"}
	}
	for _, name := range models {
		if err := os.WriteFile(filepath.Join(modelDir, name), []byte("o tree\n"), 0644); err != nil {
			t.Fatalf("writing model file: %v", err)
		}
	}

	soilDir := filepath.Join(base, "soils")
	if err := os.MkdirAll(soilDir, 0755); err != nil {
		t.Fatalf("creating soil dir: %v", err)
	}
	for name, files := range opts.soils {
		dir := filepath.Join(soilDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating soil folder: %v", err)
		}
		for _, f := range files {
			if err := os.WriteFile(filepath.Join(dir, f), []byte("0.5\n"), 0644); err != nil {
				t.Fatalf("writing band file: %v", err)
			}
		}
	}

	if opts.phaseXML != "" {
		if err := os.WriteFile(filepath.Join(inputDir, "phase.xml"), []byte(opts.phaseXML), 0644); err != nil {
			t.Fatalf("writing phase.xml: %v", err)
		}
	}
	if opts.maketXML != "" {
		if err := os.WriteFile(filepath.Join(inputDir, "maket.xml"), []byte(opts.maketXML), 0644); err != nil {
			t.Fatalf("writing maket.xml: %v", err)
		}
	}

	doc := map[string]any{
		"paths": map[string]any{
			"simulation_path":   "sim",
			"position_txt_path": "positions.txt",
			"tree_obj_path":     "models",
			"soil_factor_path":  "soils",
		},
		"simulation_settings": map[string]any{
			"multi_sol":     opts.multiSol,
			"multi_tree":    opts.multiTree,
			"run_sequencer": opts.runSequencer,
		},
		"parameters_to_vary": map[string]any{
			"scale":            opts.scale,
			"tree_temperature": opts.treeTemp,
			"chlorophyl":       opts.chl,
			"water_thickness":  opts.water,
			"soil_temperature": opts.soilTemp,
		},
	}
	if opts.seqCount > 0 {
		doc["nbr_of_sequence"] = opts.seqCount
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling config fixture: %v", err)
	}
	configPath := filepath.Join(base, "config.json")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("loading config fixture: %v", err)
	}
	return cfg
}

const twoBandPhase = `<?xml version="1.0" encoding="UTF-8"?>
<DartFile version="5.10.6">
    <Phase>
        <DartInputParameters>
            <SpectralIntervals>
                <SpectralIntervalsProperties bandNumber="0" spectralDartMode="0"/>
                <SpectralIntervalsProperties bandNumber="1" spectralDartMode="2"/>
            </SpectralIntervals>
        </DartInputParameters>
    </Phase>
</DartFile>
`

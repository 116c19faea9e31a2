package generator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/dartxml"
	"github.com/dart-prep/dartprep/internal/models"
	"github.com/dart-prep/dartprep/internal/parser"
	"github.com/dart-prep/dartprep/internal/storage"
)

// CoeffDiff generates coeff_diff.xml: the optical and thermal property
// definitions the scene objects reference by naming convention.
type CoeffDiff struct {
	cfg   *config.Config
	store *storage.OutputStore
	log   *zap.Logger
}

// NewCoeffDiff creates a coeff_diff.xml generator.
func NewCoeffDiff(cfg *config.Config, store *storage.OutputStore, log *zap.Logger) *CoeffDiff {
	return &CoeffDiff{cfg: cfg, store: store, log: log}
}

// Run counts trees, builds the document, and writes it atomically to
// <simulation>/input/coeff_diff.xml.
func (g *CoeffDiff) Run() error {
	treeCount := parser.CountTrees(g.cfg.Paths.PositionTxtPath, g.log)
	if treeCount == 0 {
		return fmt.Errorf("%w in %s", ErrNoPositions, g.cfg.Paths.PositionTxtPath)
	}
	g.log.Info("building coeff_diff.xml", zap.Int("trees", treeCount))

	doc := g.Build(treeCount)
	data, err := dartxml.Render(doc)
	if err != nil {
		return err
	}

	outPath := filepath.Join(g.cfg.InputDir(), coeffDiffFileName)
	if err := g.store.Write(outPath, data); err != nil {
		return err
	}
	g.log.Info("wrote coeff_diff.xml", zap.String("path", outPath))
	return nil
}

// Build assembles the document for treeCount trees. Output depends only
// on the configuration and the soil-factor directory contents, never on
// randomness.
func (g *CoeffDiff) Build(treeCount int) *dartxml.CoeffDiffFile {
	return &dartxml.CoeffDiffFile{
		Build:   dartxml.FileBuild,
		Version: dartxml.FileVersion,
		CoeffDiff: dartxml.CoeffDiff{
			FluorescenceFile:     "0",
			FluorescenceProducts: "0",
			UseCombinedYield:     "0",
			Surfaces: dartxml.Surfaces{
				LambertianMultiFunctions: dartxml.LambertianMultiFunctions{
					Functions: g.opticalEntries(treeCount),
				},
			},
			Volumes: dartxml.Volumes{
				Understory: dartxml.UnderstoryMultiFunctions{
					IntegrationStepOnPhi:   "10",
					IntegrationStepOnTheta: "1",
					OutputLADFile:          "0",
				},
			},
			Temperatures: dartxml.Temperatures{
				Functions: g.thermalEntries(treeCount),
			},
		},
	}
}

// thermalEntries puts Temp_soil first, then either per-tree leaf and
// trunk entries (leaves grouped before trunks, so sequencer property
// indices stay stable) or the single pooled range.
func (g *CoeffDiff) thermalEntries(treeCount int) []dartxml.ThermalFunction {
	funcs := []dartxml.ThermalFunction{
		dartxml.NewThermalFunction(soilTemperatureID, 300, 0),
	}

	if g.cfg.PerTreeThermal() {
		for i := 0; i < treeCount; i++ {
			funcs = append(funcs, dartxml.NewThermalFunction(leafThermalID(i), 300, 0))
		}
		for i := 0; i < treeCount; i++ {
			funcs = append(funcs, dartxml.NewThermalFunction(trunkThermalID(i), 300, 0))
		}
		return funcs
	}

	return append(funcs, dartxml.NewThermalFunction(pooledTemperatureID, 300, 10))
}

func (g *CoeffDiff) opticalEntries(treeCount int) []dartxml.LambertianMulti {
	var entries []dartxml.LambertianMulti

	if g.cfg.PerTreeOptical() {
		for i := 0; i < treeCount; i++ {
			entries = append(entries, dartxml.NewProspectLambertianMulti(
				leafIdent(i), leafModelName, vegetationDB, defaultProspectParams()))
		}
	} else {
		// The object generator references leaf_0 in the shared case,
		// so the shared entry carries that ident.
		entries = append(entries, dartxml.NewProspectLambertianMulti(
			leafIdent(0), leafModelName, vegetationDB, defaultProspectParams()))
	}

	entries = append(entries, dartxml.NewLambertianMulti(trunkModelName, trunkModelName, vegetationDB))
	return append(entries, g.soilEntries()...)
}

// soilEntries returns one entry per valid soil folder in multi-soil
// mode, falling back to the single default soil when resolution fails.
func (g *CoeffDiff) soilEntries() []dartxml.LambertianMulti {
	if !g.cfg.Settings.MultiSol {
		return []dartxml.LambertianMulti{g.defaultSoil()}
	}

	intervals, err := parser.ResolveSpectralIntervals(g.cfg.Paths.SimulationPath)
	if err != nil {
		if !errors.Is(err, parser.ErrSpectralUnavailable) {
			g.log.Warn("unexpected spectral resolution failure", zap.Error(err))
		}
		g.log.Warn("falling back to default soil", zap.Error(err))
		return []dartxml.LambertianMulti{g.defaultSoil()}
	}

	folders, err := parser.ScanSoilFolders(g.cfg.Paths.SoilFactorPath)
	if err != nil {
		g.log.Warn("falling back to default soil", zap.Error(err))
		return []dartxml.LambertianMulti{g.defaultSoil()}
	}

	valid := parser.ValidateSoilFolders(folders, intervals, g.log)
	if len(valid) == 0 {
		g.log.Warn("no valid soil folders, falling back to default soil",
			zap.String("path", g.cfg.Paths.SoilFactorPath))
		return []dartxml.LambertianMulti{g.defaultSoil()}
	}

	entries := make([]dartxml.LambertianMulti, 0, len(valid))
	for _, folder := range valid {
		entries = append(entries, g.soilEntry(folder, intervals))
	}
	return entries
}

func (g *CoeffDiff) defaultSoil() dartxml.LambertianMulti {
	return dartxml.NewLambertianMulti(defaultSoilName, leafModelName, mineralDB)
}

func (g *CoeffDiff) soilEntry(folder models.SoilFolder, intervals models.SpectralIntervals) dartxml.LambertianMulti {
	entry := dartxml.NewLambertianMulti(soilIdent(folder.Name), leafModelName, mineralDB)
	entry.UseMultiplicativeFactorForLUT = "1"

	bands := intervals.BandNumbers()
	factors := make([]dartxml.BandFactor, 0, len(bands))
	for i, band := range bands {
		factor := dartxml.BandFactor{
			BandNumber:                 strconv.Itoa(band),
			SpectralDartMode:           strconv.Itoa(intervals[band]),
			ReflectanceFactor:          "1.0",
			DiffuseTransmittanceFactor: "0.0",
			DirectTransmittanceFactor:  "0.0",
			FactorFile:                 filepath.Join(folder.Path, folder.BandFiles[i]),
		}
		if intervals.IsThermal(band) {
			factor.ReflectanceFactor = "0.0"
			factor.DiffuseTransmittanceFactor = "1.0"
			factor.DirectTransmittanceFactor = "1.0"
		}
		factors = append(factors, factor)
	}

	entry.FactorNode = &dartxml.SoilFactorNode{
		UseSameFactorForAllBands: "0",
		Bands:                    factors,
	}
	return entry
}

// defaultProspectParams returns the Prospect parameter set every leaf
// entry currently carries. Per-tree biochemical differentiation hangs
// off this point.
func defaultProspectParams() dartxml.ProspectParams {
	return dartxml.ProspectParams{
		CBrown:            "0.0",
		Cab:               "60.0",
		Car:               "30.0",
		Cbc:               "0.009",
		Cm:                "0.01",
		Cp:                "0.001",
		Cw:                "0.012",
		N:                 "1.5",
		Anthocyanin:       "0.0",
		InputProspectFile: "Prospect_Fluspect/Optipar2021_ProspectPRO.txt",
		IsV2Z:             "0",
		UseCm:             "0",
	}
}

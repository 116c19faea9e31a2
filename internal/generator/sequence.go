package generator

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/dartxml"
	"github.com/dart-prep/dartprep/internal/models"
	"github.com/dart-prep/dartprep/internal/parser"
	"github.com/dart-prep/dartprep/internal/storage"
)

// Sequence generates sequence.xml: the DART sequencer descriptor that
// enumerates parameter variations across nbr_of_sequence runs. Value
// ranges come from the variation profile (variation.yaml next to the
// config, or built-in defaults).
type Sequence struct {
	cfg   *config.Config
	store *storage.OutputStore
	log   *zap.Logger
	rng   *rand.Rand
}

// NewSequence creates a sequence.xml generator with a time-seeded
// random source; tests swap it via WithRand.
func NewSequence(cfg *config.Config, store *storage.OutputStore, log *zap.Logger) *Sequence {
	return &Sequence{
		cfg:   cfg,
		store: store,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the random source used for parameter draws.
func (g *Sequence) WithRand(rng *rand.Rand) *Sequence {
	g.rng = rng
	return g
}

// Run builds the sequence document and writes it atomically to
// <simulation>/sequence.xml.
func (g *Sequence) Run() error {
	if g.cfg.SequenceCount < 1 {
		return fmt.Errorf("nbr_of_sequence must be at least 1 to generate a sequence")
	}

	positions, parseErrs, err := parser.ParsePositions(g.cfg.Paths.PositionTxtPath)
	if err != nil {
		return err
	}
	for _, pe := range parseErrs {
		g.log.Warn("skipping malformed position line",
			zap.Int("line", pe.Line), zap.String("reason", pe.Reason))
	}
	if len(positions) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPositions, g.cfg.Paths.PositionTxtPath)
	}

	profile, err := parser.LoadVariationProfile(filepath.Join(g.cfg.Dir(), profileFileName))
	if err != nil {
		return err
	}
	g.log.Info("building sequence.xml",
		zap.Int("trees", len(positions)), zap.Int("simulations", g.cfg.SequenceCount))

	doc := g.Build(positions, profile)
	data, err := dartxml.Render(doc)
	if err != nil {
		return err
	}

	outPath := filepath.Join(g.cfg.Paths.SimulationPath, sequenceFileName)
	if err := g.store.Write(outPath, data); err != nil {
		return err
	}
	g.log.Info("wrote sequence.xml", zap.String("path", outPath))
	return nil
}

// Build assembles the descriptor. Entry order is fixed: scale, soil
// temperature, leaf temperatures, trunk temperatures, chlorophyll,
// water thickness. Each section is present only when its flag is set.
func (g *Sequence) Build(positions []models.TreePosition, profile *models.VariationProfile) *dartxml.SequenceFile {
	n := len(positions)
	nSim := g.cfg.SequenceCount

	var entries []dartxml.SequencerEntry

	if g.cfg.Vary.Scale {
		for i, pos := range positions {
			args := g.scaleSeries(pos.XScale, profile.ScaleJitter, nSim)
			for _, axis := range []string{"x", "y", "z"} {
				entries = append(entries, dartxml.SequencerEntry{
					Args: args,
					PropertyName: fmt.Sprintf(
						"object_3d.ObjectList.Object[%d].GeometricProperties.ScaleProperties.%sscale", i, axis),
					Type: "enumerate",
				})
			}
		}
	}

	if g.cfg.Vary.SoilTemperature || g.cfg.Vary.TreeTemperature {
		soil, leaf, trunk := g.temperatureSeries(profile, n, nSim)

		if g.cfg.Vary.SoilTemperature {
			entries = append(entries, dartxml.SequencerEntry{
				Args:         soil,
				PropertyName: "Coeff_diff.Temperatures.ThermalFunction[0].meanT",
				Type:         "enumerate",
			})
		}

		// Per-tree thermal entries sit at indices 1..n (leaves) and
		// n+1..2n (trunks) in the generated coeff_diff.xml.
		if g.cfg.Vary.TreeTemperature {
			for i := 0; i < n; i++ {
				entries = append(entries, dartxml.SequencerEntry{
					Args:         leaf[i],
					PropertyName: fmt.Sprintf("Coeff_diff.Temperatures.ThermalFunction[%d].meanT", i+1),
					Type:         "enumerate",
				})
			}
			for i := 0; i < n; i++ {
				entries = append(entries, dartxml.SequencerEntry{
					Args:         trunk[i],
					PropertyName: fmt.Sprintf("Coeff_diff.Temperatures.ThermalFunction[%d].meanT", i+n+1),
					Type:         "enumerate",
				})
			}
		}
	}

	if g.cfg.Vary.Chlorophyl {
		args := g.rangeSeries(profile.Chlorophyll, nSim)
		for i := 0; i < n; i++ {
			entries = append(entries, dartxml.SequencerEntry{
				Args: args,
				PropertyName: fmt.Sprintf(
					"Coeff_diff.Surfaces.LambertianMultiFunctions.LambertianMulti[%d].Lambertian.ProspectExternalModule.ProspectExternParameters.Cab", i),
				Type: "enumerate",
			})
		}
	}

	if g.cfg.Vary.WaterThickness {
		args := g.rangeSeries(profile.WaterThickness, nSim)
		for i := 0; i < n; i++ {
			entries = append(entries, dartxml.SequencerEntry{
				Args: args,
				PropertyName: fmt.Sprintf(
					"Coeff_diff.Surfaces.LambertianMultiFunctions.LambertianMulti[%d].Lambertian.ProspectExternalModule.ProspectExternParameters.Cw", i),
				Type: "enumerate",
			})
		}
	}

	return &dartxml.SequenceFile{
		Version: "1.0",
		Descriptor: dartxml.SequencerDescriptor{
			SequenceName: "sequence;;sequence",
			Entries: dartxml.SequencerEntries{
				Group: dartxml.SequencerGroup{
					CurrentDisplayedPage: "1",
					GroupName:            "group1",
					Entries:              entries,
				},
			},
			Preferences:    dartxml.DefaultSequencerPreferences(),
			LutPreferences: dartxml.DefaultLutPreferences(),
		},
	}
}

// rangeSeries draws nSim values uniformly from r, semicolon-joined.
func (g *Sequence) rangeSeries(r models.Range, nSim int) string {
	vals := make([]string, nSim)
	for i := range vals {
		vals[i] = dartxml.Ftoa(r.Min + g.rng.Float64()*r.Width())
	}
	return strings.Join(vals, ";")
}

// scaleSeries jitters base by ±jitter relative, nSim draws.
func (g *Sequence) scaleSeries(base, jitter float64, nSim int) string {
	vals := make([]string, nSim)
	for i := range vals {
		factor := 1 - jitter + 2*jitter*g.rng.Float64()
		vals[i] = dartxml.Ftoa(base * factor)
	}
	return strings.Join(vals, ";")
}

// temperatureSeries draws a soil temperature per simulation, with leaf
// and trunk temperatures per tree sitting below it by the profile's
// cooling ranges.
func (g *Sequence) temperatureSeries(profile *models.VariationProfile, n, nSim int) (soil string, leaf, trunk []string) {
	soilVals := make([]string, nSim)
	leafVals := make([][]string, n)
	trunkVals := make([][]string, n)
	for i := 0; i < n; i++ {
		leafVals[i] = make([]string, nSim)
		trunkVals[i] = make([]string, nSim)
	}

	for s := 0; s < nSim; s++ {
		soilT := profile.SoilTemperature.Min + g.rng.Float64()*profile.SoilTemperature.Width()
		soilVals[s] = dartxml.Ftoa(soilT)
		for i := 0; i < n; i++ {
			leafVals[i][s] = dartxml.Ftoa(soilT - (profile.LeafCooling.Min + g.rng.Float64()*profile.LeafCooling.Width()))
			trunkVals[i][s] = dartxml.Ftoa(soilT - (profile.TrunkCooling.Min + g.rng.Float64()*profile.TrunkCooling.Width()))
		}
	}

	leaf = make([]string, n)
	trunk = make([]string, n)
	for i := 0; i < n; i++ {
		leaf[i] = strings.Join(leafVals[i], ";")
		trunk[i] = strings.Join(trunkVals[i], ";")
	}
	return strings.Join(soilVals, ";"), leaf, trunk
}

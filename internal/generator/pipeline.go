package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/models"
	"github.com/dart-prep/dartprep/internal/parser"
	"github.com/dart-prep/dartprep/internal/storage"
)

// Pipeline runs the full preparation: coeff-diff, maket, objects, and
// (when run_sequencer is set) sequence. Steps run in order; a failed
// step is recorded and the remaining steps still run, mirroring the
// fact that each output is independently useful.
type Pipeline struct {
	cfg        *config.Config
	configPath string
	store      *storage.OutputStore
	log        *zap.Logger
}

// NewPipeline creates a preparation pipeline.
func NewPipeline(configPath string, cfg *config.Config, log *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		configPath: configPath,
		store:      storage.NewOutputStore(),
		log:        log,
	}
}

// Run executes all steps and writes prepare_report.json to the
// simulation root. The returned report is complete even when the run
// error is non-nil.
func (p *Pipeline) Run() (*models.RunReport, error) {
	if _, err := os.Stat(p.cfg.Paths.SimulationPath); err != nil {
		return nil, fmt.Errorf("simulation path: %w", err)
	}

	report := &models.RunReport{
		RunID:      uuid.NewString(),
		ConfigPath: p.configPath,
		StartedAt:  time.Now().UTC(),
		TreeCount:  parser.CountTrees(p.cfg.Paths.PositionTxtPath, p.log),
	}

	steps := []struct {
		name string
		run  func() error
		skip bool
	}{
		{"coeff-diff", NewCoeffDiff(p.cfg, p.store, p.log).Run, false},
		{"maket", NewMaket(p.cfg, p.store, p.log).Run, false},
		{"objects", NewObjects(p.cfg, p.store, p.log).Run, false},
		{"sequence", NewSequence(p.cfg, p.store, p.log).Run, !p.cfg.Settings.RunSequencer},
	}

	failed := 0
	for _, step := range steps {
		if step.skip {
			report.Steps = append(report.Steps, models.StepResult{Name: step.name, Status: "skipped"})
			continue
		}

		start := time.Now()
		err := step.run()
		result := models.StepResult{
			Name:     step.name,
			Status:   "ok",
			Duration: time.Since(start),
		}
		if err != nil {
			result.Status = "failed"
			result.Error = err.Error()
			failed++
			p.log.Error("pipeline step failed", zap.String("step", step.name), zap.Error(err))
		}
		report.Steps = append(report.Steps, result)
	}

	report.FinishedAt = time.Now().UTC()
	report.Artifacts = p.store.Artifacts()

	if err := p.writeReport(report); err != nil {
		p.log.Warn("failed to write run report", zap.Error(err))
	}

	if failed > 0 {
		return report, fmt.Errorf("%d of %d steps failed", failed, len(steps))
	}
	return report, nil
}

func (p *Pipeline) writeReport(report *models.RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	return p.store.Write(filepath.Join(p.cfg.Paths.SimulationPath, reportFileName), append(data, '\n'))
}

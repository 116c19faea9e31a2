package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/models"
)

func stepStatuses(report *models.RunReport) map[string]string {
	statuses := make(map[string]string, len(report.Steps))
	for _, step := range report.Steps {
		statuses[step.Name] = step.Status
	}
	return statuses
}

func TestPipelineFullRun(t *testing.T) {
	cfg := newFixture(t, fixtureOpts{
		runSequencer: true, seqCount: 2,
		scale: true, treeTemp: true,
		maketXML: defaultMaket,
	})

	report, err := NewPipeline(filepath.Join(cfg.Dir(), "config.json"), cfg, zap.NewNop()).Run()
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.TreeCount)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	statuses := stepStatuses(report)
	assert.Equal(t, "ok", statuses["coeff-diff"])
	assert.Equal(t, "ok", statuses["maket"])
	assert.Equal(t, "ok", statuses["objects"])
	assert.Equal(t, "ok", statuses["sequence"])

	for _, name := range []string{
		filepath.Join(cfg.InputDir(), "coeff_diff.xml"),
		filepath.Join(cfg.InputDir(), "object_3d.xml"),
		filepath.Join(cfg.InputDir(), "maket.xml"),
		filepath.Join(cfg.Paths.SimulationPath, "sequence.xml"),
	} {
		_, err := os.Stat(name)
		assert.NoError(t, err, name)
	}

	// Four step outputs plus the run report itself.
	assert.Len(t, report.Artifacts, 4)

	reportData, err := os.ReadFile(filepath.Join(cfg.Paths.SimulationPath, "prepare_report.json"))
	require.NoError(t, err)
	var written models.RunReport
	require.NoError(t, json.Unmarshal(reportData, &written))
	assert.Equal(t, report.RunID, written.RunID)
}

func TestPipelineSkipsSequenceWhenDisabled(t *testing.T) {
	cfg := newFixture(t, fixtureOpts{maketXML: defaultMaket})

	report, err := NewPipeline("config.json", cfg, zap.NewNop()).Run()
	require.NoError(t, err)

	assert.Equal(t, "skipped", stepStatuses(report)["sequence"])
	_, statErr := os.Stat(filepath.Join(cfg.Paths.SimulationPath, "sequence.xml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineRecordsFailedStepAndContinues(t *testing.T) {
	// No maket.xml: the maket step fails, the rest still runs.
	cfg := newFixture(t, fixtureOpts{})

	report, err := NewPipeline("config.json", cfg, zap.NewNop()).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 steps failed")
	require.NotNil(t, report)

	statuses := stepStatuses(report)
	assert.Equal(t, "ok", statuses["coeff-diff"])
	assert.Equal(t, "failed", statuses["maket"])
	assert.Equal(t, "ok", statuses["objects"])

	for _, step := range report.Steps {
		if step.Name == "maket" {
			assert.Contains(t, step.Error, "maket.xml")
		}
	}

	_, statErr := os.Stat(filepath.Join(cfg.InputDir(), "object_3d.xml"))
	assert.NoError(t, statErr)
}

func TestPipelineMissingSimulationPath(t *testing.T) {
	cfg := newFixture(t, fixtureOpts{})
	require.NoError(t, os.RemoveAll(cfg.Paths.SimulationPath))

	report, err := NewPipeline("config.json", cfg, zap.NewNop()).Run()
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "simulation path")
}

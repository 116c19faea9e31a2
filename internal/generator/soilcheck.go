package generator

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/models"
	"github.com/dart-prep/dartprep/internal/parser"
)

// CheckSoils verifies the soil-factor directory: the path must exist
// and be a directory, and each soil subfolder should carry one band
// file per spectral band. It returns the folders that pass validation.
// Warnings are conditioned on which modes actually depend on soils.
func CheckSoils(cfg *config.Config, log *zap.Logger) ([]models.SoilFolder, error) {
	soilPath := cfg.Paths.SoilFactorPath
	if soilPath == "" {
		return nil, fmt.Errorf("no soil_factor_path configured")
	}

	info, err := os.Stat(soilPath)
	if err != nil || !info.IsDir() {
		if cfg.Settings.MultiSol {
			log.Warn("multi_sol is enabled but the soil factor directory is missing",
				zap.String("path", soilPath))
		}
		if cfg.Settings.RunSequencer {
			log.Warn("run_sequencer is enabled; the sequencer will run with default soil only")
		}
		if err != nil {
			return nil, fmt.Errorf("soil factor directory: %w", err)
		}
		return nil, fmt.Errorf("soil factor path is not a directory: %s", soilPath)
	}

	folders, err := parser.ScanSoilFolders(soilPath)
	if err != nil {
		return nil, err
	}

	intervals, err := parser.ResolveSpectralIntervals(cfg.Paths.SimulationPath)
	if err != nil {
		log.Warn("spectral intervals unavailable, skipping band-count validation", zap.Error(err))
		return folders, nil
	}

	valid := parser.ValidateSoilFolders(folders, intervals, log)
	if len(valid) == 0 {
		log.Warn("no soil folders with the expected band-file count",
			zap.Int("bands", len(intervals)))
	}
	for _, folder := range valid {
		log.Info("soil folder valid", zap.String("name", folder.Name),
			zap.Int("bandFiles", len(folder.BandFiles)))
	}
	return valid, nil
}

package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/models"
)

// ScanSoilFolders lists the subfolders of the soil-factor directory and
// the .txt band-factor files inside each, both in sorted order.
func ScanSoilFolders(soilFactorPath string) ([]models.SoilFolder, error) {
	entries, err := os.ReadDir(soilFactorPath)
	if err != nil {
		return nil, fmt.Errorf("reading soil factor directory: %w", err)
	}

	folders := make([]models.SoilFolder, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(soilFactorPath, entry.Name())

		inner, err := os.ReadDir(dirPath)
		if err != nil {
			return nil, fmt.Errorf("reading soil folder %s: %w", entry.Name(), err)
		}

		var bandFiles []string
		for _, f := range inner {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".txt") {
				bandFiles = append(bandFiles, f.Name())
			}
		}
		sort.Strings(bandFiles)

		folders = append(folders, models.SoilFolder{
			Name:      entry.Name(),
			Path:      dirPath,
			BandFiles: bandFiles,
		})
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

// ValidateSoilFolders keeps only those folders whose band-file count
// matches the number of spectral bands. Mismatching folders are skipped
// with a warning.
func ValidateSoilFolders(folders []models.SoilFolder, intervals models.SpectralIntervals, log *zap.Logger) []models.SoilFolder {
	valid := make([]models.SoilFolder, 0, len(folders))
	for _, folder := range folders {
		if len(folder.BandFiles) != len(intervals) {
			log.Warn("soil folder band-file count does not match spectral bands",
				zap.String("folder", folder.Name),
				zap.Int("files", len(folder.BandFiles)),
				zap.Int("bands", len(intervals)))
			continue
		}
		valid = append(valid, folder)
	}
	return valid
}

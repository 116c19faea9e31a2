package parser

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/models"
)

func writeSoilTree(t *testing.T, folders map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for name, files := range folders {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating soil folder: %v", err)
		}
		for _, f := range files {
			if err := os.WriteFile(filepath.Join(dir, f), []byte("0.5\n"), 0644); err != nil {
				t.Fatalf("writing band file: %v", err)
			}
		}
	}
	return root
}

func TestScanSoilFolders(t *testing.T) {
	root := writeSoilTree(t, map[string][]string{
		"loam": {"band_1.txt", "band_0.txt", "notes.csv"},
		"clay": {"band_0.txt"},
	})
	// Loose files at the root are not soil folders.
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("writing loose file: %v", err)
	}

	folders, err := ScanSoilFolders(root)
	if err != nil {
		t.Fatalf("ScanSoilFolders failed: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("Expected 2 folders, got %d", len(folders))
	}

	if folders[0].Name != "clay" || folders[1].Name != "loam" {
		t.Errorf("Expected sorted folder names [clay loam], got [%s %s]", folders[0].Name, folders[1].Name)
	}
	loam := folders[1]
	if len(loam.BandFiles) != 2 {
		t.Fatalf("Expected 2 band files in loam, got %v", loam.BandFiles)
	}
	if loam.BandFiles[0] != "band_0.txt" || loam.BandFiles[1] != "band_1.txt" {
		t.Errorf("Expected sorted band files, got %v", loam.BandFiles)
	}
}

func TestScanSoilFoldersMissingRoot(t *testing.T) {
	_, err := ScanSoilFolders(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
}

func TestValidateSoilFolders(t *testing.T) {
	intervals := models.SpectralIntervals{0: 0, 1: 2}
	folders := []models.SoilFolder{
		{Name: "ok", BandFiles: []string{"a.txt", "b.txt"}},
		{Name: "short", BandFiles: []string{"a.txt"}},
		{Name: "long", BandFiles: []string{"a.txt", "b.txt", "c.txt"}},
	}

	valid := ValidateSoilFolders(folders, intervals, zap.NewNop())
	if len(valid) != 1 {
		t.Fatalf("Expected 1 valid folder, got %d", len(valid))
	}
	if valid[0].Name != "ok" {
		t.Errorf("Expected folder ok, got %s", valid[0].Name)
	}
}

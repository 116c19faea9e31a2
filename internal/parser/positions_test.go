package parser

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writePositions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "positions.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing position fixture: %v", err)
	}
	return path
}

func TestParsePositions(t *testing.T) {
	path := writePositions(t, `// index x y z xscale yscale zscale xrot yrot zrot
complete transformation

0 1.5 2.5 0.0 1.0 1.0 1.0 0.0 0.0 0.0
1 -3.25 4.75 0.0 0.8 0.8 0.8 0.0 0.0 45.0
`)

	positions, errs, err := ParsePositions(path)
	if err != nil {
		t.Fatalf("ParsePositions failed: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("Expected no line errors, got %v", errs)
	}
	if len(positions) != 2 {
		t.Fatalf("Expected 2 positions, got %d", len(positions))
	}

	first := positions[0]
	if first.Index != 0 || first.XPos != 1.5 || first.YPos != 2.5 {
		t.Errorf("Unexpected first position: %+v", first)
	}
	second := positions[1]
	if second.XPos != -3.25 || second.XScale != 0.8 || second.ZRot != 45.0 {
		t.Errorf("Unexpected second position: %+v", second)
	}
}

func TestParsePositionsReportsBadLines(t *testing.T) {
	path := writePositions(t, `0 1.0 2.0 0.0 1.0 1.0 1.0 0.0 0.0 0.0
1 2.0 3.0
2 abc 3.0 0.0 1.0 1.0 1.0 0.0 0.0 0.0
3 4.0 5.0 0.0 1.0 1.0 1.0 0.0 0.0 0.0
`)

	positions, errs, err := ParsePositions(path)
	if err != nil {
		t.Fatalf("ParsePositions failed: %v", err)
	}
	if len(positions) != 2 {
		t.Errorf("Expected 2 valid positions, got %d", len(positions))
	}
	if len(errs) != 2 {
		t.Fatalf("Expected 2 line errors, got %d", len(errs))
	}
	if errs[0].Line != 2 {
		t.Errorf("Expected first error on line 2, got %d", errs[0].Line)
	}
	if errs[1].Line != 3 {
		t.Errorf("Expected second error on line 3, got %d", errs[1].Line)
	}
}

func TestParsePositionsMissingFile(t *testing.T) {
	_, _, err := ParsePositions(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestCountTrees(t *testing.T) {
	path := writePositions(t, `complete transformation
0 1.0 2.0 0.0 1.0 1.0 1.0 0.0 0.0 0.0
bad line
1 2.0 3.0 0.0 1.0 1.0 1.0 0.0 0.0 0.0
`)

	if n := CountTrees(path, zap.NewNop()); n != 2 {
		t.Errorf("Expected 2 trees, got %d", n)
	}
}

func TestCountTreesUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	if n := CountTrees(path, zap.NewNop()); n != 0 {
		t.Errorf("Expected 0 trees for missing file, got %d", n)
	}
}

package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dart-prep/dartprep/internal/models"
)

func writePhase(t *testing.T, content string) string {
	t.Helper()
	simPath := t.TempDir()
	inputDir := filepath.Join(simPath, "input")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		t.Fatalf("creating input dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inputDir, "phase.xml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing phase fixture: %v", err)
	}
	return simPath
}

func TestResolveSpectralIntervals(t *testing.T) {
	simPath := writePhase(t, `<?xml version="1.0" encoding="UTF-8"?>
<DartFile version="5.10.6">
    <Phase>
        <DartInputParameters>
            <SpectralIntervals>
                <SpectralIntervalsProperties bandNumber="0" spectralDartMode="0" meanLambda="0.56"/>
                <SpectralIntervalsProperties bandNumber="1" spectralDartMode="0" meanLambda="0.66"/>
                <SpectralIntervalsProperties bandNumber="2" spectralDartMode="2" meanLambda="10.5"/>
            </SpectralIntervals>
        </DartInputParameters>
    </Phase>
</DartFile>`)

	intervals, err := ResolveSpectralIntervals(simPath)
	if err != nil {
		t.Fatalf("ResolveSpectralIntervals failed: %v", err)
	}

	want := models.SpectralIntervals{0: 0, 1: 0, 2: 2}
	if diff := cmp.Diff(want, intervals); diff != "" {
		t.Errorf("Intervals mismatch (-want +got):\n%s", diff)
	}
	if !intervals.IsThermal(2) {
		t.Error("Expected band 2 to be thermal")
	}
	if intervals.IsThermal(0) {
		t.Error("Expected band 0 to be reflective")
	}
}

func TestResolveSpectralIntervalsNoBands(t *testing.T) {
	simPath := writePhase(t, `<?xml version="1.0"?>
<DartFile version="5.10.6"><Phase></Phase></DartFile>`)

	_, err := ResolveSpectralIntervals(simPath)
	if !errors.Is(err, ErrSpectralUnavailable) {
		t.Fatalf("Expected ErrSpectralUnavailable, got %v", err)
	}
}

func TestResolveSpectralIntervalsMissingFile(t *testing.T) {
	_, err := ResolveSpectralIntervals(t.TempDir())
	if !errors.Is(err, ErrSpectralUnavailable) {
		t.Fatalf("Expected ErrSpectralUnavailable, got %v", err)
	}
}

func TestResolveSpectralIntervalsMalformedXML(t *testing.T) {
	simPath := writePhase(t, `<DartFile><Phase><unclosed`)

	_, err := ResolveSpectralIntervals(simPath)
	if !errors.Is(err, ErrSpectralUnavailable) {
		t.Fatalf("Expected ErrSpectralUnavailable, got %v", err)
	}
}

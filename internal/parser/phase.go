package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dart-prep/dartprep/internal/models"
)

// ErrSpectralUnavailable marks a failed spectral-interval resolution.
// Callers may downgrade it to a warning and fall back to default soil.
var ErrSpectralUnavailable = errors.New("spectral intervals unavailable")

// ResolveSpectralIntervals extracts the band number to spectralDartMode
// mapping from <simulationPath>/input/phase.xml. The elements are found
// by streaming tokens, so the surrounding document structure does not
// need to be modeled.
func ResolveSpectralIntervals(simulationPath string) (models.SpectralIntervals, error) {
	phasePath := filepath.Join(simulationPath, "input", "phase.xml")

	file, err := os.Open(phasePath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrSpectralUnavailable, phasePath, err)
	}
	defer file.Close()

	intervals := models.SpectralIntervals{}
	dec := xml.NewDecoder(file)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrSpectralUnavailable, phasePath, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "SpectralIntervalsProperties" {
			continue
		}

		band, mode, ok := spectralAttrs(start)
		if !ok {
			continue
		}
		intervals[band] = mode
	}

	if len(intervals) == 0 {
		return nil, fmt.Errorf("%w: no spectral intervals in %s", ErrSpectralUnavailable, phasePath)
	}
	return intervals, nil
}

func spectralAttrs(start xml.StartElement) (band, mode int, ok bool) {
	var bandStr, modeStr string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "bandNumber":
			bandStr = attr.Value
		case "spectralDartMode":
			modeStr = attr.Value
		}
	}
	if bandStr == "" || modeStr == "" {
		return 0, 0, false
	}

	band, err := strconv.Atoi(bandStr)
	if err != nil {
		return 0, 0, false
	}
	mode, err = strconv.Atoi(modeStr)
	if err != nil {
		return 0, 0, false
	}
	return band, mode, true
}

// Package parser reads the text and XML inputs the generators work from:
// the tree position file, phase.xml spectral intervals, the soil-factor
// directory, the 3D model directory, and the optional variation profile.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/models"
)

// positionFieldCount is the number of whitespace-separated values per
// data line: index, x/y/z position, x/y/z scale, x/y/z rotation.
const positionFieldCount = 10

// ParsePositions reads the tree position file. Blank lines, //-comments
// and the "complete transformation" marker line are skipped. Data lines
// that do not parse are reported per line without aborting the rest of
// the file. Record order defines the 0-based tree index.
func ParsePositions(path string) ([]models.TreePosition, []models.PositionError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening position file: %w", err)
	}
	defer file.Close()

	positions := make([]models.TreePosition, 0)
	errs := make([]models.PositionError, 0)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || line == "complete transformation" {
			continue
		}

		pos, reason := parsePositionLine(line)
		if reason != "" {
			errs = append(errs, models.PositionError{Line: lineNum, Content: line, Reason: reason})
			continue
		}
		positions = append(positions, pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading position file: %w", err)
	}

	return positions, errs, nil
}

func parsePositionLine(line string) (models.TreePosition, string) {
	fields := strings.Fields(line)
	if len(fields) != positionFieldCount {
		return models.TreePosition{}, fmt.Sprintf("expected %d fields, got %d", positionFieldCount, len(fields))
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.TreePosition{}, "invalid index field"
	}

	vals := make([]float64, positionFieldCount-1)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return models.TreePosition{}, fmt.Sprintf("invalid numeric field %q", f)
		}
		vals[i] = v
	}

	return models.TreePosition{
		Index:  index,
		XPos:   vals[0],
		YPos:   vals[1],
		ZPos:   vals[2],
		XScale: vals[3],
		YScale: vals[4],
		ZScale: vals[5],
		XRot:   vals[6],
		YRot:   vals[7],
		ZRot:   vals[8],
	}, ""
}

// CountTrees returns the number of position records in the file. An
// unreadable file counts as zero trees with a warning rather than an
// error; callers must treat zero as "abort generation".
func CountTrees(path string, log *zap.Logger) int {
	positions, errs, err := ParsePositions(path)
	if err != nil {
		log.Warn("position file unreadable, counting zero trees",
			zap.String("path", path), zap.Error(err))
		return 0
	}
	for _, pe := range errs {
		log.Warn("skipping malformed position line",
			zap.Int("line", pe.Line), zap.String("reason", pe.Reason))
	}
	return len(positions)
}

// Package generator builds the DART input documents: coeff_diff.xml,
// object_3d.xml, the maket.xml patch, and sequence.xml.
package generator

import (
	"errors"
	"strconv"
)

// Input-data failures. These are fatal: a generator never writes a
// degenerate document in their place.
var (
	// ErrNoPositions means the position file yielded zero tree records.
	ErrNoPositions = errors.New("no tree positions found")
	// ErrNoModelFiles means the model directory contains no .obj files.
	ErrNoModelFiles = errors.New("no model files found")
	// ErrMaketMissing means maket.xml is absent from the input directory.
	ErrMaketMissing = errors.New("maket.xml not found")
)

// DART database and model names shared by the generated optical entries.
const (
	leafModelName   = "reflect_equal_1_trans_equal_0_0"
	trunkModelName  = "bark_spruce"
	vegetationDB    = "Lambertian_vegetation.db"
	mineralDB       = "Lambertian_mineral.db"
	defaultSoilName = "soil"

	// pooledTemperatureID covers all trees when per-tree thermal
	// entries are disabled.
	pooledTemperatureID = "Temperature_290_310"
	soilTemperatureID   = "Temp_soil"
)

// Generated file names under <simulation>/input/ and the simulation root.
const (
	coeffDiffFileName = "coeff_diff.xml"
	objectFileName    = "object_3d.xml"
	maketFileName     = "maket.xml"
	sequenceFileName  = "sequence.xml"
	reportFileName    = "prepare_report.json"
	profileFileName   = "variation.yaml"
)

func leafIdent(index int) string      { return "leaf_" + strconv.Itoa(index) }
func leafThermalID(index int) string  { return "Temp_leaf_" + strconv.Itoa(index) }
func trunkThermalID(index int) string { return "Temp_trunk_" + strconv.Itoa(index) }
func soilIdent(name string) string    { return "soil_" + name }

package models

import "sort"

// Spectral DART modes as used in phase.xml. Mode 2 marks a thermal band,
// whose soil correction applies to transmittance rather than reflectance.
const (
	SpectralModeReflectance = 0
	SpectralModeThermal     = 2
)

// SpectralIntervals maps band number to its spectralDartMode flag.
type SpectralIntervals map[int]int

// BandNumbers returns the band numbers in ascending order.
func (s SpectralIntervals) BandNumbers() []int {
	nums := make([]int, 0, len(s))
	for n := range s {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// IsThermal reports whether the given band is a thermal band.
func (s SpectralIntervals) IsThermal(band int) bool {
	return s[band] == SpectralModeThermal
}

// SoilFolder describes one subfolder of the soil-factor directory.
type SoilFolder struct {
	Name      string   `json:"name"`
	Path      string   `json:"path"`
	BandFiles []string `json:"bandFiles"`
}

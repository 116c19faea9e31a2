package models

// TreePosition is one record of the tree position file: the complete
// transform of a single tree instance. Record order in the file defines
// the 0-based tree index.
type TreePosition struct {
	Index  int     `json:"index"`
	XPos   float64 `json:"xpos"`
	YPos   float64 `json:"ypos"`
	ZPos   float64 `json:"zpos"`
	XScale float64 `json:"xscale"`
	YScale float64 `json:"yscale"`
	ZScale float64 `json:"zscale"`
	XRot   float64 `json:"xrot"`
	YRot   float64 `json:"yrot"`
	ZRot   float64 `json:"zrot"`
}

// PositionError reports a data line that could not be parsed as a position record.
type PositionError struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

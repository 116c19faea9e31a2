package dartxml

import "encoding/xml"

// SequenceFile is the root of sequence.xml.
type SequenceFile struct {
	XMLName    xml.Name            `xml:"DartFile"`
	Version    string              `xml:"version,attr"`
	Descriptor SequencerDescriptor `xml:"DartSequencerDescriptor"`
}

type SequencerDescriptor struct {
	SequenceName   string               `xml:"sequenceName,attr"`
	Entries        SequencerEntries     `xml:"DartSequencerDescriptorEntries"`
	Preferences    SequencerPreferences `xml:"DartSequencerPreferences"`
	LutPreferences LutPreferences       `xml:"DartLutPreferences"`
}

type SequencerEntries struct {
	Group SequencerGroup `xml:"DartSequencerDescriptorGroup"`
}

type SequencerGroup struct {
	CurrentDisplayedPage string           `xml:"currentDisplayedPage,attr"`
	GroupName            string           `xml:"groupName,attr"`
	Entries              []SequencerEntry `xml:"DartSequencerDescriptorEntry"`
}

// SequencerEntry enumerates the values one DART property takes across
// the sequence, semicolon-joined in Args.
type SequencerEntry struct {
	Args         string `xml:"args,attr"`
	PropertyName string `xml:"propertyName,attr"`
	Type         string `xml:"type,attr"`
}

// SequencerPreferences are the fixed sequencer launch switches.
type SequencerPreferences struct {
	AtmosphereMaketLaunched          string `xml:"atmosphereMaketLaunched,attr"`
	DartLaunched                     string `xml:"dartLaunched,attr"`
	DeleteAll                        string `xml:"deleteAll,attr"`
	DeleteAtmosphere                 string `xml:"deleteAtmosphere,attr"`
	DeleteAtmosphereMaket            string `xml:"deleteAtmosphereMaket,attr"`
	DeleteBandFolder                 string `xml:"deleteBandFolder,attr"`
	DeleteDartLut                    string `xml:"deleteDartLut,attr"`
	DeleteDartSequenceur             string `xml:"deleteDartSequenceur,attr"`
	DeleteDartTxt                    string `xml:"deleteDartTxt,attr"`
	DeleteDirection                  string `xml:"deleteDirection,attr"`
	DeleteInputs                     string `xml:"deleteInputs,attr"`
	DeleteLibPhase                   string `xml:"deleteLibPhase,attr"`
	DeleteMaket                      string `xml:"deleteMaket,attr"`
	DeleteMaketTreeResults           string `xml:"deleteMaketTreeResults,attr"`
	DeletePlyFolder                  string `xml:"deletePlyFolder,attr"`
	DeleteScnFiles                   string `xml:"deleteScnFiles,attr"`
	DeleteTreePosition               string `xml:"deleteTreePosition,attr"`
	DeleteTriangles                  string `xml:"deleteTriangles,attr"`
	DemGeneratorLaunched             string `xml:"demGeneratorLaunched,attr"`
	DirectionLaunched                string `xml:"directionLaunched,attr"`
	DisplayEnabled                   string `xml:"displayEnabled,attr"`
	HapkeLaunched                    string `xml:"hapkeLaunched,attr"`
	IndividualDisplayEnabled         string `xml:"individualDisplayEnabled,attr"`
	MaketLaunched                    string `xml:"maketLaunched,attr"`
	NumberOfEnumerateValuesDisplayed string `xml:"numberOfEnumerateValuesDisplayed,attr"`
	NumberParallelThreads            string `xml:"numberParallelThreads,attr"`
	PhaseLaunched                    string `xml:"phaseLaunched,attr"`
	ProspectLaunched                 string `xml:"prospectLaunched,attr"`
	TriangleFileProcessorLaunched    string `xml:"triangleFileProcessorLaunched,attr"`
	UseBroadBand                     string `xml:"useBroadBand,attr"`
	UseSceneSpectra                  string `xml:"useSceneSpectra,attr"`
	VegetationLaunched               string `xml:"vegetationLaunched,attr"`
	ZippedResults                    string `xml:"zippedResults,attr"`
}

// DefaultSequencerPreferences returns the launch switches used for every
// generated sequence.
func DefaultSequencerPreferences() SequencerPreferences {
	return SequencerPreferences{
		AtmosphereMaketLaunched:          "true",
		DartLaunched:                     "true",
		DeleteAll:                        "false",
		DeleteAtmosphere:                 "false",
		DeleteAtmosphereMaket:            "false",
		DeleteBandFolder:                 "false",
		DeleteDartLut:                    "false",
		DeleteDartSequenceur:             "false",
		DeleteDartTxt:                    "false",
		DeleteDirection:                  "false",
		DeleteInputs:                     "false",
		DeleteLibPhase:                   "false",
		DeleteMaket:                      "false",
		DeleteMaketTreeResults:           "false",
		DeletePlyFolder:                  "false",
		DeleteScnFiles:                   "false",
		DeleteTreePosition:               "false",
		DeleteTriangles:                  "false",
		DemGeneratorLaunched:             "false",
		DirectionLaunched:                "false",
		DisplayEnabled:                   "true",
		HapkeLaunched:                    "false",
		IndividualDisplayEnabled:         "false",
		MaketLaunched:                    "true",
		NumberOfEnumerateValuesDisplayed: "1000",
		NumberParallelThreads:            "4",
		PhaseLaunched:                    "true",
		ProspectLaunched:                 "true",
		TriangleFileProcessorLaunched:    "true",
		UseBroadBand:                     "true",
		UseSceneSpectra:                  "true",
		VegetationLaunched:               "true",
		ZippedResults:                    "false",
	}
}

// LutPreferences are the fixed LUT output switches.
type LutPreferences struct {
	AddedDirection  string `xml:"addedDirection,attr"`
	AtmosToa        string `xml:"atmosToa,attr"`
	AtmosToaOrdre   string `xml:"atmosToaOrdre,attr"`
	Coupl           string `xml:"coupl,attr"`
	Fluorescence    string `xml:"fluorescence,attr"`
	GenerateLUT     string `xml:"generateLUT,attr"`
	Iterx           string `xml:"iterx,attr"`
	Luminance       string `xml:"luminance,attr"`
	MaketCoverage   string `xml:"maketCoverage,attr"`
	Ordre           string `xml:"ordre,attr"`
	OtherIter       string `xml:"otherIter,attr"`
	PhiMax          string `xml:"phiMax,attr"`
	PhiMin          string `xml:"phiMin,attr"`
	ProductsPerType string `xml:"productsPerType,attr"`
	Reflectance     string `xml:"reflectance,attr"`
	Sensor          string `xml:"sensor,attr"`
	StoreIndirect   string `xml:"storeIndirect,attr"`
	ThetaMax        string `xml:"thetaMax,attr"`
	ThetaMin        string `xml:"thetaMin,attr"`
	Toa             string `xml:"toa,attr"`
}

// DefaultLutPreferences returns the LUT switches used for every
// generated sequence.
func DefaultLutPreferences() LutPreferences {
	return LutPreferences{
		AddedDirection:  "false",
		AtmosToa:        "false",
		AtmosToaOrdre:   "false",
		Coupl:           "true",
		Fluorescence:    "true",
		GenerateLUT:     "false",
		Iterx:           "true",
		Luminance:       "true",
		MaketCoverage:   "false",
		Ordre:           "true",
		OtherIter:       "true",
		PhiMax:          "",
		PhiMin:          "",
		ProductsPerType: "false",
		Reflectance:     "true",
		Sensor:          "true",
		StoreIndirect:   "false",
		ThetaMax:        "",
		ThetaMin:        "",
		Toa:             "true",
	}
}

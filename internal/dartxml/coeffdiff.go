package dartxml

import "encoding/xml"

// CoeffDiffFile is the root of coeff_diff.xml.
type CoeffDiffFile struct {
	XMLName   xml.Name  `xml:"DartFile"`
	Build     string    `xml:"build,attr"`
	Version   string    `xml:"version,attr"`
	CoeffDiff CoeffDiff `xml:"Coeff_diff"`
}

// CoeffDiff holds the optical and thermal property definitions the
// scene objects reference by ident.
type CoeffDiff struct {
	FluorescenceFile     string       `xml:"fluorescenceFile,attr"`
	FluorescenceProducts string       `xml:"fluorescenceProducts,attr"`
	UseCombinedYield     string       `xml:"useCombinedYield,attr"`
	Surfaces             Surfaces     `xml:"Surfaces"`
	Volumes              Volumes      `xml:"Volumes"`
	Temperatures         Temperatures `xml:"Temperatures"`
}

// Surfaces groups the surface property function families. Only the
// Lambertian family is populated; the rest must exist but stay empty.
type Surfaces struct {
	LambertianMultiFunctions    LambertianMultiFunctions `xml:"LambertianMultiFunctions"`
	HapkeSpecularMultiFunctions Empty                    `xml:"HapkeSpecularMultiFunctions"`
	RPVMultiFunctions           Empty                    `xml:"RPVMultiFunctions"`
	PhaseExternMultiFunctions   Empty                    `xml:"PhaseExternMultiFunctions"`
	SpecularMultiFunctions      Empty                    `xml:"SpecularMultiFunctions"`
	MixedMultiFunctions         Empty                    `xml:"MixedMultiFunctions"`
}

type LambertianMultiFunctions struct {
	Functions []LambertianMulti `xml:"LambertianMulti"`
}

// LambertianMulti is one optical property definition.
type LambertianMulti struct {
	Ident                         string          `xml:"ident,attr"`
	LambertianDefinition          string          `xml:"lambertianDefinition,attr"`
	RoStDev                       string          `xml:"roStDev,attr"`
	UseMultiplicativeFactorForLUT string          `xml:"useMultiplicativeFactorForLUT,attr"`
	Lambertian                    Lambertian      `xml:"Lambertian"`
	FactorNode                    *SoilFactorNode `xml:"lambertianNodeMultiplicativeFactorForLUT"`
}

type Lambertian struct {
	ModelName    string                 `xml:"ModelName,attr"`
	DatabaseName string                 `xml:"databaseName,attr"`
	UseSpecular  string                 `xml:"useSpecular,attr"`
	Prospect     ProspectExternalModule `xml:"ProspectExternalModule"`
}

// ProspectExternalModule toggles the Prospect leaf model. Params is set
// only when the module is enabled.
type ProspectExternalModule struct {
	IsFluorescent             string          `xml:"isFluorescent,attr"`
	UseProspectExternalModule string          `xml:"useProspectExternalModule,attr"`
	Params                    *ProspectParams `xml:"ProspectExternParameters"`
}

// ProspectParams are the biochemical leaf model parameters.
type ProspectParams struct {
	CBrown            string `xml:"CBrown,attr"`
	Cab               string `xml:"Cab,attr"`
	Car               string `xml:"Car,attr"`
	Cbc               string `xml:"Cbc,attr"`
	Cm                string `xml:"Cm,attr"`
	Cp                string `xml:"Cp,attr"`
	Cw                string `xml:"Cw,attr"`
	N                 string `xml:"N,attr"`
	Anthocyanin       string `xml:"anthocyanin,attr"`
	InputProspectFile string `xml:"inputProspectFile,attr"`
	IsV2Z             string `xml:"isV2Z,attr"`
	UseCm             string `xml:"useCm,attr"`
}

// SoilFactorNode carries the per-band multiplicative correction matrix
// of a multi-soil optical entry.
type SoilFactorNode struct {
	UseSameFactorForAllBands string       `xml:"useSameFactorForAllBands,attr"`
	Bands                    []BandFactor `xml:"lambertianMultiplicativeFactorForLUT"`
}

// BandFactor is the correction for a single spectral band. Thermal
// bands (spectralDartMode 2) correct transmittance, reflective bands
// correct reflectance.
type BandFactor struct {
	BandNumber                 string `xml:"bandNumber,attr"`
	SpectralDartMode           string `xml:"spectralDartMode,attr"`
	ReflectanceFactor          string `xml:"reflectanceFactor,attr"`
	DiffuseTransmittanceFactor string `xml:"diffuseTransmittanceFactor,attr"`
	DirectTransmittanceFactor  string `xml:"directTransmittanceFactor,attr"`
	FactorFile                 string `xml:"opticalFactorMatrixFile,attr"`
}

// Volumes holds the volume property families; attribute values are
// fixed by the DART template.
type Volumes struct {
	Understory UnderstoryMultiFunctions `xml:"UnderstoryMultiFunctions"`
	Air        Empty                    `xml:"AirMultiFunctions"`
}

type UnderstoryMultiFunctions struct {
	IntegrationStepOnPhi   string `xml:"integrationStepOnPhi,attr"`
	IntegrationStepOnTheta string `xml:"integrationStepOnTheta,attr"`
	OutputLADFile          string `xml:"outputLADFile,attr"`
}

type Temperatures struct {
	Functions []ThermalFunction `xml:"ThermalFunction"`
}

// ThermalFunction is one thermal property definition.
type ThermalFunction struct {
	DeltaT                   string `xml:"deltaT,attr"`
	IDTemperature            string `xml:"idTemperature,attr"`
	MeanT                    string `xml:"meanT,attr"`
	Override3DMatrix         string `xml:"override3DMatrix,attr"`
	SingleTemperatureSurface string `xml:"singleTemperatureSurface,attr"`
	UseOpticalFactorMatrix   string `xml:"useOpticalFactorMatrix,attr"`
	UsePrecomputedIPARs      string `xml:"usePrecomputedIPARs,attr"`
}

// NewThermalFunction builds a thermal entry with the fixed template flags.
func NewThermalFunction(id string, meanT, deltaT float64) ThermalFunction {
	return ThermalFunction{
		DeltaT:                   Ftoa(deltaT),
		IDTemperature:            id,
		MeanT:                    Ftoa(meanT),
		Override3DMatrix:         "0",
		SingleTemperatureSurface: "1",
		UseOpticalFactorMatrix:   "0",
		UsePrecomputedIPARs:      "0",
	}
}

// NewLambertianMulti builds an optical entry without Prospect parameters.
func NewLambertianMulti(ident, modelName, databaseName string) LambertianMulti {
	return LambertianMulti{
		Ident:                         ident,
		LambertianDefinition:          "0",
		RoStDev:                       "0.0",
		UseMultiplicativeFactorForLUT: "0",
		Lambertian: Lambertian{
			ModelName:    modelName,
			DatabaseName: databaseName,
			UseSpecular:  "0",
			Prospect: ProspectExternalModule{
				IsFluorescent:             "0",
				UseProspectExternalModule: "0",
			},
		},
	}
}

// NewProspectLambertianMulti builds a leaf optical entry with the
// Prospect module enabled.
func NewProspectLambertianMulti(ident, modelName, databaseName string, params ProspectParams) LambertianMulti {
	lm := NewLambertianMulti(ident, modelName, databaseName)
	lm.Lambertian.Prospect.UseProspectExternalModule = "1"
	lm.Lambertian.Prospect.Params = &params
	return lm
}

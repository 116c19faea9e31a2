package dartxml

import "encoding/xml"

// ObjectFile is the root of object_3d.xml.
type ObjectFile struct {
	XMLName  xml.Name `xml:"DartFile"`
	Build    string   `xml:"build,attr"`
	Version  string   `xml:"version,attr"`
	Object3D Object3D `xml:"object_3d"`
}

type Object3D struct {
	GenerateTriangleFileXML string     `xml:"generateTriangleFileXML,attr"`
	Types                   Types      `xml:"Types"`
	ObjectList              ObjectList `xml:"ObjectList"`
	ObjectFields            Empty      `xml:"ObjectFields"`
}

type Types struct {
	DefaultTypes DefaultTypes `xml:"DefaultTypes"`
	CustomTypes  Empty        `xml:"CustomTypes"`
}

type DefaultTypes struct {
	Types []DefaultType `xml:"DefaultType"`
}

type DefaultType struct {
	IndexOT   string `xml:"indexOT,attr"`
	Name      string `xml:"name,attr"`
	TypeColor string `xml:"typeColor,attr"`
}

type ObjectList struct {
	Objects []SceneObject `xml:"Object"`
}

// SceneObject is one placed 3D object instance.
type SceneObject struct {
	FileSrc          string                  `xml:"file_src,attr"`
	HasGroups        string                  `xml:"hasGroups,attr"`
	Hidden           string                  `xml:"hidden,attr"`
	HideRB           string                  `xml:"hideRB,attr"`
	IsDisplayed      string                  `xml:"isDisplayed,attr"`
	Name             string                  `xml:"name,attr"`
	Num              string                  `xml:"num,attr"`
	ObjectColor      string                  `xml:"objectColor,attr"`
	ObjectDEMMode    string                  `xml:"objectDEMMode,attr"`
	RepeatedOnBorder string                  `xml:"repeatedOnBorder,attr"`
	Geometric        GeometricProperties     `xml:"GeometricProperties"`
	Optical          ObjectOpticalProperties `xml:"ObjectOpticalProperties"`
	Type             ObjectTypeProperties    `xml:"ObjectTypeProperties"`
	Groups           Groups                  `xml:"Groups"`
}

type GeometricProperties struct {
	Position PositionProperties `xml:"PositionProperties"`
	Dim      Dimension3D        `xml:"Dimension3D"`
	Center   Center3D           `xml:"Center3D"`
	Scale    ScaleProperties    `xml:"ScaleProperties"`
	Rotation RotationProperties `xml:"RotationProperties"`
}

type PositionProperties struct {
	XPos string `xml:"xpos,attr"`
	YPos string `xml:"ypos,attr"`
	ZPos string `xml:"zpos,attr"`
}

type Dimension3D struct {
	XDim string `xml:"xdim,attr"`
	YDim string `xml:"ydim,attr"`
	ZDim string `xml:"zdim,attr"`
}

type Center3D struct {
	XCenter string `xml:"xCenter,attr"`
	YCenter string `xml:"yCenter,attr"`
	ZCenter string `xml:"zCenter,attr"`
}

type ScaleProperties struct {
	XScaleDeviation string `xml:"xScaleDeviation,attr"`
	XScale          string `xml:"xscale,attr"`
	YScaleDeviation string `xml:"yScaleDeviation,attr"`
	YScale          string `xml:"yscale,attr"`
	ZScaleDeviation string `xml:"zScaleDeviation,attr"`
	ZScale          string `xml:"zscale,attr"`
}

type RotationProperties struct {
	XRotDeviation string `xml:"xRotDeviation,attr"`
	XRot          string `xml:"xrot,attr"`
	YRotDeviation string `xml:"yRotDeviation,attr"`
	YRot          string `xml:"yrot,attr"`
	ZRotDeviation string `xml:"zRotDeviation,attr"`
	ZRot          string `xml:"zrot,attr"`
}

type ObjectOpticalProperties struct {
	IsLAICalc          string `xml:"isLAICalc,attr"`
	IsSingleGlobalLai  string `xml:"isSingleGlobalLai,attr"`
	SameExitanceObject string `xml:"sameExitanceObject,attr"`
	SameOPObject       string `xml:"sameOPObject,attr"`
	Transparent        string `xml:"transparent,attr"`
}

type ObjectTypeProperties struct {
	SameOTObject string `xml:"sameOTObject,attr"`
}

type Groups struct {
	Groups []Group `xml:"Group"`
}

// Group is one named sub-mesh of an object (Leaves or Trunk) with its
// optical and thermal property links.
type Group struct {
	GroupDEMMode string                 `xml:"groupDEMMode,attr"`
	Hidden       string                 `xml:"hidden,attr"`
	HideRB       string                 `xml:"hideRB,attr"`
	IsLAICalc    string                 `xml:"isLAICalc,attr"`
	Name         string                 `xml:"name,attr"`
	Num          string                 `xml:"num,attr"`
	Transparent  string                 `xml:"transparent,attr"`
	Optical      GroupOpticalProperties `xml:"GroupOpticalProperties"`
	Type         GroupTypeProperties    `xml:"GroupTypeProperties"`
}

type GroupOpticalProperties struct {
	Surface  SurfaceOpticalProperties  `xml:"SurfaceOpticalProperties"`
	Exitance SurfaceExitanceProperties `xml:"SurfaceExitanceProperties"`
}

type SurfaceOpticalProperties struct {
	DoubleFace string              `xml:"doubleFace,attr"`
	Link       OpticalPropertyLink `xml:"OpticalPropertyLink"`
}

// OpticalPropertyLink references a LambertianMulti ident in coeff_diff.xml.
type OpticalPropertyLink struct {
	Ident         string `xml:"ident,attr"`
	IndexFctPhase string `xml:"indexFctPhase,attr"`
	Type          string `xml:"type,attr"`
}

type SurfaceExitanceProperties struct {
	DoubleFace                string              `xml:"doubleFace,attr"`
	UseTemperaturePerTriangle string              `xml:"useTemperaturePerTriangle,attr"`
	Link                      ThermalPropertyLink `xml:"ThermalPropertyLink"`
}

// ThermalPropertyLink references a ThermalFunction idTemperature in
// coeff_diff.xml.
type ThermalPropertyLink struct {
	IDTemperature    string `xml:"idTemperature,attr"`
	IndexTemperature string `xml:"indexTemperature,attr"`
}

type GroupTypeProperties struct {
	Link ObjectTypeLink `xml:"ObjectTypeLink"`
}

type ObjectTypeLink struct {
	IdentOType string `xml:"identOType,attr"`
	IndexOT    string `xml:"indexOT,attr"`
}

package generator

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/dartxml"
	"github.com/dart-prep/dartprep/internal/models"
	"github.com/dart-prep/dartprep/internal/parser"
	"github.com/dart-prep/dartprep/internal/storage"
)

// Fixed bounding box of the reference tree model, carried verbatim on
// every object block.
var defaultDimension = dartxml.Dimension3D{
	XDim: "9.32332992553711",
	YDim: "9.625602722167969",
	ZDim: "6.392255189130083",
}

var defaultCenter = dartxml.Center3D{
	XCenter: "-0.15236902236938477",
	YCenter: "-0.17827844619750977",
	ZCenter: "3.1936185945523903",
}

// Objects generates object_3d.xml: one Object block per tree position,
// referencing the properties coeff_diff.xml defines.
type Objects struct {
	cfg   *config.Config
	store *storage.OutputStore
	log   *zap.Logger
	rng   *rand.Rand
}

// NewObjects creates an object_3d.xml generator. Model selection in
// multi-tree mode uses a time-seeded source; tests swap it via WithRand.
func NewObjects(cfg *config.Config, store *storage.OutputStore, log *zap.Logger) *Objects {
	return &Objects{
		cfg:   cfg,
		store: store,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the random source used for multi-tree model selection.
func (g *Objects) WithRand(rng *rand.Rand) *Objects {
	g.rng = rng
	return g
}

// Run reads the positions and model directory, builds the document, and
// writes it atomically to <simulation>/input/object_3d.xml.
func (g *Objects) Run() error {
	positions, parseErrs, err := parser.ParsePositions(g.cfg.Paths.PositionTxtPath)
	if err != nil {
		return err
	}
	for _, pe := range parseErrs {
		g.log.Warn("skipping malformed position line",
			zap.Int("line", pe.Line), zap.String("reason", pe.Reason))
	}
	if len(positions) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPositions, g.cfg.Paths.PositionTxtPath)
	}

	modelFiles, err := parser.ListModelFiles(g.cfg.Paths.TreeObjPath)
	if err != nil {
		return err
	}
	if len(modelFiles) == 0 {
		return fmt.Errorf("%w in %s", ErrNoModelFiles, g.cfg.Paths.TreeObjPath)
	}
	g.log.Info("building object_3d.xml",
		zap.Int("trees", len(positions)), zap.Int("models", len(modelFiles)))

	doc := g.Build(positions, modelFiles)
	data, err := dartxml.Render(doc)
	if err != nil {
		return err
	}

	outPath := filepath.Join(g.cfg.InputDir(), objectFileName)
	if err := g.store.Write(outPath, data); err != nil {
		return err
	}
	g.log.Info("wrote object_3d.xml", zap.String("path", outPath))
	return nil
}

// Build assembles the document. With multi-tree mode off, the first
// model file (lexicographic order) is used for every object, making the
// output reproducible byte for byte.
func (g *Objects) Build(positions []models.TreePosition, modelFiles []string) *dartxml.ObjectFile {
	objects := make([]dartxml.SceneObject, 0, len(positions))
	for i, pos := range positions {
		modelFile := modelFiles[0]
		if g.cfg.Settings.MultiTree {
			modelFile = modelFiles[g.rng.Intn(len(modelFiles))]
		}
		objects = append(objects, g.object(i, pos, modelFile))
	}

	return &dartxml.ObjectFile{
		Build:   dartxml.FileBuild,
		Version: dartxml.FileVersion,
		Object3D: dartxml.Object3D{
			GenerateTriangleFileXML: "0",
			Types: dartxml.Types{
				DefaultTypes: dartxml.DefaultTypes{
					Types: []dartxml.DefaultType{
						{IndexOT: "101", Name: "Default_Object", TypeColor: "255 0 0"},
						{IndexOT: "102", Name: "Leaf", TypeColor: "0 175 0"},
						{IndexOT: "103", Name: "Trunk", TypeColor: "71 55 25"},
					},
				},
			},
			ObjectList: dartxml.ObjectList{Objects: objects},
		},
	}
}

func (g *Objects) object(index int, pos models.TreePosition, modelFile string) dartxml.SceneObject {
	leafOptical := leafIdent(0)
	if g.cfg.PerTreeOptical() {
		leafOptical = leafIdent(index)
	}

	leafThermal := pooledTemperatureID
	trunkThermal := pooledTemperatureID
	if g.cfg.PerTreeThermal() {
		leafThermal = leafThermalID(index)
		trunkThermal = trunkThermalID(index)
	}

	return dartxml.SceneObject{
		FileSrc:          modelFile,
		HasGroups:        "1",
		Hidden:           "0",
		HideRB:           "0",
		IsDisplayed:      "1",
		Name:             "Object",
		Num:              strconv.Itoa(index),
		ObjectColor:      "125 0 125",
		ObjectDEMMode:    "0",
		RepeatedOnBorder: "1",
		Geometric: dartxml.GeometricProperties{
			Position: dartxml.PositionProperties{
				XPos: dartxml.Ftoa(pos.XPos),
				YPos: dartxml.Ftoa(pos.YPos),
				ZPos: dartxml.Ftoa(pos.ZPos),
			},
			Dim:    defaultDimension,
			Center: defaultCenter,
			Scale: dartxml.ScaleProperties{
				XScaleDeviation: "0.0",
				XScale:          dartxml.Ftoa(pos.XScale),
				YScaleDeviation: "0.0",
				YScale:          dartxml.Ftoa(pos.YScale),
				ZScaleDeviation: "0.0",
				ZScale:          dartxml.Ftoa(pos.ZScale),
			},
			Rotation: dartxml.RotationProperties{
				XRotDeviation: "0.0",
				XRot:          dartxml.Ftoa(pos.XRot),
				YRotDeviation: "0.0",
				YRot:          dartxml.Ftoa(pos.YRot),
				ZRotDeviation: "0.0",
				ZRot:          dartxml.Ftoa(pos.ZRot),
			},
		},
		Optical: dartxml.ObjectOpticalProperties{
			IsLAICalc:          "0",
			IsSingleGlobalLai:  "0",
			SameExitanceObject: "0",
			SameOPObject:       "0",
			Transparent:        "0",
		},
		Type: dartxml.ObjectTypeProperties{SameOTObject: "0"},
		Groups: dartxml.Groups{
			Groups: []dartxml.Group{
				g.group("Leaves", "1", leafOptical, "0", leafThermal, "Leaf", "102"),
				g.group("Trunk", "2", trunkModelName, "1", trunkThermal, "Trunk", "103"),
			},
		},
	}
}

func (g *Objects) group(name, num, opticalIdent, indexFctPhase, thermalID, typeIdent, typeIndex string) dartxml.Group {
	return dartxml.Group{
		GroupDEMMode: "0",
		Hidden:       "0",
		HideRB:       "0",
		IsLAICalc:    "0",
		Name:         name,
		Num:          num,
		Transparent:  "0",
		Optical: dartxml.GroupOpticalProperties{
			Surface: dartxml.SurfaceOpticalProperties{
				DoubleFace: "0",
				Link: dartxml.OpticalPropertyLink{
					Ident:         opticalIdent,
					IndexFctPhase: indexFctPhase,
					Type:          "0",
				},
			},
			Exitance: dartxml.SurfaceExitanceProperties{
				DoubleFace:                "0",
				UseTemperaturePerTriangle: "0",
				Link: dartxml.ThermalPropertyLink{
					IDTemperature:    thermalID,
					IndexTemperature: "0",
				},
			},
		},
		Type: dartxml.GroupTypeProperties{
			Link: dartxml.ObjectTypeLink{IdentOType: typeIdent, IndexOT: typeIndex},
		},
	}
}

package generator

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/dartxml"
	"github.com/dart-prep/dartprep/internal/storage"
)

var (
	groundOpticalRe = regexp.MustCompile(`(<OpticalPropertyLink[^>]*\bident=")[^"]*(")`)
	groundThermalRe = regexp.MustCompile(`(<ThermalPropertyLink[^>]*\bidTemperature=")[^"]*(")`)
)

// Maket rewrites the ground property links of an existing maket.xml to
// point at the soil entries coeff_diff.xml defines. Only the two
// attribute values change; the rest of the document is preserved byte
// for byte, so DART's own maket settings survive.
type Maket struct {
	cfg   *config.Config
	store *storage.OutputStore
	log   *zap.Logger
}

// NewMaket creates a maket.xml patcher.
func NewMaket(cfg *config.Config, store *storage.OutputStore, log *zap.Logger) *Maket {
	return &Maket{cfg: cfg, store: store, log: log}
}

// Run patches maket.xml in place, backing it up once beforehand.
func (p *Maket) Run() error {
	maketPath := filepath.Join(p.cfg.InputDir(), maketFileName)

	data, err := os.ReadFile(maketPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w at %s", ErrMaketMissing, maketPath)
		}
		return fmt.Errorf("reading maket.xml: %w", err)
	}

	backupPath, err := storage.BackupOnce(maketPath)
	if err != nil {
		return err
	}
	p.log.Info("maket.xml backup in place", zap.String("path", backupPath))

	soil := p.groundSoilIdent()
	patched, ok := patchFirstAttr(data, groundOpticalRe, soil)
	if !ok {
		return fmt.Errorf("no OpticalPropertyLink found in %s", maketPath)
	}
	patched, ok = patchFirstAttr(patched, groundThermalRe, soilTemperatureID)
	if !ok {
		p.log.Warn("no ThermalPropertyLink found in maket.xml, leaving thermal link unchanged")
	}

	if err := p.store.Write(maketPath, patched); err != nil {
		return err
	}
	p.log.Info("patched maket.xml",
		zap.String("soil", soil), zap.String("thermal", soilTemperatureID))
	return nil
}

// groundSoilIdent picks the soil optical ident the maket ground should
// use: the first soil_* entry of the generated coeff_diff.xml in
// multi-soil mode, otherwise the default soil.
func (p *Maket) groundSoilIdent() string {
	if !p.cfg.Settings.MultiSol {
		return defaultSoilName
	}

	coeffPath := filepath.Join(p.cfg.InputDir(), coeffDiffFileName)
	data, err := os.ReadFile(coeffPath)
	if err != nil {
		p.log.Warn("coeff_diff.xml unreadable, using default soil", zap.Error(err))
		return defaultSoilName
	}

	var doc dartxml.CoeffDiffFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		p.log.Warn("coeff_diff.xml unparsable, using default soil", zap.Error(err))
		return defaultSoilName
	}

	for _, fn := range doc.CoeffDiff.Surfaces.LambertianMultiFunctions.Functions {
		if strings.HasPrefix(fn.Ident, "soil_") {
			return fn.Ident
		}
	}
	p.log.Warn("no soil_* entries in coeff_diff.xml, using default soil")
	return defaultSoilName
}

// patchFirstAttr replaces the captured attribute value of the first
// match of re in doc. Reports whether a match was found.
func patchFirstAttr(doc []byte, re *regexp.Regexp, value string) ([]byte, bool) {
	loc := re.FindSubmatchIndex(doc)
	if loc == nil {
		return doc, false
	}

	// loc[3] ends the opening capture, loc[4] starts the closing quote.
	out := make([]byte, 0, len(doc)+len(value))
	out = append(out, doc[:loc[3]]...)
	out = append(out, value...)
	out = append(out, doc[loc[4]:]...)
	return out, true
}

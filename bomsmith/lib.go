package bomsmith

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/bomerr"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/logger"
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/internal/bus"
	"github.com/allisonsierra/bomsmith/internal/log"
)

// Encode writes the BOM as a document of the given schema version and serialization. Nothing is written to w
// when encoding fails.
func Encode(w io.Writer, bom *model.Bom, v spec.Version, f format.Format) error {
	adapter, err := Adapter(v)
	if err != nil {
		return err
	}
	log.Debugf("encoding BOM as %s %s", f, v)
	return format.Encode(w, adapter.FromModel(bom), f)
}

// Decode reads a document of the given schema version and serialization into the canonical model. The result is
// not validated.
func Decode(r io.Reader, v spec.Version, f format.Format) (*model.Bom, error) {
	adapter, err := Adapter(v)
	if err != nil {
		return nil, err
	}
	doc := adapter.NewDocument()
	if err := format.Decode(r, doc, f); err != nil {
		return nil, err
	}
	return doc.ToModel(), nil
}

// DecodeAny detects the serialization and schema version of a document before decoding it.
func DecodeAny(data []byte) (*model.Bom, spec.Version, format.Format, error) {
	f, declared, err := format.Identify(data)
	if err != nil {
		return nil, spec.UnknownVersion, f, err
	}

	v, err := spec.ParseVersion(declared)
	if err != nil {
		return nil, spec.UnknownVersion, f, err
	}
	log.Debugf("identified %s document with spec version %s", f, v)

	bom, err := Decode(bytes.NewReader(data), v, f)
	if err != nil {
		return nil, v, f, err
	}
	return bom, v, f, nil
}

type convertConfig struct {
	skipValidation bool
}

type ConvertOption func(*convertConfig)

// WithoutValidation re-encodes the document as decoded, including values Validate would reject.
func WithoutValidation() ConvertOption {
	return func(c *convertConfig) {
		c.skipValidation = true
	}
}

// Convert re-encodes any supported document as the given schema version and serialization. Fields the target
// version cannot express are dropped. The decoded document is validated first; findings are returned as a
// *bomerr.ValidationFailure and nothing is written.
func Convert(r io.Reader, w io.Writer, to spec.Version, toFormat format.Format, opts ...ConvertOption) error {
	var cfg convertConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read document: %w", err)
	}

	bom, from, fromFormat, err := DecodeAny(data)
	if err != nil {
		return err
	}

	if !cfg.skipValidation {
		if err := bom.Validate(); err != nil {
			return &bomerr.ValidationFailure{Findings: err}
		}
	}
	log.Infof("converting %s %s document to %s %s", fromFormat, from, toFormat, to)

	return Encode(w, bom, to, toFormat)
}

func SetLogger(logger logger.Logger) {
	log.Log = logger
}

func SetBus(b partybus.Publisher) {
	bus.SetPublisher(b)
}

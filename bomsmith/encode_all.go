package bomsmith

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/allisonsierra/bomsmith/bomsmith/event"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/internal/bus"
	"github.com/allisonsierra/bomsmith/internal/log"
)

// Output is one requested document: a schema version paired with a serialization.
type Output struct {
	Version spec.Version
	Format  format.Format
}

func (o Output) String() string {
	return fmt.Sprintf("%s@%s", o.Format.Extension(), o.Version)
}

// WriterFactory opens the destination of a single output. It returns the writer, a human readable location for
// reporting, and a function releasing the destination once the document has been written.
type WriterFactory func(o Output) (w io.Writer, location string, closer func() error, err error)

// Outputs pairs every version with every format, in the given order.
func Outputs(versions []spec.Version, formats []format.Format) []Output {
	var outputs []Output
	for _, v := range versions {
		for _, f := range formats {
			outputs = append(outputs, Output{Version: v, Format: f})
		}
	}
	return outputs
}

// EncodeAll emits one independent document per version and format pair. A failure of one document does not
// prevent the others from being written; every failure is reported in the returned error.
func EncodeAll(bom *model.Bom, versions []spec.Version, formats []format.Format, factory WriterFactory) error {
	return EncodeOutputs(bom, Outputs(versions, formats), factory)
}

// EncodeOutputs is EncodeAll for an explicit list of outputs.
func EncodeOutputs(bom *model.Bom, outputs []Output, factory WriterFactory) (errs error) {
	for _, o := range outputs {
		if err := encodeOutput(bom, o, factory); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unable to emit %s document: %w", o, err))
		}
	}
	return errs
}

func encodeOutput(bom *model.Bom, o Output, factory WriterFactory) (err error) {
	var buf bytes.Buffer
	if err := Encode(&buf, bom, o.Version, o.Format); err != nil {
		return err
	}

	w, location, closer, err := factory(o)
	if err != nil {
		return err
	}
	defer func() {
		if closer == nil {
			return
		}
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	size := buf.Len()
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write %s: %w", location, err)
	}

	log.Debugf("wrote %s document to %s", o, location)
	bus.DocumentEmitted(event.Document{
		Version: o.Version.String(),
		Format:  o.Format.String(),
		Target:  location,
		Size:    size,
	})
	return nil
}

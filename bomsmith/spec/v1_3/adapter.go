package v1_3

import (
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
)

// Adapter converts between the canonical model and CycloneDX 1.3 documents. Every part of the model has a
// 1.3 representation.
type Adapter struct{}

func NewAdapter() Adapter {
	return Adapter{}
}

func (Adapter) Version() spec.Version {
	return spec.V1_3
}

func (Adapter) FromModel(bom *model.Bom) spec.Document {
	return fromModel(bom)
}

func (Adapter) NewDocument() spec.Document {
	return &Document{}
}

package v1_2

import (
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
)

// Adapter converts between the canonical model and CycloneDX 1.2 documents. Compositions, properties,
// component evidence, metadata licenses and external reference hashes have no 1.2 representation: they are
// dropped on export and absent on import.
type Adapter struct{}

func NewAdapter() Adapter {
	return Adapter{}
}

func (Adapter) Version() spec.Version {
	return spec.V1_2
}

func (Adapter) FromModel(bom *model.Bom) spec.Document {
	return fromModel(bom)
}

func (Adapter) NewDocument() spec.Document {
	return &Document{}
}

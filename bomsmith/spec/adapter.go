package spec

import (
	"github.com/allisonsierra/bomsmith/bomsmith/model"
)

// Document is the wire form of a BOM for one schema version. Documents carry json and xml struct tags and
// are handed to the format package as-is.
type Document interface {
	ToModel() *model.Bom
}

// Adapter translates between the canonical model and one schema version. Conversions are total: fields the
// version cannot express are dropped on export and absent on import.
type Adapter interface {
	Version() Version
	FromModel(bom *model.Bom) Document
	NewDocument() Document
}

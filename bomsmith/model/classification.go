package model

// Classification is the kind of a component. The zero value is not a valid classification.
type Classification int

const (
	UnknownClassification Classification = iota
	ApplicationClassification
	FrameworkClassification
	LibraryClassification
	ContainerClassification
	OperatingSystemClassification
	DeviceClassification
	FirmwareClassification
	FileClassification
)

func (c Classification) IsValid() bool {
	return c > UnknownClassification && c <= FileClassification
}

package model

import (
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

type Service struct {
	BOMRef             string
	Provider           *OrganizationalEntity
	Group              primitive.NormalizedString
	Name               primitive.NormalizedString
	Version            primitive.NormalizedString
	Description        primitive.NormalizedString
	Endpoints          *[]primitive.URI
	Authenticated      *bool
	TrustBoundary      *bool
	Data               *[]DataClassification
	Licenses           *[]LicenseChoice
	ExternalReferences *[]ExternalReference
	Properties         *[]Property
	Services           *[]Service
}

// DataClassification labels the data that flows through a service and in which direction.
type DataClassification struct {
	Flow           DataFlowType
	Classification primitive.NormalizedString
}

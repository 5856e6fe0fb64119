package model

import (
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

type OrganizationalEntity struct {
	Name    primitive.NormalizedString
	URL     *[]primitive.URI
	Contact *[]OrganizationalContact
}

type OrganizationalContact struct {
	Name  primitive.NormalizedString
	Email primitive.NormalizedString
	Phone primitive.NormalizedString
}

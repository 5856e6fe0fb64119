package model

import (
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

// LicenseChoice is one entry of a licenses list: either a license or an SPDX expression, never both.
type LicenseChoice struct {
	License    *License
	Expression *primitive.SpdxExpression
}

func NewLicense(license License) LicenseChoice {
	return LicenseChoice{License: &license}
}

func NewLicenseExpression(expression primitive.SpdxExpression) LicenseChoice {
	return LicenseChoice{Expression: &expression}
}

// IsExpression reports whether the choice carries an SPDX expression rather than a license.
func (c LicenseChoice) IsExpression() bool {
	return c.Expression != nil
}

// License is identified either by an SPDX identifier (ID) or by a free-form Name, not both.
type License struct {
	ID   primitive.SpdxIdentifier
	Name primitive.NormalizedString
	Text *AttachedText
	URL  primitive.URI
}

package v1_2

import (
	"encoding/xml"

	"github.com/allisonsierra/bomsmith/bomsmith/spec/internal/wireutil"
)

// LicenseChoice is one entry of a licenses array: either a license or an expression.
type LicenseChoice struct {
	License    *License `json:"license,omitempty"`
	Expression string   `json:"expression,omitempty"`
}

type License struct {
	ID   string        `json:"id,omitempty" xml:"id,omitempty"`
	Name string        `json:"name,omitempty" xml:"name,omitempty"`
	Text *AttachedText `json:"text,omitempty" xml:"text,omitempty"`
	URL  string        `json:"url,omitempty" xml:"url,omitempty"`
}

// LicenseList is written in XML as <license> and <expression> children of the wrapper element, with no
// per-choice element around them.
type LicenseList []LicenseChoice

func (l LicenseList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, choice := range l {
		var err error
		if choice.License != nil {
			err = e.EncodeElement(choice.License, xml.StartElement{Name: xml.Name{Local: "license"}})
		} else {
			err = e.EncodeElement(choice.Expression, xml.StartElement{Name: xml.Name{Local: "expression"}})
		}
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func (l *LicenseList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	choices := make(LicenseList, 0)
	err := wireutil.DecodeChildren(d, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "license":
			var license License
			if err := d.DecodeElement(&license, &child); err != nil {
				return err
			}
			choices = append(choices, LicenseChoice{License: &license})
		case "expression":
			var expression string
			if err := d.DecodeElement(&expression, &child); err != nil {
				return err
			}
			choices = append(choices, LicenseChoice{Expression: expression})
		default:
			return d.Skip()
		}
		return nil
	})
	if err != nil {
		return err
	}
	*l = choices
	return nil
}

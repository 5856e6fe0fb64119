package wireutil

import (
	"encoding/xml"
)

// EncodeList writes items inside the given wrapper element, each as an element named item. An empty list
// still produces the wrapper so that present-but-empty collections survive.
func EncodeList[T any](e *xml.Encoder, start xml.StartElement, item string, items []T) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	itemStart := xml.StartElement{Name: xml.Name{Local: item}}
	for i := range items {
		if err := e.EncodeElement(items[i], itemStart); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// DecodeList reads the repeated item elements of a wrapper element into dst. The result is never nil, so a
// wrapper without children decodes to an empty list. Other children are skipped.
func DecodeList[T any](d *xml.Decoder, start xml.StartElement, item string, dst *[]T) error {
	items := make([]T, 0)
	err := DecodeChildren(d, func(child xml.StartElement) error {
		if child.Name.Local != item {
			return d.Skip()
		}
		var v T
		if err := d.DecodeElement(&v, &child); err != nil {
			return err
		}
		items = append(items, v)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = items
	return nil
}

// DecodeChildren calls fn for every direct child element until the end of the current element. fn must
// consume the child, either by decoding it or by skipping it.
func DecodeChildren(d *xml.Decoder, fn func(child xml.StartElement) error) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

type ref struct {
	Ref string `xml:"ref,attr"`
}

// EncodeRefs writes each value as an empty element carrying it in a ref attribute.
func EncodeRefs(e *xml.Encoder, start xml.StartElement, item string, refs []string) error {
	wrapped := make([]ref, len(refs))
	for i, r := range refs {
		wrapped[i] = ref{Ref: r}
	}
	return EncodeList(e, start, item, wrapped)
}

// DecodeRefs is the inverse of EncodeRefs.
func DecodeRefs(d *xml.Decoder, start xml.StartElement, item string, dst *[]string) error {
	var wrapped []ref
	if err := DecodeList(d, start, item, &wrapped); err != nil {
		return err
	}
	refs := make([]string, len(wrapped))
	for i, r := range wrapped {
		refs[i] = r.Ref
	}
	*dst = refs
	return nil
}

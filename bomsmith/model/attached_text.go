package model

import (
	"encoding/base64"

	"github.com/gabriel-vasile/mimetype"

	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

// AttachedText is inline content such as a license text or a diff.
type AttachedText struct {
	ContentType primitive.MimeType
	Encoding    *primitive.Encoding
	Content     string
}

// NewAttachedText base64 encodes the given content. When no content type is given one is detected from
// the content itself.
func NewAttachedText(contentType primitive.MimeType, content []byte) AttachedText {
	if contentType == "" {
		contentType = primitive.MimeTypeFromHeader(mimetype.Detect(content).String())
	}
	encoding := primitive.EncodingBase64
	return AttachedText{
		ContentType: contentType,
		Encoding:    &encoding,
		Content:     base64.StdEncoding.EncodeToString(content),
	}
}

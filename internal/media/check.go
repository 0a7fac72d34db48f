package media

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// HasErrorMarker reports whether the base64 encoded payload, read back as text, mentions "Error".
// The platform answers failed downloads with an XML error document instead of the image bytes.
// Invalid UTF-8 sequences are dropped before matching.
func HasErrorMarker(encoded string) bool {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return true
	}

	return strings.Contains(strings.ToValidUTF8(string(b), ""), "Error")
}

// IsImage sniffs the payload and reports whether it is an image format
func IsImage(b []byte) bool {
	return strings.HasPrefix(mimetype.Detect(b).String(), "image/")
}

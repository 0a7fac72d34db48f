// Package domain holds the model-agnostic request types
package domain

import (
	"encoding/base64"
	"fmt"
)

// Request is a single prompt sent to the model
type Request struct {
	Message string
	Image   *Image
}

// Image is an attachment forwarded to the model next to the prompt text
type Image struct {
	MimeType string
	Data     []byte
}

// Base64 returns the standard base64 encoding of the image data
func (i *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURI renders the image as a data URI fragment
func (i *Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MimeType, i.Base64())
}

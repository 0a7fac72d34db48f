package domain

import "testing"

func TestImageDataURI(t *testing.T) {
	img := &Image{MimeType: "image/jpeg", Data: []byte("hello")}

	if got := img.Base64(); got != "aGVsbG8=" {
		t.Errorf("unexpected base64: %s", got)
	}
	if got := img.DataURI(); got != "data:image/jpeg;base64,aGVsbG8=" {
		t.Errorf("unexpected data uri: %s", got)
	}
}

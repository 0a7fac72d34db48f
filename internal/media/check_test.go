package media

import (
	"encoding/base64"
	"testing"
)

func TestHasErrorMarker(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    bool
	}{
		{"plain image bytes", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, false},
		{"xml error document", []byte("<TwilioResponse><RestException>Error</RestException></TwilioResponse>"), true},
		{"marker split by invalid utf8", []byte("Err\xffor"), true},
		{"lower case is not a match", []byte("error"), false},
		{"empty", []byte{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasErrorMarker(base64.StdEncoding.EncodeToString(tt.payload))
			if got != tt.want {
				t.Errorf("HasErrorMarker() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasErrorMarkerBadEncoding(t *testing.T) {
	if !HasErrorMarker("!!not base64!!") {
		t.Error("undecodable payload should be treated as unreadable")
	}
}

func TestIsImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	if !IsImage(png) {
		t.Error("png header should be detected as image")
	}
	if !IsImage(jpeg) {
		t.Error("jpeg header should be detected as image")
	}
	if IsImage([]byte("<?xml version=\"1.0\"?><Response/>")) {
		t.Error("xml should not be detected as image")
	}
	if IsImage([]byte("%PDF-1.4\n")) {
		t.Error("pdf should not be detected as image")
	}
}

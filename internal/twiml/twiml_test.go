package twiml

import "testing"

func TestReply(t *testing.T) {
	b, err := Reply("Only crop images are supported at the moment.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?><Response><Message><Body>Only crop images are supported at the moment.</Body></Message></Response>`
	if string(b) != want {
		t.Errorf("unexpected envelope:\n%s\nwant:\n%s", b, want)
	}
}

func TestReplyEscapes(t *testing.T) {
	b, err := Reply(`Mix 5g & water <1L> "now"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs, err := Parse(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0] != `Mix 5g & water <1L> "now"` {
		t.Errorf("unexpected messages: %q", msgs)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not xml")); err == nil {
		t.Error("expected an error")
	}
}

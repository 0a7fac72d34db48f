// Package twiml renders the messaging reply envelope
package twiml

import (
	"encoding/xml"
	"fmt"
)

// ContentType of a rendered envelope
const ContentType = "text/xml; charset=utf-8"

// Response is the root element of a messaging reply
type Response struct {
	XMLName  xml.Name  `xml:"Response"`
	Messages []Message `xml:"Message"`
}

// Message is a single outbound chat message
type Message struct {
	Body string `xml:"Body"`
}

// Reply renders an envelope holding one message with the given body
func Reply(body string) ([]byte, error) {
	b, err := xml.Marshal(Response{Messages: []Message{{Body: body}}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reply: %w", err)
	}

	return append([]byte(xml.Header[:len(xml.Header)-1]), b...), nil
}

// Parse reads the message bodies back out of an envelope
func Parse(b []byte) ([]string, error) {
	var r Response
	if err := xml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("failed to parse reply: %w", err)
	}

	res := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		res = append(res, m.Body)
	}

	return res, nil
}

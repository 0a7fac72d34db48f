package logic

// Kind classifies the outcome of handling a message
type Kind int

const (
	// KindNone means the model answered
	KindNone Kind = iota
	// KindImageUnreadable means the fetched media looked like an error document
	KindImageUnreadable
	// KindImageProcessing means the fetch or the model call failed on the image path
	KindImageProcessing
	// KindUnsupportedMedia means the attachment was not an image
	KindUnsupportedMedia
	// KindTextProcessing means the model call failed on the text path
	KindTextProcessing
)

const (
	replyImageUnreadable  = "The image could not be read. Please send a clear crop photo."
	replyImageProcessing  = "Sorry, I couldn't process the image. Please send a valid crop photo."
	replyUnsupportedMedia = "Only crop images are supported at the moment."
	replyTextProcessing   = "Sorry, I'm having trouble answering that right now."
)

// Reply returns the user facing message for a failure kind, empty for KindNone
func (k Kind) Reply() string {
	switch k {
	case KindImageUnreadable:
		return replyImageUnreadable
	case KindImageProcessing:
		return replyImageProcessing
	case KindUnsupportedMedia:
		return replyUnsupportedMedia
	case KindTextProcessing:
		return replyTextProcessing
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindImageUnreadable:
		return "image_unreadable"
	case KindImageProcessing:
		return "image_processing"
	case KindUnsupportedMedia:
		return "unsupported_media"
	case KindTextProcessing:
		return "text_processing"
	default:
		return "unknown"
	}
}

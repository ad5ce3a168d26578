package constant

type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "email"
	ContactMethodPhone ContactMethod = "phone"
)

type MediaType string

const (
	MediaTypeText  MediaType = "text"
	MediaTypeVoice MediaType = "voice"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

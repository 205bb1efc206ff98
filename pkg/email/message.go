package email

// Attachment references a file to attach, by path with an optional display name.
type Attachment struct {
	Path string
	Name string
}

// Message is a fully assembled email payload ready for a provider.
type Message struct {
	Subject     string
	HTML        string
	To          []string
	Cc          []string
	Bcc         []string
	Attachments []Attachment
}

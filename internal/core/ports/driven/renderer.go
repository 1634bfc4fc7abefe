package driven

import "context"

// Renderer fills one document format. Implementations walk every
// text-bearing fragment of the template (cells or paragraphs), pass it
// through apply, and reassemble the document. The template file is
// never modified; the rendered document is returned as bytes.
type Renderer interface {
	// Extensions returns the file extensions this renderer handles,
	// lowercased, without dots.
	Extensions() []string

	// MIMEType returns the rendered document's MIME type.
	MIMEType() string

	// FormatName returns the human-readable format label, e.g. "Excel".
	FormatName() string

	// Render loads the template, substitutes every text fragment via
	// apply, and returns the serialised result.
	Render(ctx context.Context, templatePath string, apply func(string) string) ([]byte, error)
}

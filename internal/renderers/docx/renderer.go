// Package docx renders Word templates. The docx container is opened as
// a ZIP archive and word/document.xml is rewritten: the full text of
// each paragraph, top-level or inside a table cell, is passed through
// the substitution function. A changed paragraph is rebuilt as a single
// run, keeping its paragraph properties; run-level formatting spanning
// several runs inside a substituted paragraph is not preserved.
// Paragraphs carrying a text box are passed through untouched: text-box
// content is not reliably substituted and tokens there can stay literal.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// documentEntry is the archive entry holding the document body.
const documentEntry = "word/document.xml"

var (
	// paragraphRe matches one <w:p> element. WordprocessingML does not
	// nest paragraphs in body text, so a non-greedy match to the first
	// closing tag covers top-level and table-cell paragraphs alike.
	paragraphRe = regexp.MustCompile(`(?s)<w:p(?: [^>]*)?>.*?</w:p>`)

	// nestedParagraphRe detects a <w:p> opening inside a matched
	// fragment. Text boxes (w:txbxContent) do nest paragraphs inside a
	// run, making the non-greedy match end at the inner </w:p>; such
	// fragments must not be rebuilt.
	nestedParagraphRe = regexp.MustCompile(`<w:p[ >]`)

	// paragraphPropsRe matches the paragraph properties element kept
	// when a paragraph is rebuilt.
	paragraphPropsRe = regexp.MustCompile(`(?s)<w:pPr(?: [^>]*)?>.*?</w:pPr>|<w:pPr(?: [^>]*)?/>`)

	// textRe matches one <w:t> element's content.
	textRe = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>(.*?)</w:t>`)
)

// Renderer handles docx templates.
type Renderer struct{}

// New creates a new docx renderer.
func New() *Renderer {
	return &Renderer{}
}

// Extensions returns the file extensions this renderer handles.
func (r *Renderer) Extensions() []string {
	return []string{"docx"}
}

// MIMEType returns the rendered document's MIME type.
func (r *Renderer) MIMEType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// FormatName returns the human-readable format label.
func (r *Renderer) FormatName() string {
	return "Word"
}

// Render opens the template archive, substitutes the document body, and
// repacks every entry into a new in-memory archive. Entries other than
// the document body are copied through untouched.
func (r *Renderer) Render(ctx context.Context, templatePath string, apply func(string) string) ([]byte, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening template archive: %w", err)
	}

	var out bytes.Buffer
	writer := zip.NewWriter(&out)

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := readEntry(file)
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", file.Name, err)
		}

		if file.Name == documentEntry {
			content = substituteBody(content, apply)
		}

		w, err := writer.CreateHeader(&zip.FileHeader{
			Name:   file.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("writing entry %s: %w", file.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("writing entry %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("serialising document: %w", err)
	}
	return out.Bytes(), nil
}

// readEntry reads one archive entry fully.
func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// substituteBody rewrites every paragraph of the document body whose
// text changes under apply.
func substituteBody(content []byte, apply func(string) string) []byte {
	body := string(content)

	body = paragraphRe.ReplaceAllStringFunc(body, func(paragraph string) string {
		if nestedParagraphRe.MatchString(paragraph[1:]) {
			return paragraph
		}

		text, hasText := paragraphText(paragraph)
		if !hasText {
			return paragraph
		}

		replaced := apply(text)
		if replaced == text {
			return paragraph
		}
		return rebuildParagraph(paragraph, replaced)
	})

	return []byte(body)
}

// paragraphText concatenates the contents of all <w:t> elements in a
// paragraph, matching how the paragraph renders as a single string.
func paragraphText(paragraph string) (string, bool) {
	matches := textRe.FindAllStringSubmatch(paragraph, -1)
	if len(matches) == 0 {
		return "", false
	}

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(unescapeXML(m[1]))
	}
	return b.String(), true
}

// rebuildParagraph replaces a paragraph's runs with a single run holding
// the substituted text. The opening tag and paragraph properties are
// kept; run properties are not.
func rebuildParagraph(paragraph, text string) string {
	openEnd := strings.Index(paragraph, ">")
	openTag := paragraph[:openEnd+1]

	props := paragraphPropsRe.FindString(paragraph)

	return openTag + props +
		`<w:r><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r>` +
		`</w:p>`
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// escapeXML escapes the five predefined XML entities.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// unescapeXML reverses escapeXML. Replacement is single-pass, so
// "&amp;lt;" correctly becomes "&lt;".
func unescapeXML(s string) string {
	return xmlUnescaper.Replace(s)
}

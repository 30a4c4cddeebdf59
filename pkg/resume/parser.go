package resume

import (
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedImport = errors.New("unsupported file format: only pdf and docx are allowed")
	ErrEmptyImport       = errors.New("no text found in uploaded file")
	ErrImportTooLarge    = errors.New("uploaded file is too large")

	reTags   = regexp.MustCompile(`<[^>]+>`)
	reBlanks = regexp.MustCompile(`[ \t\r\f\v]+`)
	reLines  = regexp.MustCompile(`\n+`)
)

// ImportText reads at most maxBytes from r and extracts plain text from an existing
// resume so it can prefill the free-text field. Supports .pdf and .docx.
func ImportText(filename string, r io.Reader, maxBytes int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" && ext != ".docx" {
		return "", ErrUnsupportedImport
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "read upload")
	}
	if int64(len(data)) > maxBytes {
		return "", ErrImportTooLarge
	}
	var text string
	switch ext {
	case ".pdf":
		text, err = extractTextFromPDF(data)
	default:
		text, err = extractTextFromDocx(data)
	}
	if err != nil {
		return "", errors.Wrapf(err, "extract %s", ext)
	}
	if text == "" {
		return "", ErrEmptyImport
	}
	return text, nil
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "parse docx")
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return normalizeWhitespace(reTags.ReplaceAllString(xml, "")), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	// keep paragraph breaks, drop the blanks around them
	s = strings.ReplaceAll(s, " \n", "\n")
	s = strings.ReplaceAll(s, "\n ", "\n")
	s = reLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

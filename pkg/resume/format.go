package resume

import "github.com/pkg/errors"

// Format is a downloadable artifact kind produced by the backend.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

var (
	ErrUnknownFormat   = errors.New("unknown download format")
	ErrMissingArtifact = errors.New("generated resume has no artifact handle")
)

// ParseFormat accepts only the kinds the backend serves.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPDF, FormatMarkdown, FormatJSON:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Label is the button caption for the format.
func (f Format) Label() string {
	switch f {
	case FormatPDF:
		return "Download PDF"
	case FormatMarkdown:
		return "Download Markdown"
	case FormatJSON:
		return "Download JSON"
	}
	return string(f)
}

// Formats lists the formats in the order they are offered.
func Formats() []Format {
	return []Format{FormatPDF, FormatMarkdown, FormatJSON}
}

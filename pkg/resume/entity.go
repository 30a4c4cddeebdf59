package resume

import (
	"github.com/pkg/errors"
)

// Field names accepted by FormInput.With. They match the JSON keys sent to the backend.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldRawText = "raw_text"
)

var ErrUnknownField = errors.New("unknown form field")

// FormInput is what the user types into the form and what gets posted to the backend.
type FormInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	RawText string `json:"raw_text" validate:"required,notblank"`
}

// With returns a copy of f with one field replaced.
func (f FormInput) With(field, value string) (FormInput, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldRawText:
		f.RawText = value
	default:
		return f, errors.Wrapf(ErrUnknownField, "%q", field)
	}
	return f, nil
}

// Fields lists the form fields in display order.
func Fields() []string {
	return []string{FieldName, FieldEmail, FieldPhone, FieldRawText}
}

type PersonalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ExperienceEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
}

// EndDateOrPresent renders an open-ended position as "Present".
func (e ExperienceEntry) EndDateOrPresent() string {
	if e.EndDate == "" {
		return "Present"
	}
	return e.EndDate
}

// ResumeJSON is the structured resume produced by the backend.
type ResumeJSON struct {
	PersonalInfo *PersonalInfo     `json:"personal_info,omitempty"`
	Summary      string            `json:"summary"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
}

// SubmissionResult is the body of a successful /generate response.
type SubmissionResult struct {
	ResumeJSON ResumeJSON `json:"resume_json"`
	// TempDir is an opaque backend handle used to fetch the generated artifacts.
	TempDir  string `json:"temp_dir"`
	Summary  string `json:"summary,omitempty"`
	ResumeMD string `json:"resume_md,omitempty"`
	PDFURL   string `json:"pdf_url,omitempty"`
	MDURL    string `json:"md_url,omitempty"`
	JSONURL  string `json:"json_url,omitempty"`
}

package view

import (
	"github.com/artem13815/resume-builder/pkg/resume"
)

const (
	NoSkillsPlaceholder     = "No skills listed."
	NoExperiencePlaceholder = "No experience listed."
)

// ExperienceCard is one rendered experience entry.
type ExperienceCard struct {
	Role        string
	Company     string
	DateRange   string
	Description string
}

// DownloadLink is one artifact button on the result screen.
type DownloadLink struct {
	Format resume.Format
	Label  string
}

// Page is everything a template needs to draw the current screen.
type Page struct {
	Screen  Screen
	Form    resume.FormInput
	Loading bool

	Error          string
	ErrorExpiresMs int64

	Summary      string
	PersonalInfo *resume.PersonalInfo
	// Skills is empty when SkillsEmpty is set.
	Skills      []string
	SkillsEmpty string
	Experience  []ExperienceCard
	// ExperienceEmpty holds the placeholder when there is nothing to list.
	ExperienceEmpty string
	Downloads       []DownloadLink
}

// Render derives the page from a snapshot.
func Render(s Snapshot) Page {
	p := Page{
		Screen:         s.State.Screen(),
		Form:           s.Form,
		Loading:        s.Loading,
		Error:          s.Error,
		ErrorExpiresMs: s.ErrorExpiresIn.Milliseconds(),
	}
	res, ok := s.State.(Result)
	if !ok {
		return p
	}
	rj := res.Payload.ResumeJSON
	p.Summary = rj.Summary
	p.PersonalInfo = rj.PersonalInfo
	if len(rj.Skills) == 0 {
		p.SkillsEmpty = NoSkillsPlaceholder
	} else {
		p.Skills = append([]string(nil), rj.Skills...)
	}
	if len(rj.Experience) == 0 {
		p.ExperienceEmpty = NoExperiencePlaceholder
	} else {
		p.Experience = make([]ExperienceCard, 0, len(rj.Experience))
		for _, e := range rj.Experience {
			p.Experience = append(p.Experience, ExperienceCard{
				Role:        e.Role,
				Company:     e.Company,
				DateRange:   e.StartDate + " - " + e.EndDateOrPresent(),
				Description: e.Description,
			})
		}
	}
	for _, f := range resume.Formats() {
		p.Downloads = append(p.Downloads, DownloadLink{Format: f, Label: f.Label()})
	}
	return p
}

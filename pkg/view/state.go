package view

import (
	"github.com/pkg/errors"

	"github.com/artem13815/resume-builder/pkg/resume"
)

// Screen names the page the user is looking at.
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenForm    Screen = "form"
	ScreenResult  Screen = "result"
)

var ErrInvalidTransition = errors.New("invalid view transition")

// State is one of Landing, Form or Result.
type State interface {
	Screen() Screen
	sealed()
}

type Landing struct{}

type Form struct{}

// Result carries the payload of the last successful submission.
type Result struct {
	Payload resume.SubmissionResult
}

func (Landing) Screen() Screen { return ScreenLanding }
func (Form) Screen() Screen    { return ScreenForm }
func (Result) Screen() Screen  { return ScreenResult }

func (Landing) sealed() {}
func (Form) sealed()    {}
func (Result) sealed()  {}

// OpenForm is the call-to-action on the landing page.
func OpenForm(s State) (State, error) {
	if _, ok := s.(Landing); !ok {
		return s, errors.Wrapf(ErrInvalidTransition, "open form from %s", s.Screen())
	}
	return Form{}, nil
}

// Complete moves to the result screen from wherever the view is: a finished
// submission shows its result even if the user went back while waiting.
func Complete(_ State, payload resume.SubmissionResult) State {
	return Result{Payload: payload}
}

// Back drops any result and returns to the landing page.
func Back(State) State {
	return Landing{}
}

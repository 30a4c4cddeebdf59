package resume

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", notBlankValidator)
	return v
}

func notBlankValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}

var fieldLabels = map[string]string{
	"Name":    "Name",
	"Email":   "Email",
	"Phone":   "Phone",
	"RawText": "Skills & Experience",
}

// Validate checks the form before it is submitted: name, email (with email syntax)
// and the free-text description are required. The returned error names the first
// failing field in a message suitable for the user.
func (f FormInput) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, "validate form")
	}
	fe := verrs[0]
	label := fieldLabels[fe.StructField()]
	if label == "" {
		label = fe.Field()
	}
	if fe.Tag() == "email" {
		return errors.Errorf("%s must be a valid email address", label)
	}
	return errors.Errorf("%s is required", label)
}

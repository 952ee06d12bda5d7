package badge

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// rule pairs a validator tag with the message reported when it fails.
// An empty tag accepts any value.
type rule struct {
	tag     string
	message string
}

const fallbackValidationMessage = "Validation failed."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// npmscope: "@scope/name[/...]" with every segment after '@' non-empty.
	_ = v.RegisterValidation("npmscope", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if !strings.HasPrefix(value, "@") {
			return false
		}
		segments := strings.Split(value[1:], "/")
		if len(segments) < 2 {
			return false
		}
		for _, s := range segments {
			if s == "" {
				return false
			}
		}
		return true
	})
	return v
}

var (
	ruleAny             = rule{}
	ruleBadgePath       = rule{tag: "required", message: "Badge path cannot be empty."}
	rulePackageName     = rule{tag: "required", message: "Package name cannot be empty."}
	ruleRepositoryInput = rule{tag: "required", message: "Repository reference cannot be empty."}
)

// check runs value through r and turns a failure into an *Error carrying
// status and ctx. On success the value is returned untouched.
func check(value string, r rule, status Status, ctx *ErrorContext) (string, error) {
	if err := validate.Var(value, r.tag); err != nil {
		msg := r.message
		if msg == "" {
			msg = fallbackValidationMessage
		}
		return "", NewError(status, msg, ctx)
	}
	return value, nil
}

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/model"
)

// Field names as they appear in forms and payloads
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// PasswordSymbols is set of special characters accepted by password rule
const PasswordSymbols = "@$!%*?&#"

const passwordMinLength = 8

const (
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email"
	msgPasswordRequired = "Password is required"
	msgConfirmRequired  = "Confirm your password"
	msgPasswordsMatch   = "Passwords must match"
)

type passwordCheck struct {
	ok      func(string) bool
	message string
}

var passwordChecks = []passwordCheck{
	{ok: func(p string) bool { return utf8.RuneCountInString(p) >= passwordMinLength }, message: "At least 8 characters"},
	{ok: func(p string) bool { return strings.ContainsFunc(p, isUpper) }, message: "Include an uppercase letter"},
	{ok: func(p string) bool { return strings.ContainsFunc(p, isLower) }, message: "Include a lowercase letter"},
	{ok: func(p string) bool { return strings.ContainsFunc(p, isDigit) }, message: "Include a number"},
	{ok: func(p string) bool { return strings.ContainsAny(p, PasswordSymbols) }, message: "Include a special character"},
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsPassword reports whether p satisfies every password composition rule
func IsPassword(p string) bool {
	for _, c := range passwordChecks {
		if !c.ok(p) {
			return false
		}
	}
	return true
}

// Rules evaluates form fields. Every method is pure and returns violations
// in evaluation order, empty result means value is valid
type Rules struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewRules builds Rules with english messages
func NewRules() (*Rules, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsPassword(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register password validation - %w", err)
	}

	for _, tag := range []string{"required", "email", "password", "eqfield"} {
		if err := v.RegisterTranslation(tag, trans, noopRegistration, fieldMessage); err != nil {
			return nil, fmt.Errorf("failed to register %s translation - %w", tag, err)
		}
	}

	return &Rules{validate: v, translator: trans}, nil
}

// MustRules is NewRules which panics on error, handy for wiring and tests
func MustRules() *Rules {
	r, err := NewRules()
	if err != nil {
		panic(err)
	}
	return r
}

// Email validates email shape
func (r *Rules) Email(email string) []string {
	if email == "" {
		return []string{msgEmailRequired}
	}

	if err := r.validate.Var(email, "email"); err != nil {
		return []string{msgEmailInvalid}
	}
	return nil
}

// Password validates password composition
func (r *Rules) Password(password string) []string {
	return passwordViolations(password)
}

// ConfirmPassword validates that confirmation repeats password exactly
func (r *Rules) ConfirmPassword(password, confirm string) []string {
	if confirm == "" {
		return []string{msgConfirmRequired}
	}

	if confirm != password {
		return []string{msgPasswordsMatch}
	}
	return nil
}

// Field validates a single form field, values holds the whole form for cross-field rules
func (r *Rules) Field(name string, values map[string]string) []string {
	switch name {
	case FieldEmail:
		return r.Email(values[FieldEmail])
	case FieldPassword:
		return r.Password(values[FieldPassword])
	case FieldConfirmPassword:
		return r.ConfirmPassword(values[FieldPassword], values[FieldConfirmPassword])
	default:
		return nil
	}
}

// Login validates login credentials and keeps first violation per field
func (r *Rules) Login(c model.Credentials) error {
	return r.Struct(&c)
}

// SignUp validates signup credentials and keeps first violation per field
func (r *Rules) SignUp(c model.SignUpCredentials) error {
	return r.Struct(&c)
}

// Struct runs tag-based validation and converts result to ValidationErrors
func (r *Rules) Struct(i any) error {
	err := r.validate.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	res := make(apperrors.ValidationErrors, 0, len(ve))
	for _, e := range ve {
		res = append(res, apperrors.NewValidationError(e.Field(), e.Translate(r.translator)))
	}
	return res
}

func passwordViolations(password string) []string {
	if password == "" {
		return []string{msgPasswordRequired}
	}

	var violations []string
	for _, c := range passwordChecks {
		if !c.ok(password) {
			violations = append(violations, c.message)
		}
	}
	return violations
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func noopRegistration(ut.Translator) error {
	return nil
}

func fieldMessage(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case FieldEmail:
			return msgEmailRequired
		case FieldPassword:
			return msgPasswordRequired
		case FieldConfirmPassword:
			return msgConfirmRequired
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return msgEmailInvalid
	case "password":
		if v, ok := fe.Value().(string); ok {
			if violations := passwordViolations(v); len(violations) > 0 {
				return violations[0]
			}
		}
		return "Password is too weak"
	case "eqfield":
		return msgPasswordsMatch
	}
	return fe.Error()
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mestraaurora/aurora-api/internal/dto"
)

var (
	// ErrContactIncomplete indicates a contact message with a missing field.
	ErrContactIncomplete = errors.New("contact message is missing required fields")
	// ErrContactEmail indicates a contact message with a malformed sender address.
	ErrContactEmail = errors.New("contact message has an invalid email")
)

var simpleEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var birthDateLayouts = []string{"2006-01-02", "02/01/2006", time.RFC3339}

// ValidationError lists every defect found in a reading request, in check order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

var readingFieldMessages = map[string]string{
	"Nome":             "Nome é obrigatório",
	"Sexo":             `Sexo é obrigatório e deve ser "masculino" ou "feminino"`,
	"DataNascimento":   "Data de nascimento é obrigatória",
	"Email":            "E-mail é obrigatório",
	"MarketingConsent": "Você precisa concordar com o recebimento de comunicações para receber a leitura",
}

var readingRuleMessages = map[string]string{
	"DataNascimento.birthdate": "Data de nascimento inválida",
	"Email.simple_email":       "E-mail inválido",
}

// SubmissionValidator checks inbound form payloads.
type SubmissionValidator struct {
	validate *validator.Validate
}

// NewSubmissionValidator registers the form rules on v.
func NewSubmissionValidator(v *validator.Validate) (*SubmissionValidator, error) {
	rules := map[string]validator.Func{
		"notblank":     isNotBlank,
		"simple_email": isSimpleEmail,
		"birthdate":    isBirthDate,
		"consent":      isConsentGiven,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s rule: %w", tag, err)
		}
	}

	return &SubmissionValidator{validate: v}, nil
}

// ReadingErrors returns human readable defects of req. An empty slice means req is valid.
func (s *SubmissionValidator) ReadingErrors(req dto.ReadingRequest) []string {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{"Dados inválidos"}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if msg, ok := readingRuleMessages[fe.StructField()+"."+fe.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, readingFieldMessages[fe.StructField()])
	}

	return messages
}

// ContactError returns ErrContactIncomplete, ErrContactEmail or nil.
func (s *SubmissionValidator) ContactError(req dto.ContactRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return ErrContactIncomplete
	}

	invalidEmail := false
	for _, fe := range fieldErrors {
		if fe.Tag() == "notblank" {
			return ErrContactIncomplete
		}
		if fe.Tag() == "simple_email" {
			invalidEmail = true
		}
	}
	if invalidEmail {
		return ErrContactEmail
	}

	return ErrContactIncomplete
}

func parseBirthDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range birthDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised birth date %q", raw)
}

func isNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func isSimpleEmail(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.Kind() == reflect.String && simpleEmailPattern.MatchString(field.String())
}

func isBirthDate(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := parseBirthDate(field.String())
	return err == nil
}

// isConsentGiven accepts only the boolean true; truthy strings or numbers are rejected.
func isConsentGiven(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.Kind() == reflect.Bool && field.Bool()
}

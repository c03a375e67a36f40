package service

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

// Field rules for the client contact record. The name charset is Latin
// letters plus accented vowels and ñ; the CI format is the La Paz identity
// document convention (digits, optional whitespace, "LP" suffix).
var (
	nameRe  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ ]+$`)
	ciRe    = regexp.MustCompile(`^\d+\s*LP$`)
	digitRe = regexp.MustCompile(`\D`)
)

// Validation messages, worded exactly as the site displays them.
const (
	msgNameShort    = "El nombre es demasiado corto"
	msgNameCharset  = "El nombre solo debe contener letras"
	msgPhoneInvalid = "El teléfono es requerido y debe tener al menos 7 dígitos"
	msgEmailInvalid = "Correo inválido"
	msgCIInvalid    = "El CI debe terminar en 'LP' (Ej: 123456 LP)"
)

// ClientValidator validates a domain.ClientInfo snapshot against the site's
// contact schema. It is pure and stateless: the same snapshot always yields
// the same result, so it can be re-invoked on every keystroke.
type ClientValidator struct {
	v *validator.Validate
	// requireCI switches the national-id field from optional to required.
	requireCI bool
}

// NewClientValidator builds a validator. requireCI selects the stricter
// schema revision in which the national id is mandatory.
func NewClientValidator(requireCI bool) *ClientValidator {
	v := validator.New()
	// Errors are impossible here: the tags are constant and the functions non-nil.
	_ = v.RegisterValidation("client_name", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("bo_phone", func(fl validator.FieldLevel) bool {
		return len(digitRe.ReplaceAllString(fl.Field().String(), "")) >= 7
	})
	_ = v.RegisterValidation("bo_ci", func(fl validator.FieldLevel) bool {
		return ciRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return &ClientValidator{v: v, requireCI: requireCI}
}

// Validate returns the schema-level outcome for client: a valid flag plus a
// per-field message map (field names: name, phone, email, ci).
func (cv *ClientValidator) Validate(client domain.ClientInfo) ports.ClientValidation {
	errs := make(map[string]string)

	switch {
	case cv.v.Var(client.Name, "required,min=2") != nil:
		errs["name"] = msgNameShort
	case cv.v.Var(client.Name, "client_name") != nil:
		errs["name"] = msgNameCharset
	}

	if cv.v.Var(client.Phone, "required,bo_phone") != nil {
		errs["phone"] = msgPhoneInvalid
	}

	if cv.v.Var(client.Email, "omitempty,email") != nil {
		errs["email"] = msgEmailInvalid
	}

	ciTag := "omitempty,bo_ci"
	if cv.requireCI {
		ciTag = "required,bo_ci"
	}
	if cv.v.Var(client.NationalID, ciTag) != nil {
		errs["ci"] = msgCIInvalid
	}

	if len(errs) > 0 {
		return ports.ClientValidation{Valid: false, Errors: errs}
	}
	return ports.ClientValidation{Valid: true, Errors: map[string]string{}}
}

// Err converts a failed validation into a *domain.ValidationError, or nil
// when the snapshot is valid.
func (cv *ClientValidator) Err(client domain.ClientInfo) error {
	res := cv.Validate(client)
	if res.Valid {
		return nil
	}
	return &domain.ValidationError{Fields: res.Errors}
}

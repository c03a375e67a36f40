package service

import (
	"reflect"
	"testing"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

func TestClientValidator_DefaultSchema(t *testing.T) {
	cv := NewClientValidator(false)

	tests := []struct {
		name      string
		client    domain.ClientInfo
		valid     bool
		badFields []string
	}{
		{
			name:   "minimal valid client",
			client: domain.ClientInfo{Name: "Juan Perez", Phone: "77712345"},
			valid:  true,
		},
		{
			name:   "accented name is accepted",
			client: domain.ClientInfo{Name: "María Ñáñez", Phone: "77712345"},
			valid:  true,
		},
		{
			name:      "name too short and phone too short",
			client:    domain.ClientInfo{Name: "J", Phone: "123456"},
			valid:     false,
			badFields: []string{"name", "phone"},
		},
		{
			name:      "name with digits",
			client:    domain.ClientInfo{Name: "Juan 2", Phone: "77712345"},
			valid:     false,
			badFields: []string{"name"},
		},
		{
			name:      "empty phone",
			client:    domain.ClientInfo{Name: "Juan Perez"},
			valid:     false,
			badFields: []string{"phone"},
		},
		{
			name:   "phone with separators still has seven digits",
			client: domain.ClientInfo{Name: "Juan Perez", Phone: "777-12-345"},
			valid:  true,
		},
		{
			name:      "bad email",
			client:    domain.ClientInfo{Name: "Juan Perez", Phone: "77712345", Email: "no-arroba"},
			valid:     false,
			badFields: []string{"email"},
		},
		{
			name:   "good email",
			client: domain.ClientInfo{Name: "Juan Perez", Phone: "77712345", Email: "juan@email.com"},
			valid:  true,
		},
		{
			name:      "malformed optional CI is still checked",
			client:    domain.ClientInfo{Name: "Juan Perez", Phone: "77712345", NationalID: "123456"},
			valid:     false,
			badFields: []string{"ci"},
		},
		{
			name:   "well-formed CI",
			client: domain.ClientInfo{Name: "Juan Perez", Phone: "77712345", NationalID: "123456 LP"},
			valid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := cv.Validate(tt.client)
			if res.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v (errors: %v)", res.Valid, tt.valid, res.Errors)
			}
			for _, f := range tt.badFields {
				if _, ok := res.Errors[f]; !ok {
					t.Errorf("expected an error for field %q, got %v", f, res.Errors)
				}
			}
			if len(res.Errors) != len(tt.badFields) {
				t.Errorf("errors = %v, want exactly fields %v", res.Errors, tt.badFields)
			}
		})
	}
}

func TestClientValidator_RequiredCI(t *testing.T) {
	cv := NewClientValidator(true)

	res := cv.Validate(domain.ClientInfo{Name: "Juan Perez", Phone: "77712345"})
	if res.Valid {
		t.Fatal("client without CI must be invalid when CI is required")
	}
	if _, ok := res.Errors["ci"]; !ok {
		t.Fatalf("expected a ci error, got %v", res.Errors)
	}

	res = cv.Validate(domain.ClientInfo{Name: "Juan Perez", Phone: "77712345", NationalID: "987654 LP"})
	if !res.Valid {
		t.Fatalf("expected valid with CI present, got %v", res.Errors)
	}
}

func TestClientValidator_PureAndIdempotent(t *testing.T) {
	cv := NewClientValidator(false)
	client := domain.ClientInfo{Name: "J", Phone: ""}

	first := cv.Validate(client)
	second := cv.Validate(client)
	if first.Valid != second.Valid || !reflect.DeepEqual(first.Errors, second.Errors) {
		t.Fatalf("validator is not idempotent: %v vs %v", first, second)
	}
}

func TestClientValidator_Err(t *testing.T) {
	cv := NewClientValidator(false)

	if err := cv.Err(domain.ClientInfo{Name: "Juan Perez", Phone: "77712345"}); err != nil {
		t.Fatalf("expected nil for a valid client, got %v", err)
	}

	err := cv.Err(domain.ClientInfo{})
	ve, ok := err.(*domain.ValidationError)
	if !ok {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if _, hasName := ve.Fields["name"]; !hasName {
		t.Fatalf("expected name in field map, got %v", ve.Fields)
	}
}

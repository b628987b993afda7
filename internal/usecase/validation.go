package usecase

import (
	"fmt"
	"strings"
)

// Campos obrigatórios do formulário, com o nome que o front usa.
var RequiredLeadFields = []string{"nome", "email", "mensagem"}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"nome", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	}
	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"mensagem", "is required"})
	}

	return errors
}

func newValidationError(errs []ValidationError) *DomainError {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "Campos obrigatórios não preenchidos: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

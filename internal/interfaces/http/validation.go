package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateBody aplica as tags `validate` do DTO; falhas viram domain.ErrInvalidInput.
func validateBody(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s é obrigatório", jsonName(fe)))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s excede %s caracteres", jsonName(fe), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s inválido", jsonName(fe)))
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func jsonName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "nome"
	case "TaxID":
		return "cpf"
	case "Period":
		return "periodo"
	case "User":
		return "usuario"
	case "Password":
		return "senha"
	default:
		return strings.ToLower(fe.Field())
	}
}

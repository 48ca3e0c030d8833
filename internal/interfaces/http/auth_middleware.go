package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/auth"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
)

// AuthMiddleware exige Bearer Token válido para o operador.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeError(c, fmt.Errorf("%w: formato esperado Bearer <token>", domain.ErrUnauthorized))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token vazio"})
		}
		if _, err := uc.Authenticate(tokenString); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}

// Package auth login do operador da folha. Há uma única credencial, vinda da
// configuração (usuário + hash bcrypt); o token emitido é um JWT HS256.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials credencial do operador.
type Credentials struct {
	User         string
	PasswordHash string
}

// AuthUseCase casos de uso de autenticação.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Enabled indica se há segredo JWT configurado; sem ele a API fica aberta.
func (uc *AuthUseCase) Enabled() bool {
	return uc != nil && uc.jwtCfg.Secret != ""
}

// Login confere usuário e senha e devolve um JWT. Credencial errada → domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() || uc.creds.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(in.User), []byte(uc.creds.User)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.creds.User, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("gerar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}

// Authenticate valida um token e devolve o usuário. Token inválido → domain.ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(token string) (string, error) {
	user, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return user, nil
}

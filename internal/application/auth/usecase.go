package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/access"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
	"github.com/jhoicas/supermack-billing/internal/domain/repository"
	"github.com/jhoicas/supermack-billing/pkg/jwt"
	"github.com/jhoicas/supermack-billing/pkg/logger"
)

// Mensajes que el front muestra tal cual en el formulario de login.
const (
	MsgCredentialsRequired = "email y password son requeridos"
	MsgInvalidCredentials  = "credenciales inválidas"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// CartCloser descarta el carrito en curso de una sesión cerrada.
type CartCloser interface {
	EndSession(ctx context.Context, sessionID string) error
}

// AuthUseCase casos de uso de sesión: login, logout y resolución del token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	carts    CartCloser
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. log puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, carts CartCloser, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, carts: carts, jwtCfg: jwtCfg, log: log}
}

// Login verifica email/password, crea la sesión y retorna token, usuario y rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.Invalid("email", MsgCredentialsRequired)
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
		uc.log.Info().Str("email", email).Msg("login rechazado: usuario inexistente")
		return nil, domain.WithMessage(domain.ErrUnauthorized, MsgInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Info().Str("email", email).Msg("login rechazado: password incorrecto")
		return nil, domain.WithMessage(domain.ErrUnauthorized, MsgInvalidCredentials)
	}

	sessionID := uuid.NewString()
	token, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, user.ID, uc.jwtCfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	session := &entity.Session{
		ID:       sessionID,
		Token:    token,
		UserID:   user.ID,
		Username: user.Name,
		Role:     user.Role,
		User: entity.SessionUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login ok")

	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserFromEntity(user),
		Role:  string(user.Role),
	}, nil
}

// Logout borra la sesión completa y su carrito. Es idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	// primero la sesión: el punto de venta deja de aceptar cambios del carrito
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	if err := uc.carts.EndSession(ctx, sessionID); err != nil {
		return err
	}
	uc.log.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

// Resolve valida el token y carga la sesión. Token inválido, firmado con otra
// clave o de una sesión cerrada -> ErrUnauthorized.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	sessionID, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("token: %v: %w", err, domain.ErrUnauthorized)
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("cargar sesión: %w", err)
	}
	if session.Token != token {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// Me describe la sesión actual con las vistas que el rol puede abrir.
func (uc *AuthUseCase) Me(s *entity.Session) dto.SessionResponse {
	views := access.Views(s.Role)
	paths := make([]string, 0, len(views))
	for _, v := range views {
		paths = append(paths, string(v))
	}
	return dto.SessionResponse{
		SessionID: s.ID,
		Username:  s.Username,
		Role:      string(s.Role),
		User: dto.UserResponse{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
			Role:  string(s.User.Role),
		},
		LastInvoice: dto.LastInvoiceFromEntity(s.LastInvoice),
		Views:       paths,
		CreatedAt:   s.CreatedAt,
	}
}

// Navigation menú lateral de la sesión.
func (uc *AuthUseCase) Navigation(s *entity.Session) dto.NavigationResponse {
	items := []dto.NavigationItem{}
	for _, v := range access.Views(s.Role) {
		items = append(items, dto.NavigationItem{Path: string(v), Label: access.Label(v)})
	}
	return dto.NavigationResponse{Role: string(s.Role), Items: items}
}

// Decide evalúa el acceso de la sesión (puede ser nil) a una vista.
func (uc *AuthUseCase) Decide(s *entity.Session, view access.View) dto.NavigationDecision {
	d := access.Authorize(s, view)
	roles := []string{}
	for _, r := range access.AllowedRoles(view) {
		roles = append(roles, string(r))
	}
	return dto.NavigationDecision{
		View:         string(view),
		Allowed:      d.Allowed,
		Redirect:     string(d.Redirect),
		AllowedRoles: roles,
	}
}

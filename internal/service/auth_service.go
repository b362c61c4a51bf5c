package service

import (
	"context"
	"errors"
	"time"

	"estoquepos/internal/config"
	"estoquepos/internal/dto"
	"estoquepos/internal/model"
	"estoquepos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"golang.org/x/crypto/bcrypt"
)

// DenylistPrefix namespaces revoked-token keys in Redis. The auth
// middleware checks the same namespace on every protected request.
const DenylistPrefix = "auth:denylist:"

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token's jti until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo repository.UsuarioRepository
	rdb  *redis.Client
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, rdb *redis.Client, cfg *config.Config) AuthService {
	return &authService{repo: repo, rdb: rdb, cfg: cfg}
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, ErrSenhasNaoCoincidem
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailJaRegistrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: string(hash),
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:    usuario.ID.String(),
		Nome:  usuario.Nome,
		Email: usuario.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	expiracao := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := jwt.MapClaims{
		"user_id": usuario.ID.String(),
		"nome":    usuario.Nome,
		"email":   usuario.Email,
		"jti":     newJTI(),
		"exp":     time.Now().Add(expiracao).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:    usuario.ID.String(),
			Nome:  usuario.Nome,
			Email: usuario.Email,
		},
	}, nil
}

func newJTI() string { return uuid.NewString() }

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, DenylistPrefix+jti, "1", ttl).Err()
}

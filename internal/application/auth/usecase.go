package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
	"github.com/gewis/gewisweb-api/pkg/jwt"
)

// JWTConfig configures token generation.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase logs members in.
type AuthUseCase struct {
	members repository.MemberRepository
	jwtCfg  JWTConfig
	now     func() time.Time
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(members repository.MemberRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{members: members, jwtCfg: jwtCfg, now: time.Now}
}

// Login checks email and password and returns a token. Unknown emails and wrong passwords both
// yield domain.ErrUnauthorized; expired memberships domain.ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	m, err := uc.members.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if m == nil || m.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !m.IsActive(uc.now()) {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, m.LidNr, string(m.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Member: ToMemberResponse(m)}, nil
}

// HashPassword returns the bcrypt hash stored for members.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SetPassword replaces the password of a member.
func (uc *AuthUseCase) SetPassword(ctx context.Context, lidnr int, password string) error {
	m, err := uc.members.GetByLidNr(ctx, lidnr)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrMemberNotFound
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return uc.members.UpdatePassword(ctx, lidnr, hash)
}

// ToMemberResponse maps a member to its public data.
func ToMemberResponse(m *entity.Member) dto.MemberResponse {
	return dto.MemberResponse{
		LidNr:    m.LidNr,
		Email:    m.Email,
		FullName: m.FullName(),
		Role:     string(m.Role),
	}
}

package usecase

import (
	"context"
	"errors"

	"github.com/nsushman/Project-Vealth/internal/domain"
	"github.com/nsushman/Project-Vealth/internal/infrastructure/security"
)

type AuthUseCase struct {
	verifier    *security.IdentityVerifier
	tokens      *security.TokenManager
	sessions    SessionStore
	provisioner *Provisioner
}

func NewAuthUseCase(
	verifier *security.IdentityVerifier,
	tokens *security.TokenManager,
	sessions SessionStore,
	provisioner *Provisioner,
) *AuthUseCase {
	return &AuthUseCase{
		verifier:    verifier,
		tokens:      tokens,
		sessions:    sessions,
		provisioner: provisioner,
	}
}

// SignIn: проверяем токен провайдера, при первом входе наполняем аккаунт
// демо-данными и выдаем свою пару токенов.
func (uc *AuthUseCase) SignIn(ctx context.Context, idToken string) (string, string, *domain.User, error) {
	identity, err := uc.verifier.Verify(idToken)
	if err != nil {
		return "", "", nil, err
	}

	user, err := uc.provisioner.EnsureUser(ctx, identity)
	if err != nil {
		return "", "", nil, err
	}

	access, refresh, err := uc.generateAndSaveTokens(ctx, identity.UID)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (uc *AuthUseCase) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	uid, err := uc.tokens.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return "", "", err
	}

	cachedUID, err := uc.sessions.CheckRefresh(ctx, oldRefreshToken)
	if err != nil || cachedUID != uid {
		return "", "", errors.New("token revoked")
	}
	// Удаляем старый
	_ = uc.sessions.DeleteRefresh(ctx, oldRefreshToken)

	return uc.generateAndSaveTokens(ctx, uid)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.sessions.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) ValidateAccess(token string) (string, error) {
	return uc.tokens.ValidateAccessToken(token)
}

func (uc *AuthUseCase) generateAndSaveTokens(ctx context.Context, uid string) (string, string, error) {
	access, refresh, err := uc.tokens.Generate(uid)
	if err != nil {
		return "", "", err
	}

	if err := uc.sessions.SaveRefresh(ctx, uid, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

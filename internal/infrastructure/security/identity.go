package security

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

// IdentityVerifier проверяет ID-токен внешнего провайдера входа.
// Сам popup-вход живет на клиенте, сюда прилетает только токен.
type IdentityVerifier struct {
	secret []byte
}

func NewIdentityVerifier(secret string) *IdentityVerifier {
	return &IdentityVerifier{secret: []byte(secret)}
}

func (v *IdentityVerifier) Verify(idToken string) (*domain.Identity, error) {
	token, err := jwt.Parse(idToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidIdentity
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidIdentity
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return nil, domain.ErrInvalidIdentity
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &domain.Identity{UID: uid, Name: name, Email: email}, nil
}

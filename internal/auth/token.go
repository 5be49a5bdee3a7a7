// Package auth parses the storefront session token. Authentication
// itself is owned by the external identity provider; we only read the
// profile claims it signed, to prefill the billing form.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims are the profile fields carried in the identity provider's JWT.
type Claims struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// ParseSession validates the token signature and returns its claims.
func (v *Verifier) ParseSession(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BillingDefaults maps profile claims onto a partially filled billing
// form. Address fields start blank; the shopper completes them.
func BillingDefaults(claims *Claims) domain.BillingInformation {
	if claims == nil {
		return domain.BillingInformation{}
	}
	return domain.BillingInformation{
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Email:     claims.Email,
		Phone:     claims.Phone,
	}
}

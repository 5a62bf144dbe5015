package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	jwtlib.RegisteredClaims
}

// PortalClaims prove a successful deliverable password entry for one job.
// They are short-lived and scoped to the portal, never to the API.
type PortalClaims struct {
	JobID string `json:"job_id"`
	Scope string `json:"scope"`
	jwtlib.RegisteredClaims
}

const portalScope = "portal_unlock"

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) GenerateToken(accountID, role string) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}

func (s *Service) GeneratePortalToken(jobID string, ttl time.Duration) (string, error) {
	claims := PortalClaims{
		JobID: jobID,
		Scope: portalScope,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidatePortalToken returns the job the token unlocks, or an error for
// anything expired, malformed or carrying the wrong scope.
func (s *Service) ValidatePortalToken(tokenStr string) (string, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &PortalClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(*PortalClaims)
	if !ok || claims.Scope != portalScope {
		return "", errors.New("invalid claims")
	}

	return claims.JobID, nil
}

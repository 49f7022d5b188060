package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
)

const defaultTTLMinutes = 180

// Claims is the claim set embedded in every access token.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 access tokens carrying user identity and the
// resolved role claim.
type TokenIssuer struct {
	secret   string
	issuer   string
	audience string
	ttl      time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// NewTokenIssuer builds an issuer. ttlMinutes <= 0 falls back to the
// 180-minute default. An empty secret, issuer or audience is tolerated here
// and rejected at issuance time so the failure surfaces on first use.
func NewTokenIssuer(secret, issuer, audience string, ttlMinutes int) *TokenIssuer {
	if ttlMinutes <= 0 {
		ttlMinutes = defaultTTLMinutes
	}
	return &TokenIssuer{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		now:      time.Now,
	}
}

// Issue signs a token for user. Returns domain.ErrJWTConfigMissing when the
// signing configuration is incomplete.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	if t.secret == "" || t.issuer == "" || t.audience == "" {
		return "", domain.ErrJWTConfigMissing
	}

	now := t.now().UTC()
	claims := Claims{
		Name: user.Users,
		Role: domain.RoleName(user.RoleID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.UserID),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.secret))
}

// Parse validates a compact token string: HS256 signature against the
// configured secret, exact issuer and audience match, and lifetime with
// zero clock-skew tolerance. Returns the decoded claims on success.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(t.secret), nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

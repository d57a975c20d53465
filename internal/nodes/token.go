package nodes

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by a node credential token.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// MintToken issues an HS256 token for a node. The node id becomes the
// subject; ttl of zero means no expiry.
func MintToken(secret []byte, nodeID, role string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("nodes: empty signing secret")
	}
	if nodeID == "" {
		return "", errors.New("nodes: empty node id")
	}
	claims := TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  nodeID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a node token and returns its claims.
func ParseToken(tokenString string, secret []byte) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.New("nodes: empty token")
	}
	if len(secret) == 0 {
		return nil, errors.New("nodes: empty signing secret")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &TokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("nodes: invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("nodes: invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("nodes: missing subject")
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("nodes: token expired")
	}
	return claims, nil
}

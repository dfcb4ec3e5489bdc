package session

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/me4war/meshwar-client/internal/models"
)

// Claim URIs used by the issuing server.
const (
	claimName   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	claimEmail  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimUserID = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimRole   = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

// fallbackName is shown when the token carries no name claim.
const fallbackName = "مستخدم"

// defaultAvatarURL is used until a profile image is fetched.
const defaultAvatarURL = "https://i.pravatar.cc/40"

var ErrMalformedToken = errors.New("malformed token")

// decodeClaims reads the claims segment of a token without verifying the
// signature or expiry. The client trusts the issuing server; an expired token
// stays usable locally until a server call rejects it.
func decodeClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// IdentityFromToken derives the current user from token claims. A missing or
// malformed token yields nil without an error.
func IdentityFromToken(token string) *models.User {
	if token == "" {
		return nil
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return nil
	}

	user := &models.User{
		Name:            fallbackName,
		ProfileImageURL: defaultAvatarURL,
	}
	if name, ok := claims[claimName].(string); ok && name != "" {
		user.Name = name
	}
	if email, ok := claims[claimEmail].(string); ok {
		user.Email = email
	}
	if id, ok := claims[claimUserID].(string); ok {
		user.ID = id
	}
	return user
}

// UserIDFromToken returns the numeric user id claim, or "" when absent.
func UserIDFromToken(token string) string {
	if token == "" {
		return ""
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return ""
	}
	id, _ := claims[claimUserID].(string)
	return id
}

// IsAdminToken reports whether the role claim grants admin access. The claim
// may be a single string or a list, matched case-insensitively against
// "admin" and the legacy "admain" spelling still issued for old accounts.
func IsAdminToken(token string) bool {
	if token == "" {
		return false
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return false
	}

	switch roles := claims[claimRole].(type) {
	case string:
		return isAdminRole(roles)
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok && isAdminRole(s) {
				return true
			}
		}
	}
	return false
}

func isAdminRole(role string) bool {
	role = strings.ToLower(role)
	return role == "admin" || role == "admain"
}

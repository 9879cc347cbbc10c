package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the data stored inside the JWT.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed JWT for a specific user. The server never
// mints credentials at runtime; issuance belongs to the account service.
// Kept for tests and the dev client.
func IssueToken(secret string, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "notify-lab",
		},
	}

	// Create the token using the HS256 algorithm (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verifier validates the bearer tokens presented at connection time.
// The token is an opaque credential issued elsewhere: every validation
// failure (signature, expiry, malformed input) maps to a negative result,
// never to an error or a panic.
type Verifier struct {
	secret []byte
	log    *slog.Logger
}

func NewVerifier(log *slog.Logger, secret string) *Verifier {
	return &Verifier{secret: []byte(secret), log: log}
}

// UserID extracts the user identity from a token.
func (v *Verifier) UserID(tokenString string) (int64, bool) {
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Provide the secret key for validation.
		return v.secret, nil
	})
	if err != nil {
		v.log.Warn("Rejected bearer token", "err", err)
		return 0, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// Valid reports whether the token passes the same validation as UserID.
func (v *Verifier) Valid(tokenString string) bool {
	_, ok := v.UserID(tokenString)
	return ok
}

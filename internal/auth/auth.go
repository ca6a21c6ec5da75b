package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/employee-portal/internal"
	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of account roles the portal understands. Anything
// else stored in the database is treated as a configuration error at the
// boundary, not branched on per-handler.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	default:
		return "", ErrUnknownRole
	}
}

// DashboardPath is where a freshly logged-in principal gets redirected.
func (r Role) DashboardPath() string {
	if r == RoleAdmin {
		return "/admin/dashboard"
	}
	return "/staff_dashboard"
}

// Credential is the users row joined to its owning employee, as needed to
// decide a login attempt.
type Credential struct {
	UserID         int64
	EmpID          int64
	Username       string
	PasswordHash   string
	Role           string
	EmployeeStatus string
}

// Session is what a successful login hands back to the presentation layer.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	EmpID    int64  `json:"emp_id"`
	Redirect string `json:"redirect"`
}

// Claims is the identity token payload: user_id, username, role, emp_id.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	EmpID    int64  `json:"emp_id"`
	jwt.RegisteredClaims
}

// TokenGenerator issues and validates session tokens.
type TokenGenerator interface {
	GenerateSessionToken(p *internal.Principal) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret     []byte
	SessionTTL time.Duration
}

func NewJWTTokenGenerator(secret string, sessionTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:     []byte(secret),
		SessionTTL: sessionTTL,
	}
}

// GenerateSessionToken creates the opaque identity token issued at login.
func (j *JWTTokenGenerator) GenerateSessionToken(p *internal.Principal) (string, error) {
	expiresAt := time.Now().Add(j.SessionTTL)

	claims := &Claims{
		UserID:   p.UserID,
		Username: p.Username,
		Role:     p.Role,
		EmpID:    p.EmpID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%d", p.UserID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken validates a session token and returns its claims.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnknownRole         = errors.New("unknown role")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrEmployeeNotEligible = errors.New("invalid or inactive employee id")
	ErrAccountExists       = errors.New("account already exists for this employee id")
	ErrUsernameTaken       = errors.New("username already taken")
)

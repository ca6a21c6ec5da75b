package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-portal/internal"
	"github.com/frahmantamala/employee-portal/internal/transport"
	"github.com/frahmantamala/employee-portal/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (Session, error)
	Register(dto RegisterDTO) error
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "All fields are required", "/login")
		return
	}

	session, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("authentication failed", "error", err)

		switch {
		case errors.Is(err, ErrUnknownRole):
			h.WriteFlash(w, http.StatusForbidden, "warning", "Invalid role. Contact administrator.", "/login")
		case errors.Is(err, ErrInvalidCredentials):
			h.WriteFlash(w, http.StatusUnauthorized, "danger", "Invalid username or password", "/login")
		default:
			var verr ValidationError
			if errors.As(err, &verr) {
				h.WriteFlash(w, http.StatusBadRequest, "warning", "All fields are required", "/login")
			} else {
				h.HandleError(w, err)
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, session)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "All fields are required", "/register")
		return
	}

	if err := h.Service.Register(dto); err != nil {
		switch {
		case errors.Is(err, ErrEmployeeNotEligible):
			h.WriteFlash(w, http.StatusBadRequest, "warning", "Invalid or inactive Employee ID", "/register")
		case errors.Is(err, ErrAccountExists):
			h.WriteFlash(w, http.StatusConflict, "info", "Account already exists for this Employee ID", "/login")
		case errors.Is(err, ErrUsernameTaken):
			h.WriteFlash(w, http.StatusConflict, "warning", "Username already taken", "/register")
		default:
			var verr ValidationError
			if errors.As(err, &verr) {
				h.WriteFlash(w, http.StatusBadRequest, "warning", "All fields are required", "/register")
			} else {
				h.Logger.Error("registration failed", "error", err)
				h.HandleError(w, err)
			}
		}
		return
	}

	h.WriteFlash(w, http.StatusCreated, "success", "Account created successfully", "/login")
}

// Logout acknowledges the session is over; the token itself is simply
// discarded by the client since its lifetime is self-contained.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token != "" {
		if _, err := h.Service.ValidateAccessToken(token); err != nil {
			h.Logger.Warn("logout with invalid token", "error", err)
		}
	}

	h.WriteFlash(w, http.StatusOK, "success", "You have been logged out successfully", "/login")
}

// RequireAuth is the access gate: it rejects requests without a valid
// session token and attaches the verified principal to the context.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteFlash(w, http.StatusUnauthorized, "warning", "Please login first", "/login")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteFlash(w, http.StatusUnauthorized, "warning", "Please login first", "/login")
			return
		}

		principal := &internal.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
			EmpID:    claims.EmpID,
		}

		ctx := internal.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is the stricter gate variant for /admin routes.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := internal.PrincipalFromContext(r.Context())
		if !ok || principal == nil {
			h.WriteFlash(w, http.StatusUnauthorized, "warning", "Please login first", "/login")
			return
		}

		if principal.Role != string(RoleAdmin) {
			h.Logger.Warn("admin access denied", "user_id", principal.UserID, "role", principal.Role)
			h.WriteFlash(w, http.StatusForbidden, "warning", "Access denied!", "/login")
			return
		}

		next.ServeHTTP(w, r)
	})
}

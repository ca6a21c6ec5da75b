package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-portal/internal"
	"github.com/frahmantamala/employee-portal/internal/auth"
	"github.com/frahmantamala/employee-portal/internal/transport"
	"github.com/frahmantamala/employee-portal/pkg/logger"
)

type ServiceAPI interface {
	AdminStats() (*AdminStats, error)
	StaffDashboard(empID int64) (*StaffDashboard, error)
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

// Admin serves GET /admin/dashboard. The admin gate has already run; this
// only assembles the stats.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.AdminStats()
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

// Staff serves GET /staff_dashboard for the logged-in staff member's own
// data. Admins are turned away; this page only makes sense for staff.
func (h *Handler) Staff(w http.ResponseWriter, r *http.Request) {
	principal, ok := internal.PrincipalFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteFlash(w, http.StatusUnauthorized, "warning", "Please login first", "/login")
		return
	}

	if principal.Role != string(auth.RoleStaff) {
		h.WriteFlash(w, http.StatusForbidden, "warning", "Access denied!", "/login")
		return
	}

	if principal.EmpID <= 0 {
		h.WriteFlash(w, http.StatusUnauthorized, "warning", "Session expired. Please login again.", "/login")
		return
	}

	board, err := h.Service.StaffDashboard(principal.EmpID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			h.WriteFlash(w, http.StatusNotFound, "warning", "User data not found.", "/login")
			return
		}
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, board)
}

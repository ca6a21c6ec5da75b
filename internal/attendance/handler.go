package attendance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/employee-portal/internal/transport"
	"github.com/frahmantamala/employee-portal/pkg/logger"
)

type ServiceAPI interface {
	Mark(empID int64, action Action) (Outcome, error)
	ReportForEmployee(empID int64, day time.Time) (*Report, error)
	ReportForDate(day time.Time) (*Report, error)
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

// Mark handles POST /attendance with an action of checkin, checkout or
// absent. Repeats come back as informational flashes, never errors.
func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	var dto MarkDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "Employee ID is required", "/attendance")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "Employee ID is required", "/attendance")
		return
	}

	action, err := ParseAction(dto.Action)
	if err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "Unknown attendance action", "/attendance")
		return
	}

	outcome, err := h.Service.Mark(dto.EmpID, action)
	if err != nil {
		if errors.Is(err, ErrUnknownAction) {
			h.WriteFlash(w, http.StatusBadRequest, "warning", "Unknown attendance action", "/attendance")
			return
		}
		h.HandleError(w, err)
		return
	}

	status := http.StatusOK
	if outcome.Changed {
		status = http.StatusCreated
	}
	h.WriteFlash(w, status, outcome.Category, outcome.Message, "/attendance")
}

// Report serves GET /admin/attendance. A numeric emp_id selects employee
// mode; otherwise it reports all employees for one date. Malformed or
// missing dates fall back to today.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	day := ParseDay(r.URL.Query().Get("date"), time.Now())

	var report *Report
	var err error
	if empID, perr := strconv.ParseInt(r.URL.Query().Get("emp_id"), 10, 64); perr == nil && empID > 0 {
		report, err = h.Service.ReportForEmployee(empID, day)
	} else {
		report, err = h.Service.ReportForDate(day)
	}

	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}

package salary

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/employee-portal/internal/transport"
	"github.com/frahmantamala/employee-portal/pkg/logger"
)

type ServiceAPI interface {
	MonthlyReport(month time.Time, empID int64) (*Report, error)
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

// Report serves GET /admin/salary. The month parameter is YYYY-MM; anything
// missing or malformed falls back to the current month. A numeric emp_id
// narrows the report to one employee.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	month := ParseMonth(r.URL.Query().Get("month"), time.Now())

	var empID int64
	if id, err := strconv.ParseInt(r.URL.Query().Get("emp_id"), 10, 64); err == nil && id > 0 {
		empID = id
	}

	report, err := h.Service.MonthlyReport(month, empID)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}

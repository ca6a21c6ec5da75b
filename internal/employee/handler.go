package employee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-portal/internal/transport"
	"github.com/frahmantamala/employee-portal/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(filter ListFilter) (*Page, error)
	Get(empID int64) (*Employee, error)
	Create(dto CreateEmployeeDTO) (*Employee, error)
	Update(empID int64, dto UpdateEmployeeDTO) (*Employee, error)
	Delete(empID int64) error
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

// List serves the employee directory. Filters arrive as query parameters:
// q (name substring or exact employee ID), department, sort and page.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = p
		}
	}

	filter := ListFilter{
		Query:      r.URL.Query().Get("q"),
		Department: r.URL.Query().Get("department"),
		Sort:       ParseSort(r.URL.Query().Get("sort")),
		Page:       page,
	}

	result, err := h.Service.List(filter)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.empIDFromURL(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.Get(empID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteFlash(w, http.StatusNotFound, "warning", "Employee not found", "/admin/employees")
			return
		}
		h.HandleError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "All required fields must be filled", "/admin/employees")
		return
	}

	emp, err := h.Service.Create(dto)
	if err != nil {
		var verr ValidationError
		if errors.As(err, &verr) {
			h.WriteFlash(w, http.StatusBadRequest, "warning", "All required fields must be filled", "/admin/employees")
			return
		}
		h.HandleError(w, err)
		return
	}

	h.Logger.Info("employee created via api", "emp_id", emp.EmpID)
	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"employee": emp,
		"flash": transport.Flash{
			Category: "success",
			Message:  "Employee added successfully",
			Redirect: "/admin/employees",
		},
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.empIDFromURL(w, r)
	if !ok {
		return
	}

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "All required fields must be filled", "/admin/employees")
		return
	}

	emp, err := h.Service.Update(empID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			h.WriteFlash(w, http.StatusNotFound, "warning", "Employee not found", "/admin/employees")
		default:
			var verr ValidationError
			if errors.As(err, &verr) {
				h.WriteFlash(w, http.StatusBadRequest, "warning", "All required fields must be filled", "/admin/employees")
			} else {
				h.HandleError(w, err)
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employee": emp,
		"flash": transport.Flash{
			Category: "success",
			Message:  "Employee updated successfully",
			Redirect: "/admin/employees",
		},
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.empIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(empID); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteFlash(w, http.StatusNotFound, "warning", "Employee not found", "/admin/employees")
			return
		}
		h.HandleError(w, err)
		return
	}

	h.WriteFlash(w, http.StatusOK, "success", "Employee deleted successfully", "/admin/employees")
}

func (h *Handler) empIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	empID, err := strconv.ParseInt(chi.URLParam(r, "emp_id"), 10, 64)
	if err != nil || empID <= 0 {
		h.WriteFlash(w, http.StatusBadRequest, "warning", "Invalid employee ID", "/admin/employees")
		return 0, false
	}
	return empID, true
}

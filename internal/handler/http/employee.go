package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	// NextEmployeeID previews the id the next manager or member of a department would get
	NextEmployeeID(w http.ResponseWriter, r *http.Request)
	// AssignEmployeeID allocates and stores the id of one employee
	AssignEmployeeID(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// parseIDParam accepts unsigned decimal digits only
func parseIDParam(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	if !validator.IsNumeric(raw) {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

// NextEmployeeID handles GET /departments/{departmentID}/employee-ids/next
func (h *employeeHandlerImpl) NextEmployeeID(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := parseIDParam(r, "departmentID")
	if !ok {
		response.BadRequest(w, "Invalid department id", nil)
		return
	}

	req := employee.NextEmployeeIDRequest{
		DepartmentID: departmentID,
		Role:         r.URL.Query().Get("role"),
	}
	if raw := r.URL.Query().Get("exclude_user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "exclude_user_id must be an integer", nil)
			return
		}
		req.ExcludeUserID = &userID
	}

	result, err := h.employeeService.NextEmployeeID(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignEmployeeID handles PUT /employees/{userID}/employee-id
func (h *employeeHandlerImpl) AssignEmployeeID(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "userID")
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	var req employee.AssignEmployeeIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = userID

	result, err := h.employeeService.AssignEmployeeID(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee id assigned", result)
}

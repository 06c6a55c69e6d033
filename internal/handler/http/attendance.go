package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	// Classify previews the status a check-in/check-out pair would get
	Classify(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Classify handles POST /attendance/classify
func (h *attendanceHandlerImpl) Classify(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Classify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-core-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
)

type DashboardHandler interface {
	// GetStats returns today vs yesterday counts and changes
	GetStats(w http.ResponseWriter, r *http.Request)
	// GetSeries returns the attendance rate chart
	GetSeries(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService, now: time.Now}
}

// GetStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	if date := r.URL.Query().Get("date"); date != "" { // format: YYYY-MM-DD, default: today
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		today = parsed
	}

	result, err := h.dashboardService.GetDashboardStats(r.Context(), today, today.AddDate(0, 0, -1))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSeries handles GET /attendance/series
func (h *dashboardHandlerImpl) GetSeries(w http.ResponseWriter, r *http.Request) {
	period := dashboard.ParsePeriod(r.URL.Query().Get("period"))

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "days must be an integer", nil)
			return
		}
		days = n
	}

	result, err := h.dashboardService.GetSeries(r.Context(), period, days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

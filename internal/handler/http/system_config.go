package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/cmlabs-hris/attendance-core-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SystemConfigHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	InitializeDefaults(w http.ResponseWriter, r *http.Request)
	InvalidateCache(w http.ResponseWriter, r *http.Request)
}

type systemConfigHandlerImpl struct {
	systemConfigService sysconfig.SystemConfigService
}

func NewSystemConfigHandler(systemConfigService sysconfig.SystemConfigService) SystemConfigHandler {
	return &systemConfigHandlerImpl{systemConfigService: systemConfigService}
}

// List handles GET /system/configs
func (h *systemConfigHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.systemConfigService.ListConfigs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /system/configs/{key}
func (h *systemConfigHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sysconfig.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Key = chi.URLParam(r, "key")

	result, err := h.systemConfigService.UpdateConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "System configuration updated", result)
}

// InitializeDefaults handles POST /system/configs/initialize
func (h *systemConfigHandlerImpl) InitializeDefaults(w http.ResponseWriter, r *http.Request) {
	result, err := h.systemConfigService.InitializeDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default system configurations initialized", result)
}

// InvalidateCache handles POST /system/configs/cache/invalidate
func (h *systemConfigHandlerImpl) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.systemConfigService.InvalidateCache(r.Context())
	response.SuccessWithMessage(w, "System configuration cache cleared", nil)
}

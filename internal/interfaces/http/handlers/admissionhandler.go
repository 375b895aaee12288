package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	admissionApp "github.com/vistream-io/vistream/internal/application/admission"
	"github.com/vistream-io/vistream/internal/application/admission/dto"
	"github.com/vistream-io/vistream/internal/shared/logger"
	"github.com/vistream-io/vistream/internal/shared/utils"
)

// AdmissionHandler exposes the playback admission endpoints. The
// decision itself always comes back as 200 with granted true or false;
// non-200 statuses mean the request never reached a decision.
type AdmissionHandler struct {
	service *admissionApp.Service
	logger  logger.Interface
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(service *admissionApp.Service, log logger.Interface) *AdmissionHandler {
	return &AdmissionHandler{
		service: service,
		logger:  log,
	}
}

// CheckAdmission handles POST /api/playback/admission
func (h *AdmissionHandler) CheckAdmission(c *gin.Context) {
	var req dto.CheckAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// The caller may omit the address; the guard then evaluates the
	// connection's source address.
	if req.RequestIP == "" {
		req.RequestIP = c.ClientIP()
	}

	resp, err := h.service.CheckAdmission(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Heartbeat handles POST /api/playback/heartbeat
func (h *AdmissionHandler) Heartbeat(c *gin.Context) {
	var req dto.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.service.Heartbeat(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "heartbeat recorded", nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/response"
)

// PanelHandler serves the panel-member surface: viewing assigned
// contracts and submitting evaluation marks.
type PanelHandler struct {
	contracts *service.ContractService
	panels    *service.PanelService
	metrics   *service.MetricsService
}

// NewPanelHandler creates a new handler.
func NewPanelHandler(contracts *service.ContractService, panels *service.PanelService, metrics *service.MetricsService) *PanelHandler {
	return &PanelHandler{contracts: contracts, panels: panels, metrics: metrics}
}

// AssignedContracts godoc
// @Summary List assigned contracts
// @Description List the contracts assigned to the caller's panel
// @Tags Panel
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /panel/contracts [get]
func (h *PanelHandler) AssignedContracts(c *gin.Context) {
	contracts, err := h.panels.AssignedContracts(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contracts, nil)
}

// SubmitMarks godoc
// @Summary Submit evaluation marks
// @Description Record mid and/or final marks for a contract assigned to the caller's panel
// @Tags Panel
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param payload body service.PanelMarksRequest true "Marks payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /panel/contract/marks/{id} [post]
func (h *PanelHandler) SubmitMarks(c *gin.Context) {
	var req service.PanelMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid marks payload"))
		return
	}

	contract, err := h.contracts.SubmitPanelMarks(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/response"
)

// AdminHandler serves the admin console: account directories and
// evaluation panel management.
type AdminHandler struct {
	directory *service.DirectoryService
	contracts *service.ContractService
	panels    *service.PanelService
	metrics   *service.MetricsService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(directory *service.DirectoryService, contracts *service.ContractService, panels *service.PanelService, metrics *service.MetricsService) *AdminHandler {
	return &AdminHandler{directory: directory, contracts: contracts, panels: panels, metrics: metrics}
}

// Advisors godoc
// @Summary List advisors
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/advisors [get]
func (h *AdminHandler) Advisors(c *gin.Context) {
	advisors, cached, err := h.directory.Advisors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordCacheOperation(cached)
	response.JSON(c, http.StatusOK, advisors, nil, map[string]interface{}{"cached": cached})
}

// Students godoc
// @Summary List students
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students [get]
func (h *AdminHandler) Students(c *gin.Context) {
	students, cached, err := h.directory.Students(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordCacheOperation(cached)
	response.JSON(c, http.StatusOK, students, nil, map[string]interface{}{"cached": cached})
}

// AdvisorDetail godoc
// @Summary Get one advisor
// @Tags Admin
// @Produce json
// @Param id path string true "Advisor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/advisor/{id} [get]
func (h *AdminHandler) AdvisorDetail(c *gin.Context) {
	advisor, err := h.directory.AdvisorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, advisor, nil)
}

// StudentRequest godoc
// @Summary Get a student's active request
// @Description Look up the active supervision request by registration id
// @Tags Admin
// @Produce json
// @Param regId path string true "Registration ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/student/request/{regId} [get]
func (h *AdminHandler) StudentRequest(c *gin.Context) {
	regID := c.Param("regId")
	if regID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "registration id required"))
		return
	}
	contract, err := h.contracts.ActiveByRegistrationID(c.Request.Context(), regID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// CreatePanel godoc
// @Summary Create a panel
// @Description Seat an evaluation panel and optionally assign it to contracts
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.CreatePanelRequest true "Panel payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/panel [post]
func (h *AdminHandler) CreatePanel(c *gin.Context) {
	var req service.CreatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid panel payload"))
		return
	}

	detail, err := h.panels.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// PanelDetail godoc
// @Summary Get one panel
// @Tags Admin
// @Produce json
// @Param id path string true "Panel ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/panel/{id} [get]
func (h *AdminHandler) PanelDetail(c *gin.Context) {
	detail, err := h.panels.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Panels godoc
// @Summary List panels
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/panels [get]
func (h *AdminHandler) Panels(c *gin.Context) {
	panels, err := h.panels.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, panels, nil)
}

// PanelContracts godoc
// @Summary List a panel's contracts
// @Tags Admin
// @Produce json
// @Param id path string true "Panel ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/panel/{id}/contracts [get]
func (h *AdminHandler) PanelContracts(c *gin.Context) {
	contracts, err := h.panels.Contracts(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contracts, nil)
}

// ClosePanel godoc
// @Summary Close a panel
// @Description End a panel and release its members
// @Tags Admin
// @Produce json
// @Param id path string true "Panel ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /admin/panel/{id}/close [post]
func (h *AdminHandler) ClosePanel(c *gin.Context) {
	if err := h.panels.Close(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AvailableStaff godoc
// @Summary List staff not yet seated
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/panel/staff/available [get]
func (h *AdminHandler) AvailableStaff(c *gin.Context) {
	staff, err := h.panels.AvailableStaff(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

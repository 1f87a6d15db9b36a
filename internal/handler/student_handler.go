package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/response"
)

// StudentHandler serves the student surface: browsing advisors, creating
// a supervision request, and tracking its state.
type StudentHandler struct {
	contracts *service.ContractService
	directory *service.DirectoryService
	metrics   *service.MetricsService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(contracts *service.ContractService, directory *service.DirectoryService, metrics *service.MetricsService) *StudentHandler {
	return &StudentHandler{contracts: contracts, directory: directory, metrics: metrics}
}

// Advisors godoc
// @Summary List advisors
// @Description List advisors available for supervision requests
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/advisors [get]
func (h *StudentHandler) Advisors(c *gin.Context) {
	advisors, cached, err := h.directory.Advisors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordCacheOperation(cached)
	response.JSON(c, http.StatusOK, advisors, nil, map[string]interface{}{"cached": cached})
}

// RequestAdvisor godoc
// @Summary Request supervision
// @Description Create a supervision request naming the advisor and both group members
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.SelectAdvisorRequest true "Supervision request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /student/request/advisor [post]
func (h *StudentHandler) RequestAdvisor(c *gin.Context) {
	var req service.SelectAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid supervision request payload"))
		return
	}

	contract, err := h.contracts.SelectAdvisor(c.Request.Context(), claimsFromContext(c), req)
	h.metrics.ObserveTransition("create", err == nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, contract)
}

// CloseRequest godoc
// @Summary Withdraw a request
// @Description Close a supervision request the advisor has not yet responded to
// @Tags Student
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /student/close/request/{id} [post]
func (h *StudentHandler) CloseRequest(c *gin.Context) {
	contract, err := h.contracts.CloseByStudent(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	h.metrics.ObserveTransition("close_by_student", err == nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// Requests godoc
// @Summary List own requests
// @Description List the student's requests filtered by acceptance status
// @Tags Student
// @Produce json
// @Param status query string true "Acceptance status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /student/requests [get]
func (h *StudentHandler) Requests(c *gin.Context) {
	status := models.AcceptanceStatus(c.DefaultQuery("status", string(models.AcceptanceNotResponded)))
	views, err := h.contracts.ListForStudent(c.Request.Context(), claimsFromContext(c), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// RequestDetail godoc
// @Summary Get one request
// @Description Get the student-facing detail view of one request
// @Tags Student
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/request/{id} [get]
func (h *StudentHandler) RequestDetail(c *gin.Context) {
	detail, err := h.contracts.GetForStudent(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

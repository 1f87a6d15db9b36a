package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/export"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/response"
)

// AdvisorHandler serves the advisor surface: responding to supervision
// requests, maintaining the contract form, and grading.
type AdvisorHandler struct {
	contracts *service.ContractService
	exporter  *export.PDFExporter
	metrics   *service.MetricsService
}

// NewAdvisorHandler creates a new handler.
func NewAdvisorHandler(contracts *service.ContractService, exporter *export.PDFExporter, metrics *service.MetricsService) *AdvisorHandler {
	return &AdvisorHandler{contracts: contracts, exporter: exporter, metrics: metrics}
}

// Accept godoc
// @Summary Accept a request
// @Description Accept a supervision request awaiting response
// @Tags Advisor
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /advisor/accept/request/{id} [post]
func (h *AdvisorHandler) Accept(c *gin.Context) {
	contract, err := h.contracts.Accept(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	h.metrics.ObserveTransition("accept", err == nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// Reject godoc
// @Summary Reject a request
// @Description Reject a supervision request awaiting response
// @Tags Advisor
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /advisor/reject/request/{id} [post]
func (h *AdvisorHandler) Reject(c *gin.Context) {
	contract, err := h.contracts.Reject(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	h.metrics.ObserveTransition("reject", err == nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// Close godoc
// @Summary Close an agreement
// @Description End an accepted supervision agreement
// @Tags Advisor
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /advisor/close/request/{id} [post]
func (h *AdvisorHandler) Close(c *gin.Context) {
	contract, err := h.contracts.CloseByAdvisor(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	h.metrics.ObserveTransition("close_by_advisor", err == nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// Requests godoc
// @Summary List requests
// @Description List requests addressed to the advisor filtered by acceptance status
// @Tags Advisor
// @Produce json
// @Param status query string true "Acceptance status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /advisor/requests [get]
func (h *AdvisorHandler) Requests(c *gin.Context) {
	status := models.AcceptanceStatus(c.DefaultQuery("status", string(models.AcceptanceNotResponded)))
	views, err := h.contracts.ListForAdvisor(c.Request.Context(), claimsFromContext(c), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// RequestDetail godoc
// @Summary Get one request
// @Description Get the advisor-facing detail view of one request
// @Tags Advisor
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /advisor/request/{id} [get]
func (h *AdvisorHandler) RequestDetail(c *gin.Context) {
	detail, err := h.contracts.GetForAdvisor(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Form godoc
// @Summary Get contract form
// @Description Read the advisor-filled contract form
// @Tags Advisor
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /advisor/contract/form/{id} [get]
func (h *AdvisorHandler) Form(c *gin.Context) {
	view, err := h.contracts.GetAdvisorForm(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// SubmitForm godoc
// @Summary Submit contract form
// @Description Replace the advisor-filled contract form fields
// @Tags Advisor
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param payload body models.AdvisorForm true "Form payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /advisor/contract/form/{id} [post]
func (h *AdvisorHandler) SubmitForm(c *gin.Context) {
	var form models.AdvisorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid form payload"))
		return
	}

	contract, err := h.contracts.SubmitAdvisorForm(c.Request.Context(), claimsFromContext(c), c.Param("id"), form)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// SubmitMarks godoc
// @Summary Submit advisor marks
// @Description Record the supervising advisor's score for the project
// @Tags Advisor
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param payload body object true "Marks payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /advisor/contract/marks/{id} [post]
func (h *AdvisorHandler) SubmitMarks(c *gin.Context) {
	var payload struct {
		Marks *int `json:"marks" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "marks required"))
		return
	}

	contract, err := h.contracts.SubmitAdvisorMarks(c.Request.Context(), claimsFromContext(c), c.Param("id"), *payload.Marks)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contract, nil)
}

// ExportSheet godoc
// @Summary Export contract sheet
// @Description Render the supervision contract as a printable PDF sheet
// @Tags Advisor
// @Produce application/pdf
// @Param id path string true "Contract ID"
// @Success 200 {file} binary
// @Failure 401 {object} response.Envelope
// @Router /advisor/contract/sheet/{id} [get]
func (h *AdvisorHandler) ExportSheet(c *gin.Context) {
	ctx := c.Request.Context()
	claims := claimsFromContext(c)
	detail, err := h.contracts.GetForAdvisor(ctx, claims, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	form, err := h.contracts.GetAdvisorForm(ctx, claims, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	fields := []export.SheetField{
		{Label: "Project", Value: detail.ProjectName},
		{Label: "Status", Value: string(detail.Acceptance)},
		{Label: "Student One", Value: fmt.Sprintf("%s (%s)", detail.StudentOne.Name, detail.StudentOne.RegistrationID)},
		{Label: "Student Two", Value: fmt.Sprintf("%s (%s)", detail.StudentTwo.Name, detail.StudentTwo.RegistrationID)},
	}
	if detail.ProjectDescription != nil {
		fields = append(fields, export.SheetField{Label: "Description", Value: *detail.ProjectDescription})
	}
	if form.Designation != nil {
		fields = append(fields, export.SheetField{Label: "Designation", Value: *form.Designation})
	}
	if form.Department != nil {
		fields = append(fields, export.SheetField{Label: "Department", Value: *form.Department})
	}
	if form.Qualification != nil {
		fields = append(fields, export.SheetField{Label: "Qualification", Value: *form.Qualification})
	}
	if form.Compensation != nil {
		fields = append(fields, export.SheetField{Label: "Compensation", Value: fmt.Sprintf("%d", *form.Compensation)})
	}
	if form.Tools != nil {
		fields = append(fields, export.SheetField{Label: "Tools", Value: *form.Tools})
	}

	pdf, err := h.exporter.RenderSheet("Supervision Contract", fields)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render contract sheet"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=contract-%s.pdf", detail.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

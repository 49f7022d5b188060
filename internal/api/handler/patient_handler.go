package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// PatientHandler handles patient chart endpoints for medical records staff.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// paginatedPatientsResponse is the legacy list envelope.
type paginatedPatientsResponse struct {
	Data      []domain.PatientSummary `json:"data"`
	Total     int64                   `json:"Total"`
	PageCount int                     `json:"PageCount"`
}

// Create handles POST /api/tpatient.
//
// @Summary      Register a patient
// @Tags         tpatient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPatientRequest  true  "Patient chart"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/tpatient [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Tpatient data cannot be null")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Create(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Created a tpatient successfully"})
}

// List handles GET /api/tpatient with page/limit/keyword.
//
// @Summary      List patients
// @Tags         tpatient
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  paginatedPatientsResponse
// @Failure      404  {object}  paginatedPatientsResponse
// @Router       /api/tpatient [get]
func (h *PatientHandler) List(c echo.Context) error {
	page, limit, err := pageLimit(c)
	if err != nil {
		return err
	}

	pageData, err := h.service.List(c.Request().Context(), ports.ListPatientsInput{
		Page:    page,
		Limit:   limit,
		Keyword: c.QueryParam("keyword"),
	})
	if err != nil {
		return err
	}

	if len(pageData.Data) == 0 {
		return c.JSON(http.StatusNotFound, paginatedPatientsResponse{Data: []domain.PatientSummary{}})
	}

	return c.JSON(http.StatusOK, paginatedPatientsResponse{
		Data:      pageData.Data,
		Total:     pageData.Total,
		PageCount: pageData.PageCount,
	})
}

// Get handles GET /api/tpatient/:dn.
//
// @Summary      Get a patient chart
// @Tags         tpatient
// @Produce      json
// @Security     BearerAuth
// @Param        dn   path      string  true  "Dental number"
// @Success      200  {object}  domain.Patient
// @Failure      404  {object}  messageResponse
// @Router       /api/tpatient/{dn} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.service.Get(c.Request().Context(), c.Param("dn"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Patch handles PATCH /api/tpatient/:dn.
//
// @Summary      Patch a patient chart
// @Tags         tpatient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        dn    path      string               true  "Dental number"
// @Param        body  body      patchPatientRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/tpatient/{dn} [patch]
func (h *PatientHandler) Patch(c echo.Context) error {
	var req patchPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Patch(c.Request().Context(), c.Param("dn"), req.toPatch()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Tpatient patched successfully"})
}

// Delete handles DELETE /api/tpatient/:dn. Administrator only.
//
// @Summary      Delete a patient chart
// @Tags         tpatient
// @Security     BearerAuth
// @Param        dn  path  string  true  "Dental number"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/tpatient/{dn} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("dn")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

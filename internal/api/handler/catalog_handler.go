package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

const icd10MaxLimit = 1000

// ClinicHandler serves the clinic reference table.
type ClinicHandler struct {
	service ports.ClinicService
}

func NewClinicHandler(service ports.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: service}
}

// List handles GET /api/tbclinic.
//
// @Summary      List clinics
// @Tags         tbclinic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Clinic
// @Failure      404  {object}  messageResponse
// @Router       /api/tbclinic [get]
func (h *ClinicHandler) List(c echo.Context) error {
	clinics, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(clinics) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No tbclinic data")
	}
	return c.JSON(http.StatusOK, clinics)
}

// ICD10Handler serves paged ICD-10-TM diagnosis code lookups.
type ICD10Handler struct {
	service ports.ICD10Service
}

func NewICD10Handler(service ports.ICD10Service) *ICD10Handler {
	return &ICD10Handler{service: service}
}

// paginatedICD10Response is the legacy list envelope.
type paginatedICD10Response struct {
	Data      []domain.ICD10 `json:"data"`
	Total     int64          `json:"Total"`
	PageCount int            `json:"PageCount"`
}

// List handles GET /api/tbicd10tm with page/limit/keyword.
//
// @Summary      List ICD-10-TM codes
// @Tags         tbicd10tm
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  paginatedICD10Response
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  paginatedICD10Response
// @Router       /api/tbicd10tm [get]
func (h *ICD10Handler) List(c echo.Context) error {
	page, limit, err := pageLimit(c)
	if err != nil {
		return err
	}
	if limit > icd10MaxLimit {
		return echo.NewHTTPError(http.StatusBadRequest, "Limit must be between 1 and 1000")
	}

	pageData, err := h.service.List(c.Request().Context(), ports.ListICD10Input{
		Page:    page,
		Limit:   limit,
		Keyword: c.QueryParam("keyword"),
	})
	if err != nil {
		return err
	}

	if len(pageData.Data) == 0 {
		return c.JSON(http.StatusNotFound, paginatedICD10Response{Data: []domain.ICD10{}})
	}

	return c.JSON(http.StatusOK, paginatedICD10Response{
		Data:      pageData.Data,
		Total:     pageData.Total,
		PageCount: pageData.PageCount,
	})
}

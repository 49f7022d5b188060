package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// ScreeningHandler handles pre-treatment screening records.
type ScreeningHandler struct {
	service ports.ScreeningService
}

func NewScreeningHandler(service ports.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{service: service}
}

type createScreeningRequest struct {
	DN               string                  `json:"dn" validate:"required,max=10"`
	Sys              uint                    `json:"sys,omitempty"`
	Dia              uint                    `json:"dia,omitempty"`
	PR               uint                    `json:"pr,omitempty"`
	Temperature      uint                    `json:"temperature,omitempty"`
	TreatmentUrgency domain.TreatmentUrgency `json:"treatmentUrgency" validate:"required,oneof=emergency urgency nonurgency"`
	BloodPressure    *bool                   `json:"bloodpressure,omitempty"`
	Diabetes         *bool                   `json:"diabete,omitempty"`
	HeartDisease     *bool                   `json:"heartdisease,omitempty"`
	Thyroid          *bool                   `json:"thyroid,omitempty"`
	Stroke           *bool                   `json:"stroke,omitempty"`
	Immunodeficiency *bool                   `json:"immunodeficiency,omitempty"`
	Pregnant         uint                    `json:"pregnant,omitempty"`
	Other            string                  `json:"other,omitempty"`
}

// Create handles POST /api/screeningrecord.
//
// @Summary      Record a screening
// @Tags         screeningrecord
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createScreeningRequest  true  "Screening record"
// @Success      201   {object}  domain.Screening
// @Failure      400   {object}  messageResponse
// @Router       /api/screeningrecord [post]
func (h *ScreeningHandler) Create(c echo.Context) error {
	var req createScreeningRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Screening data cannot be null")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), &domain.Screening{
		DN:               req.DN,
		Sys:              req.Sys,
		Dia:              req.Dia,
		PR:               req.PR,
		Temperature:      req.Temperature,
		TreatmentUrgency: req.TreatmentUrgency,
		BloodPressure:    req.BloodPressure,
		Diabetes:         req.Diabetes,
		HeartDisease:     req.HeartDisease,
		Thyroid:          req.Thyroid,
		Stroke:           req.Stroke,
		Immunodeficiency: req.Immunodeficiency,
		Pregnant:         req.Pregnant,
		Other:            req.Other,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ListByDN handles GET /api/screeningrecord/:dn.
//
// @Summary      List screenings for a patient
// @Tags         screeningrecord
// @Produce      json
// @Security     BearerAuth
// @Param        dn   path      string  true  "Dental number"
// @Success      200  {array}   domain.Screening
// @Failure      404  {object}  messageResponse
// @Router       /api/screeningrecord/{dn} [get]
func (h *ScreeningHandler) ListByDN(c echo.Context) error {
	records, err := h.service.ListByDN(c.Request().Context(), c.Param("dn"))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No screening data")
	}
	return c.JSON(http.StatusOK, records)
}

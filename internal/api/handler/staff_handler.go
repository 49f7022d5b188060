package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// StaffHandler handles the administrator-only staff account endpoints.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// Create handles POST /api/tbdentalrecorduser.
//
// @Summary      Create a staff user
// @Tags         tbdentalrecorduser
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Staff user"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/tbdentalrecorduser [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Tbdentalrecorduser data cannot be null")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Created a tbdentalrecorduser successfully"})
}

// List handles GET /api/tbdentalrecorduser with page/limit/keyword/roleId/clinicId.
//
// @Summary      List staff users
// @Tags         tbdentalrecorduser
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  paginatedUsersResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  paginatedUsersResponse
// @Router       /api/tbdentalrecorduser [get]
func (h *StaffHandler) List(c echo.Context) error {
	page, limit, err := pageLimit(c)
	if err != nil {
		return err
	}
	roleID, _ := strconv.Atoi(c.QueryParam("roleId"))

	pageData, err := h.service.List(c.Request().Context(), ports.ListUsersInput{
		Page:     page,
		Limit:    limit,
		Keyword:  c.QueryParam("keyword"),
		RoleID:   roleID,
		ClinicID: c.QueryParam("clinicId"),
	})
	if err != nil {
		return err
	}

	if len(pageData.Data) == 0 {
		return c.JSON(http.StatusNotFound, paginatedUsersResponse{Data: []userSummary{}})
	}

	users := make([]userSummary, 0, len(pageData.Data))
	for _, u := range pageData.Data {
		users = append(users, toUserSummary(u))
	}

	return c.JSON(http.StatusOK, paginatedUsersResponse{
		Data:      users,
		Total:     pageData.Total,
		PageCount: pageData.PageCount,
	})
}

// Get handles GET /api/tbdentalrecorduser/:userId.
//
// @Summary      Get a staff user
// @Tags         tbdentalrecorduser
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  userSummary
// @Failure      404     {object}  messageResponse
// @Router       /api/tbdentalrecorduser/{userId} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "userId must be an integer")
	}

	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Patch handles PATCH /api/tbdentalrecorduser/:userId.
//
// @Summary      Patch a staff user
// @Tags         tbdentalrecorduser
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int               true  "User id"
// @Param        body    body      patchUserRequest  true  "Fields to update"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  messageResponse
// @Router       /api/tbdentalrecorduser/{userId} [patch]
func (h *StaffHandler) Patch(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "userId must be an integer")
	}

	var req patchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.UserPatch{
		License:   req.License,
		Fname:     req.Fname,
		Lname:     req.Lname,
		StudentID: req.StudentID,
		RoleID:    req.RoleID,
		Status:    req.Status,
		Users:     req.Users,
		Passw:     req.Passw,
		Tname:     req.Tname,
		Sort:      req.Sort,
		Type:      req.Type,
		ClinicID:  req.ClinicID,
	}

	if err := h.service.Patch(c.Request().Context(), userID, patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Tbdentalrecorduser patched successfully"})
}

// Delete handles DELETE /api/tbdentalrecorduser/:userId.
//
// @Summary      Delete a staff user
// @Tags         tbdentalrecorduser
// @Security     BearerAuth
// @Param        userId  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/tbdentalrecorduser/{userId} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "userId must be an integer")
	}

	if err := h.service.Delete(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pageLimit parses the required page and limit query parameters; both must
// be at least 1.
func pageLimit(c echo.Context) (int, int, error) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Page must be at least 1")
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Limit must be at least 1")
	}
	return page, limit, nil
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tuyulonline77-star/anlocid/internal/api/metrics"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
	"github.com/tuyulonline77-star/anlocid/internal/core/service"
)

// MemberHandler handles HTTP requests for membership applications.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /api/members.
//
// @Summary      List membership applications, newest first
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Member
// @Failure      401  {object}  errorResponse
// @Router       /members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Get handles GET /api/members/:id — single application detail for the
// admin review view.
//
// @Summary      Get a membership application
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Member id"
// @Success      200  {object}  domain.Member
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Create handles POST /api/members — the public registration form.
// Whatever status the caller supplies is ignored: every application starts
// out pending.
//
// @Summary      Submit a membership application
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body      createMemberRequest  true  "Registration form"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Create(c.Request().Context(), ports.CreateMemberInput{
		Email:       req.Email,
		FullName:    req.FullName,
		Nickname:    req.Nickname,
		BirthDate:   req.BirthDate,
		BirthPlace:  req.BirthPlace,
		Address:     req.Address,
		Phone:       req.Phone,
		CarType:     req.CarType,
		CarYear:     req.CarYear,
		CarColor:    req.CarColor,
		PlateNumber: req.PlateNumber,
		ShirtSize:   req.ShirtSize,
		Reason:      req.Reason,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRegistration) {
			return echo.NewHTTPError(http.StatusConflict, "registration already submitted")
		}
		return err
	}

	metrics.MembersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{Success: true, ID: member.ID})
}

// UpdateStatus handles PUT /api/members/:id. Only the status field can be
// changed over the wire; everything else on a member is immutable after
// registration.
//
// @Summary      Update a member's approval status
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Member id"
// @Param        body  body      updateMemberStatusRequest  true  "New status"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /members/{id} [put]
func (h *MemberHandler) UpdateStatus(c echo.Context) error {
	var req updateMemberStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}

	metrics.MemberStatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

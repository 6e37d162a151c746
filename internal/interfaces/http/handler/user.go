package handler

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/procure/backend/internal/application/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// UserHandler serves registration, login, logout, account details and
// delivery contacts.
type UserHandler struct {
	BaseHandler
	authService    *appidentity.AuthService
	contactService *appidentity.ContactService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	authService *appidentity.AuthService,
	contactService *appidentity.ContactService,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    NewBaseHandler(logger),
		authService:    authService,
		contactService: contactService,
	}
}

// Register handles POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var input appidentity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if _, err := h.authService.Register(c.Request.Context(), input); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// Login handles POST /user/login
func (h *UserHandler) Login(c *gin.Context) {
	var input appidentity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Token": result.Token})
}

// Logout handles POST /user/logout
func (h *UserHandler) Logout(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil || claims.ExpiresAt == nil {
		h.Error(c, shared.ErrUnauthorized)
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// Details handles GET /user/details
func (h *UserHandler) Details(c *gin.Context) {
	view, err := h.authService.Details(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Info": view})
}

// UpdateDetails handles POST /user/details
func (h *UserHandler) UpdateDetails(c *gin.Context) {
	var input appidentity.UpdateDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if _, err := h.authService.UpdateDetails(c.Request.Context(), middleware.UserID(c), input); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// Contacts handles GET /user/contact
func (h *UserHandler) Contacts(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Contacts": contacts})
}

// CreateContact handles POST /user/contact
func (h *UserHandler) CreateContact(c *gin.Context) {
	var input appidentity.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if _, err := h.contactService.Create(c.Request.Context(), middleware.UserID(c), input); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// UpdateContact handles PUT /user/contact
func (h *UserHandler) UpdateContact(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
		appidentity.ContactInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if _, err := h.contactService.Update(c.Request.Context(), middleware.UserID(c), input.ID, input.ContactInput); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// DeleteContacts handles DELETE /user/contact
func (h *UserHandler) DeleteContacts(c *gin.Context) {
	var input struct {
		Items string `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	deleted, err := h.contactService.Delete(c.Request.Context(), middleware.UserID(c), input.Items)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Deleted": deleted})
}

package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/middleware"
	"github.com/thomasdhughes/realworld/internal/response"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService: NewUserService(NewUserRepository(db)),
	}
}

// Register 注册
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.Blank("user"))
		return
	}

	result, err := h.userService.Register(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.UserEnvelope{User: result})
}

// Login 登录
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.Blank("user"))
		return
	}

	result, err := h.userService.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.UserEnvelope{User: result})
}

// CurrentUser 获取当前用户
func (h *UserHandler) CurrentUser(c *gin.Context) {
	result, err := h.userService.CurrentUser(middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.UserEnvelope{User: result})
}

// UpdateUser 更新当前用户
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.Blank("user"))
		return
	}

	result, err := h.userService.UpdateUser(middleware.CurrentUserID(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.UserEnvelope{User: result})
}

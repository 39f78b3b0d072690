package profile

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/middleware"
)

type ProfileHandler struct {
	profileService *ProfileService
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{
		profileService: NewProfileService(NewProfileRepository(db)),
	}
}

// GetProfile 获取用户公开资料
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	viewerID := middleware.OptionalUserID(c)

	result, err := h.profileService.GetProfile(c.Param("username"), viewerID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ProfileEnvelope{Profile: result})
}

// FollowUser 关注用户
func (h *ProfileHandler) FollowUser(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)

	result, err := h.profileService.Follow(c.Param("username"), viewerID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ProfileEnvelope{Profile: result})
}

// UnfollowUser 取消关注
func (h *ProfileHandler) UnfollowUser(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)

	result, err := h.profileService.Unfollow(c.Param("username"), viewerID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ProfileEnvelope{Profile: result})
}

package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/response"
)

type ProfileService struct {
	profileRepo *ProfileRepository
}

func NewProfileService(profileRepo *ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile 按用户名查询公开资料，following 取决于观察者
func (s *ProfileService) GetProfile(username string, viewerID *uint) (dto.ProfileResponse, *response.BusinessError) {
	return s.buildProfile(username, viewerID)
}

// Follow 关注目标用户，幂等，返回操作后的资料视图
// 自关注不做限制
func (s *ProfileService) Follow(username string, viewerID uint) (dto.ProfileResponse, *response.BusinessError) {
	target, err := s.profileRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, response.NotFound("profile")
		}
		return dto.ProfileResponse{}, response.Internal(err)
	}

	if err := s.profileRepo.AddFollow(viewerID, target.ID); err != nil {
		return dto.ProfileResponse{}, response.Internal(err)
	}

	return s.buildProfile(username, &viewerID)
}

// Unfollow 取消关注，幂等，返回操作后的资料视图
func (s *ProfileService) Unfollow(username string, viewerID uint) (dto.ProfileResponse, *response.BusinessError) {
	target, err := s.profileRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, response.NotFound("profile")
		}
		return dto.ProfileResponse{}, response.Internal(err)
	}

	if err := s.profileRepo.RemoveFollow(viewerID, target.ID); err != nil {
		return dto.ProfileResponse{}, response.Internal(err)
	}

	return s.buildProfile(username, &viewerID)
}

func (s *ProfileService) buildProfile(username string, viewerID *uint) (dto.ProfileResponse, *response.BusinessError) {
	u, err := s.profileRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, response.NotFound("profile")
		}
		return dto.ProfileResponse{}, response.Internal(err)
	}

	followerIDs, err := s.profileRepo.FollowerIDs(u.ID)
	if err != nil {
		return dto.ProfileResponse{}, response.Internal(err)
	}

	return dto.NewProfileResponse(u, followerIDs, viewerID), nil
}

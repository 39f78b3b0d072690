package dto

import "github.com/thomasdhughes/realworld/internal/model/user"

// ProfileResponse 观察者视角下的用户公开信息
type ProfileResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ProfileEnvelope {"profile": {...}}
type ProfileEnvelope struct {
	Profile ProfileResponse `json:"profile"`
}

// NewProfileResponse 纯函数视图组装
// following = 观察者存在且在该用户的关注者集合中
func NewProfileResponse(u *user.User, followerIDs []uint, viewerID *uint) ProfileResponse {
	following := false
	if viewerID != nil {
		following = containsID(followerIDs, *viewerID)
	}
	return ProfileResponse{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

package profile

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thomasdhughes/realworld/internal/model/user"
)

// ProfileRepository 用户资料与关注边仓储层
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *ProfileRepository) FindByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return &u, err
}

// FollowerIDs 关注了该用户的用户ID集合
func (r *ProfileRepository) FollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&user.Follow{}).
		Where("followed_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

// FollowingIDs 该用户关注的用户ID集合
func (r *ProfileRepository) FollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&user.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

// AddFollow 添加关注边，已存在时为幂等空操作
func (r *ProfileRepository) AddFollow(followerID, followedID uint) error {
	edge := &user.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// RemoveFollow 移除关注边，不存在时为幂等空操作
func (r *ProfileRepository) RemoveFollow(followerID, followedID uint) error {
	return r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&user.Follow{}).Error
}

// Package user 用户相关模型
package user

import "time"

// DefaultImage 注册时未提供头像的默认值
const DefaultImage = "https://api.realworld.io/images/smiley-cyrus.jpeg"

// User 用户表
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Image        string    `gorm:"type:varchar(512)" json:"image"`
	Bio          string    `gorm:"type:text" json:"bio"`
	Demo         bool      `gorm:"default:false" json:"demo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Follow 关注边表（自引用多对多）
// 同一对 (follower, followed) 至多存在一条记录
// 两个方向的查询（谁关注了X、X关注了谁）都基于这张表
type Follow struct {
	FollowerID uint      `gorm:"primaryKey" json:"follower_id"`
	FollowedID uint      `gorm:"primaryKey;index" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

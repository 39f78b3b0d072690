// Package article 文章相关模型
package article

import (
	"time"
)

// Article 文章表
type Article struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	// slug 由标题和作者ID确定性派生，全局唯一
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:varchar(512);not null" json:"description"`
	Body        string `gorm:"type:text;not null" json:"body"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Comment 评论表
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

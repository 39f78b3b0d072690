package article

import "time"

// Favorite 收藏表
// 同一对 (user, article) 至多存在一条记录
type Favorite struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	ArticleID uint      `gorm:"primaryKey;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

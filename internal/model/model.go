package model

import (
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/model/article"
	"github.com/thomasdhughes/realworld/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		&user.Follow{},
		// 文章相关模型
		&article.Article{},
		&article.Comment{},
		&article.Tag{},
		&article.ArticleTag{},
		&article.Favorite{},
	)
	if err != nil {
		return err
	}
	return nil
}

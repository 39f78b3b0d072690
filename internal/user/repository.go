package user

import (
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/model/article"
	"github.com/thomasdhughes/realworld/internal/model/user"
)

// UserRepository 用户仓储层
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *UserRepository) FindByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Save(u *user.User) error {
	return r.db.Save(u).Error
}

// DeleteCascade 删除用户及其全部从属数据
// 名下文章（连同文章的评论、收藏边、标签关联）、本人评论、收藏边
// 与两个方向的关注边在同一事务内删除，不留悬挂外键
func (r *UserRepository) DeleteCascade(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var articleIDs []uint
		if err := tx.Model(&article.Article{}).
			Where("author_id = ?", userID).
			Pluck("id", &articleIDs).Error; err != nil {
			return err
		}

		if len(articleIDs) > 0 {
			if err := tx.Where("article_id IN ?", articleIDs).
				Delete(&article.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("article_id IN ?", articleIDs).
				Delete(&article.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("article_id IN ?", articleIDs).
				Delete(&article.ArticleTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("author_id = ?", userID).
				Delete(&article.Article{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("author_id = ?", userID).
			Delete(&article.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&article.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", userID, userID).
			Delete(&user.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user.User{}, userID).Error
	})
}

// EmailTaken 邮箱是否已被其他用户占用，excludeID 为 0 时不排除任何人
func (r *UserRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// UsernameTaken 用户名是否已被其他用户占用
func (r *UserRepository) UsernameTaken(username string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

package comment

import (
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/model/article"
)

// CommentRepository 评论仓储层
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) FindByID(id uint) (*article.Comment, error) {
	var c article.Comment
	err := r.db.First(&c, id).Error
	return &c, err
}

func (r *CommentRepository) ListByArticle(articleID uint) ([]article.Comment, error) {
	var comments []article.Comment
	err := r.db.Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Create(c *article.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&article.Comment{}, id).Error
}

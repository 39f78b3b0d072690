package tag

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thomasdhughes/realworld/internal/model/article"
)

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// FindOrCreate 按名称取标签，不存在时创建
func (r *TagRepository) FindOrCreate(name string) (*article.Tag, error) {
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&article.Tag{Name: name}).Error; err != nil {
		return nil, err
	}

	var t article.Tag
	err := r.db.Where("name = ?", name).First(&t).Error
	return &t, err
}

// NamesByArticle 文章携带的标签名集合
func (r *TagRepository) NamesByArticle(articleID uint) ([]string, error) {
	var names []string
	err := r.db.Model(&article.Tag{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Pluck("tags.name", &names).Error
	return names, err
}

// SetArticleTags 替换文章的标签集合（清空后重建关联）
// 空白标签名被忽略
func (r *TagRepository) SetArticleTags(articleID uint, names []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).
			Delete(&article.ArticleTag{}).Error; err != nil {
			return err
		}

		for _, name := range names {
			if name == "" {
				continue
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&article.Tag{Name: name}).Error; err != nil {
				return err
			}
			var t article.Tag
			if err := tx.Where("name = ?", name).First(&t).Error; err != nil {
				return err
			}
			link := &article.ArticleTag{ArticleID: articleID, TagID: t.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Popular 按使用文章数降序取前 limit 个标签名，同数时按标签ID保持稳定顺序
func (r *TagRepository) Popular(limit int) ([]string, error) {
	var names []string
	err := r.db.Model(&article.Tag{}).
		Joins("LEFT JOIN article_tags ON article_tags.tag_id = tags.id").
		Group("tags.id, tags.name").
		Order("COUNT(article_tags.article_id) DESC, tags.id ASC").
		Limit(limit).
		Pluck("tags.name", &names).Error
	return names, err
}

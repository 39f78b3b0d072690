package article

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thomasdhughes/realworld/internal/model/article"
	"github.com/thomasdhughes/realworld/internal/model/user"
)

// ListFilter 文章列表过滤条件，非空条件按 AND 组合
type ListFilter struct {
	Tag         string
	Author      string
	FavoritedBy string
}

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) FindBySlug(slug string) (*article.Article, error) {
	var a article.Article
	err := r.db.Where("slug = ?", slug).First(&a).Error
	return &a, err
}

// SlugTaken slug 是否已被其他文章占用，excludeID 为 0 时不排除任何文章
func (r *ArticleRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&article.Article{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ArticleRepository) Create(a *article.Article) error {
	return r.db.Create(a).Error
}

func (r *ArticleRepository) Save(a *article.Article) error {
	return r.db.Save(a).Error
}

// DeleteCascade 删除文章及其全部从属数据
// 评论、收藏边、标签关联与文章本体在同一事务内删除，不会出现半删状态
func (r *ArticleRepository) DeleteCascade(articleID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).
			Delete(&article.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).
			Delete(&article.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).
			Delete(&article.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article.Article{}, articleID).Error
	})
}

// FavoriterIDs 收藏了该文章的用户ID集合
func (r *ArticleRepository) FavoriterIDs(articleID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&article.Favorite{}).
		Where("article_id = ?", articleID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// AddFavorite 添加收藏边，已存在时为幂等空操作
func (r *ArticleRepository) AddFavorite(userID, articleID uint) error {
	edge := &article.Favorite{
		UserID:    userID,
		ArticleID: articleID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// RemoveFavorite 移除收藏边，不存在时为幂等空操作
func (r *ArticleRepository) RemoveFavorite(userID, articleID uint) error {
	return r.db.
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&article.Favorite{}).Error
}

// List 过滤+分页查询，按创建时间降序
// 返回的总数基于同一组过滤条件，不受分页影响
func (r *ArticleRepository) List(f ListFilter, limit, offset int) ([]article.Article, int64, error) {
	var total int64
	if err := r.listQuery(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []article.Article
	err := r.listQuery(f).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

// FeedByAuthors 指定作者集合的文章，按创建时间降序
func (r *ArticleRepository) FeedByAuthors(authorIDs []uint, limit, offset int) ([]article.Article, int64, error) {
	var total int64
	if err := r.db.Model(&article.Article{}).
		Where("author_id IN ?", authorIDs).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []article.Article
	err := r.db.
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

func (r *ArticleRepository) listQuery(f ListFilter) *gorm.DB {
	q := r.db.Model(&article.Article{})

	if f.Author != "" {
		q = q.Where("author_id IN (?)",
			r.db.Model(&user.User{}).Select("id").Where("username = ?", f.Author))
	}
	if f.Tag != "" {
		q = q.Where("id IN (?)",
			r.db.Model(&article.ArticleTag{}).Select("article_id").Where("tag_id IN (?)",
				r.db.Model(&article.Tag{}).Select("id").Where("name = ?", f.Tag)))
	}
	if f.FavoritedBy != "" {
		q = q.Where("id IN (?)",
			r.db.Model(&article.Favorite{}).Select("article_id").Where("user_id IN (?)",
				r.db.Model(&user.User{}).Select("id").Where("username = ?", f.FavoritedBy)))
	}

	return q
}

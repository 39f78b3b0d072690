package dto

import (
	"sort"
	"time"

	"github.com/thomasdhughes/realworld/internal/model/article"
)

// ArticleData 创建文章载荷
type ArticleData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Article ArticleData `json:"article" binding:"required"`
}

// UpdateArticleData 更新文章载荷
// 空字符串视为"不修改"；TagList 为 nil 表示不改动标签
type UpdateArticleData struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	TagList     *[]string `json:"tagList"`
}

// UpdateArticleRequest 更新文章请求
type UpdateArticleRequest struct {
	Article UpdateArticleData `json:"article" binding:"required"`
}

// ArticleResponse 文章详情响应
type ArticleResponse struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Body           string          `json:"body"`
	TagList        []string        `json:"tagList"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
	Favorited      bool            `json:"favorited"`
	FavoritesCount int             `json:"favoritesCount"`
	Author         ProfileResponse `json:"author"`
}

// ArticleListItem 列表项，与详情一致但不含 body
type ArticleListItem struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TagList        []string        `json:"tagList"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
	Favorited      bool            `json:"favorited"`
	FavoritesCount int             `json:"favoritesCount"`
	Author         ProfileResponse `json:"author"`
}

// ArticleEnvelope {"article": {...}}
type ArticleEnvelope struct {
	Article ArticleResponse `json:"article"`
}

// ArticleListEnvelope {"articles": [...], "articlesCount": N}
type ArticleListEnvelope struct {
	Articles      []ArticleListItem `json:"articles"`
	ArticlesCount int64             `json:"articlesCount"`
}

// NewArticleResponse 纯函数视图组装
// favorited = 观察者存在且在收藏者集合中；tagList 按字典序升序输出
func NewArticleResponse(a *article.Article, tagNames []string, favoriterIDs []uint, author ProfileResponse, viewerID *uint) ArticleResponse {
	favorited := false
	if viewerID != nil {
		favorited = containsID(favoriterIDs, *viewerID)
	}
	return ArticleResponse{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        sortedTagNames(tagNames),
		CreatedAt:      FormatTime(a.CreatedAt),
		UpdatedAt:      FormatTime(a.UpdatedAt),
		Favorited:      favorited,
		FavoritesCount: len(favoriterIDs),
		Author:         author,
	}
}

// NewArticleListItem 列表视图，去掉 body 字段
func NewArticleListItem(a *article.Article, tagNames []string, favoriterIDs []uint, author ProfileResponse, viewerID *uint) ArticleListItem {
	full := NewArticleResponse(a, tagNames, favoriterIDs, author, viewerID)
	return ArticleListItem{
		Slug:           full.Slug,
		Title:          full.Title,
		Description:    full.Description,
		TagList:        full.TagList,
		CreatedAt:      full.CreatedAt,
		UpdatedAt:      full.UpdatedAt,
		Favorited:      full.Favorited,
		FavoritesCount: full.FavoritesCount,
		Author:         full.Author,
	}
}

// FormatTime ISO-8601、UTC、微秒精度、Z 后缀
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}

func sortedTagNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return sorted
}

package article

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/middleware"
	"github.com/thomasdhughes/realworld/internal/profile"
	"github.com/thomasdhughes/realworld/internal/response"
	"github.com/thomasdhughes/realworld/internal/tag"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	return &ArticleHandler{
		articleService: NewArticleService(
			NewArticleRepository(db),
			tag.NewTagRepository(db),
			profile.NewProfileRepository(db),
		),
	}
}

// ListArticles 文章列表（过滤+分页）
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := ListFilter{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		FavoritedBy: c.Query("favorited"),
	}
	limit, offset := pagination(c)

	result, err := h.articleService.List(filter, limit, offset, middleware.OptionalUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// Feed 关注作者的文章列表
func (h *ArticleHandler) Feed(c *gin.Context) {
	limit, offset := pagination(c)

	result, err := h.articleService.Feed(middleware.CurrentUserID(c), limit, offset)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

// CreateArticle 创建文章
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.Blank("article"))
		return
	}

	result, err := h.articleService.Create(req, middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ArticleEnvelope{Article: result})
}

// GetArticle 文章详情
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	result, err := h.articleService.Get(c.Param("slug"), middleware.OptionalUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ArticleEnvelope{Article: result})
}

// UpdateArticle 更新文章
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.Blank("article"))
		return
	}

	result, err := h.articleService.Update(c.Param("slug"), req, middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ArticleEnvelope{Article: result})
}

// DeleteArticle 删除文章
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.Delete(c.Param("slug"), middleware.CurrentUserID(c)); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	c.Status(200)
}

// FavoriteArticle 收藏文章
func (h *ArticleHandler) FavoriteArticle(c *gin.Context) {
	result, err := h.articleService.Favorite(c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ArticleEnvelope{Article: result})
}

// UnfavoriteArticle 取消收藏
func (h *ArticleHandler) UnfavoriteArticle(c *gin.Context) {
	result, err := h.articleService.Unfavorite(c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.ArticleEnvelope{Article: result})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		limit = 10
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

package comment

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	articlePkg "github.com/thomasdhughes/realworld/internal/article"
	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/middleware"
	"github.com/thomasdhughes/realworld/internal/profile"
	"github.com/thomasdhughes/realworld/internal/response"
	"github.com/thomasdhughes/realworld/internal/tag"
)

type CommentHandler struct {
	commentService *CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	articleRepo := articlePkg.NewArticleRepository(db)
	articleService := articlePkg.NewArticleService(
		articleRepo,
		tag.NewTagRepository(db),
		profile.NewProfileRepository(db),
	)

	return &CommentHandler{
		commentService: NewCommentService(NewCommentRepository(db), articleService, articleRepo),
	}
}

// ListComments 评论列表
func (h *CommentHandler) ListComments(c *gin.Context) {
	result, err := h.commentService.List(c.Param("slug"), middleware.OptionalUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.CommentListEnvelope{Comments: result})
}

// AddComment 发表评论
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.Blank("comment"))
		return
	}

	result, err := h.commentService.Add(c.Param("slug"), req, middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.CommentEnvelope{Comment: result})
}

// DeleteComment 删除评论
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || commentID < 1 {
		dto.ErrorResponse(c, response.NotFound("comment"))
		return
	}

	if berr := h.commentService.Delete(c.Param("slug"), uint(commentID), middleware.CurrentUserID(c)); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}

	c.Status(200)
}

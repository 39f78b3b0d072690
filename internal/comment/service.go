package comment

import (
	"errors"

	"gorm.io/gorm"

	articlePkg "github.com/thomasdhughes/realworld/internal/article"
	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/model/article"
	"github.com/thomasdhughes/realworld/internal/response"
)

type CommentService struct {
	commentRepo    *CommentRepository
	articleService *articlePkg.ArticleService
	articleRepo    *articlePkg.ArticleRepository
}

func NewCommentService(
	commentRepo *CommentRepository,
	articleService *articlePkg.ArticleService,
	articleRepo *articlePkg.ArticleRepository,
) *CommentService {
	return &CommentService{
		commentRepo:    commentRepo,
		articleService: articleService,
		articleRepo:    articleRepo,
	}
}

// List 文章下的评论列表
func (s *CommentService) List(slug string, viewerID *uint) ([]dto.CommentResponse, *response.BusinessError) {
	a, berr := s.findArticle(slug)
	if berr != nil {
		return nil, berr
	}

	comments, err := s.commentRepo.ListByArticle(a.ID)
	if err != nil {
		return nil, response.Internal(err)
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		author, berr := s.articleService.AuthorProfile(c.AuthorID, viewerID)
		if berr != nil {
			return nil, berr
		}
		result = append(result, dto.NewCommentResponse(c, author))
	}
	return result, nil
}

// Add 在文章下发表评论
func (s *CommentService) Add(slug string, req dto.CreateCommentRequest, userID uint) (dto.CommentResponse, *response.BusinessError) {
	if req.Comment.Body == "" {
		return dto.CommentResponse{}, response.Blank("body")
	}

	a, berr := s.findArticle(slug)
	if berr != nil {
		return dto.CommentResponse{}, berr
	}

	c := &article.Comment{
		Body:      req.Comment.Body,
		ArticleID: a.ID,
		AuthorID:  userID,
	}
	if err := s.commentRepo.Create(c); err != nil {
		return dto.CommentResponse{}, response.Internal(err)
	}

	author, berr := s.articleService.AuthorProfile(userID, &userID)
	if berr != nil {
		return dto.CommentResponse{}, berr
	}
	return dto.NewCommentResponse(c, author), nil
}

// Delete 删除评论，仅评论作者可操作
// 检查顺序固定：定位资源（404）先于所有权比较（403）
func (s *CommentService) Delete(slug string, commentID uint, userID uint) *response.BusinessError {
	a, berr := s.findArticle(slug)
	if berr != nil {
		return berr
	}

	c, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("comment")
		}
		return response.Internal(err)
	}
	if c.ArticleID != a.ID {
		return response.NotFound("comment")
	}
	if c.AuthorID != userID {
		return response.Forbidden("You are not authorized to delete this comment")
	}

	if err := s.commentRepo.Delete(c.ID); err != nil {
		return response.Internal(err)
	}
	return nil
}

func (s *CommentService) findArticle(slug string) (*article.Article, *response.BusinessError) {
	a, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("article")
		}
		return nil, response.Internal(err)
	}
	return a, nil
}

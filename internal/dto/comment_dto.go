package dto

import "github.com/thomasdhughes/realworld/internal/model/article"

// CommentData 创建评论载荷
type CommentData struct {
	Body string `json:"body"`
}

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Comment CommentData `json:"comment" binding:"required"`
}

// CommentResponse 评论响应
type CommentResponse struct {
	ID        uint            `json:"id"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
	Body      string          `json:"body"`
	Author    ProfileResponse `json:"author"`
}

// CommentEnvelope {"comment": {...}}
type CommentEnvelope struct {
	Comment CommentResponse `json:"comment"`
}

// CommentListEnvelope {"comments": [...]}
type CommentListEnvelope struct {
	Comments []CommentResponse `json:"comments"`
}

// NewCommentResponse 纯函数视图组装
func NewCommentResponse(c *article.Comment, author ProfileResponse) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		CreatedAt: FormatTime(c.CreatedAt),
		UpdatedAt: FormatTime(c.UpdatedAt),
		Body:      c.Body,
		Author:    author,
	}
}

package article

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/model/article"
	"github.com/thomasdhughes/realworld/internal/profile"
	"github.com/thomasdhughes/realworld/internal/response"
	"github.com/thomasdhughes/realworld/internal/tag"
)

// 列表分页默认值
const defaultPageLimit = 10

type ArticleService struct {
	articleRepo *ArticleRepository
	tagRepo     *tag.TagRepository
	profileRepo *profile.ProfileRepository
}

func NewArticleService(
	articleRepo *ArticleRepository,
	tagRepo *tag.TagRepository,
	profileRepo *profile.ProfileRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		profileRepo: profileRepo,
	}
}

// List 过滤+分页列出文章，列表视图不含 body
func (s *ArticleService) List(f ListFilter, limit, offset int, viewerID *uint) (dto.ArticleListEnvelope, *response.BusinessError) {
	articles, total, err := s.articleRepo.List(f, limit, offset)
	if err != nil {
		return dto.ArticleListEnvelope{}, response.Internal(err)
	}
	return s.listEnvelope(articles, total, viewerID)
}

// Feed 当前用户关注作者的文章
// 关注集合为空时直接短路返回空页，不再查询文章
func (s *ArticleService) Feed(viewerID uint, limit, offset int) (dto.ArticleListEnvelope, *response.BusinessError) {
	followingIDs, err := s.profileRepo.FollowingIDs(viewerID)
	if err != nil {
		return dto.ArticleListEnvelope{}, response.Internal(err)
	}
	if len(followingIDs) == 0 {
		return dto.ArticleListEnvelope{Articles: []dto.ArticleListItem{}}, nil
	}

	articles, total, err := s.articleRepo.FeedByAuthors(followingIDs, limit, offset)
	if err != nil {
		return dto.ArticleListEnvelope{}, response.Internal(err)
	}
	return s.listEnvelope(articles, total, &viewerID)
}

// Create 创建文章
// slug 由标题和作者ID派生，已存在时在 title 字段上报冲突
func (s *ArticleService) Create(req dto.CreateArticleRequest, userID uint) (dto.ArticleResponse, *response.BusinessError) {
	data := req.Article
	if data.Title == "" {
		return dto.ArticleResponse{}, response.Blank("title")
	}
	if data.Description == "" {
		return dto.ArticleResponse{}, response.Blank("description")
	}
	if data.Body == "" {
		return dto.ArticleResponse{}, response.Blank("body")
	}

	slug := MakeSlug(data.Title, userID)
	taken, err := s.articleRepo.SlugTaken(slug, 0)
	if err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}
	if taken {
		return dto.ArticleResponse{}, s.titleConflict()
	}

	a := &article.Article{
		Slug:        slug,
		Title:       data.Title,
		Description: data.Description,
		Body:        data.Body,
		AuthorID:    userID,
	}
	if err := s.articleRepo.Create(a); err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}

	if len(data.TagList) > 0 {
		if err := s.tagRepo.SetArticleTags(a.ID, data.TagList); err != nil {
			return dto.ArticleResponse{}, response.Internal(err)
		}
	}

	return s.articleResponse(a, &userID)
}

// Get 按 slug 查询文章详情
func (s *ArticleService) Get(slug string, viewerID *uint) (dto.ArticleResponse, *response.BusinessError) {
	a, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ArticleResponse{}, response.NotFound("article")
		}
		return dto.ArticleResponse{}, response.Internal(err)
	}
	return s.articleResponse(a, viewerID)
}

// Update 更新文章，仅作者可操作
// 标题出现在载荷中才重算 slug；空字符串字段视为"不修改"
func (s *ArticleService) Update(slug string, req dto.UpdateArticleRequest, userID uint) (dto.ArticleResponse, *response.BusinessError) {
	a, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ArticleResponse{}, response.NotFound("article")
		}
		return dto.ArticleResponse{}, response.Internal(err)
	}
	if a.AuthorID != userID {
		return dto.ArticleResponse{}, response.Forbidden("You are not authorized to update this article")
	}

	data := req.Article
	if data.Title != "" {
		newSlug := MakeSlug(data.Title, userID)
		if newSlug != a.Slug {
			taken, err := s.articleRepo.SlugTaken(newSlug, a.ID)
			if err != nil {
				return dto.ArticleResponse{}, response.Internal(err)
			}
			if taken {
				return dto.ArticleResponse{}, s.titleConflict()
			}
			a.Slug = newSlug
		}
		a.Title = data.Title
	}
	if data.Description != "" {
		a.Description = data.Description
	}
	if data.Body != "" {
		a.Body = data.Body
	}

	if err := s.articleRepo.Save(a); err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}

	if data.TagList != nil {
		if err := s.tagRepo.SetArticleTags(a.ID, *data.TagList); err != nil {
			return dto.ArticleResponse{}, response.Internal(err)
		}
	}

	return s.articleResponse(a, &userID)
}

// Delete 删除文章及其从属数据，仅作者可操作
func (s *ArticleService) Delete(slug string, userID uint) *response.BusinessError {
	a, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("article")
		}
		return response.Internal(err)
	}
	if a.AuthorID != userID {
		return response.Forbidden("You are not authorized to delete this article")
	}

	if err := s.articleRepo.DeleteCascade(a.ID); err != nil {
		return response.Internal(err)
	}
	return nil
}

// Favorite 收藏文章，幂等，返回操作后的详情视图
func (s *ArticleService) Favorite(slug string, userID uint) (dto.ArticleResponse, *response.BusinessError) {
	a, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ArticleResponse{}, response.NotFound("article")
		}
		return dto.ArticleResponse{}, response.Internal(err)
	}

	if err := s.articleRepo.AddFavorite(userID, a.ID); err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}

	return s.articleResponse(a, &userID)
}

// Unfavorite 取消收藏，幂等，返回操作后的详情视图
func (s *ArticleService) Unfavorite(slug string, userID uint) (dto.ArticleResponse, *response.BusinessError) {
	a, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ArticleResponse{}, response.NotFound("article")
		}
		return dto.ArticleResponse{}, response.Internal(err)
	}

	if err := s.articleRepo.RemoveFavorite(userID, a.ID); err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}

	return s.articleResponse(a, &userID)
}

// AuthorProfile 文章作者在观察者视角下的资料视图
func (s *ArticleService) AuthorProfile(authorID uint, viewerID *uint) (dto.ProfileResponse, *response.BusinessError) {
	author, err := s.profileRepo.FindByID(authorID)
	if err != nil {
		return dto.ProfileResponse{}, response.Internal(err)
	}
	followerIDs, err := s.profileRepo.FollowerIDs(authorID)
	if err != nil {
		return dto.ProfileResponse{}, response.Internal(err)
	}
	return dto.NewProfileResponse(author, followerIDs, viewerID), nil
}

func (s *ArticleService) articleResponse(a *article.Article, viewerID *uint) (dto.ArticleResponse, *response.BusinessError) {
	author, berr := s.AuthorProfile(a.AuthorID, viewerID)
	if berr != nil {
		return dto.ArticleResponse{}, berr
	}

	tagNames, err := s.tagRepo.NamesByArticle(a.ID)
	if err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}
	favoriterIDs, err := s.articleRepo.FavoriterIDs(a.ID)
	if err != nil {
		return dto.ArticleResponse{}, response.Internal(err)
	}

	return dto.NewArticleResponse(a, tagNames, favoriterIDs, author, viewerID), nil
}

func (s *ArticleService) listEnvelope(articles []article.Article, total int64, viewerID *uint) (dto.ArticleListEnvelope, *response.BusinessError) {
	items := make([]dto.ArticleListItem, 0, len(articles))
	for i := range articles {
		a := &articles[i]

		author, berr := s.AuthorProfile(a.AuthorID, viewerID)
		if berr != nil {
			return dto.ArticleListEnvelope{}, berr
		}
		tagNames, err := s.tagRepo.NamesByArticle(a.ID)
		if err != nil {
			return dto.ArticleListEnvelope{}, response.Internal(err)
		}
		favoriterIDs, err := s.articleRepo.FavoriterIDs(a.ID)
		if err != nil {
			return dto.ArticleListEnvelope{}, response.Internal(err)
		}

		items = append(items, dto.NewArticleListItem(a, tagNames, favoriterIDs, author, viewerID))
	}

	return dto.ArticleListEnvelope{Articles: items, ArticlesCount: total}, nil
}

func (s *ArticleService) titleConflict() *response.BusinessError {
	return response.NewBusinessError(
		response.WithStatus(http.StatusUnprocessableEntity),
		response.WithFieldError("title", "must be unique"),
	)
}

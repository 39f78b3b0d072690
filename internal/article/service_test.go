package article

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/profile"
	"github.com/thomasdhughes/realworld/internal/tag"
	"github.com/thomasdhughes/realworld/internal/testutils"
)

func newArticleService(db *gorm.DB) *ArticleService {
	return NewArticleService(
		NewArticleRepository(db),
		tag.NewTagRepository(db),
		profile.NewProfileRepository(db),
	)
}

func createRequest(title, description, body string, tags ...string) dto.CreateArticleRequest {
	return dto.CreateArticleRequest{Article: dto.ArticleData{
		Title:       title,
		Description: description,
		Body:        body,
		TagList:     tags,
	}}
}

func TestArticleService_Create(t *testing.T) {
	t.Run("slug 由标题和作者ID派生", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		resp, berr := service.Create(createRequest("Hello, World!", "desc", "body"), author.ID)
		require.Nil(t, berr)
		assert.Equal(t, fmt.Sprintf("hello-world-%d", author.ID), resp.Slug)
		assert.Equal(t, "Hello, World!", resp.Title)
		assert.Equal(t, author.Username, resp.Author.Username)
		assert.Equal(t, 0, resp.FavoritesCount)
	})

	t.Run("不同作者可用相同标题", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		a1 := testutils.CreateTestUser(db)
		a2 := testutils.CreateTestUser(db)

		r1, berr := service.Create(createRequest("Same Title", "d", "b"), a1.ID)
		require.Nil(t, berr)
		r2, berr := service.Create(createRequest("Same Title", "d", "b"), a2.ID)
		require.Nil(t, berr)
		assert.NotEqual(t, r1.Slug, r2.Slug)
	})

	t.Run("同作者重复标题在 title 字段上报冲突", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		_, berr := service.Create(createRequest("Dup Title", "d", "b"), author.ID)
		require.Nil(t, berr)

		_, berr = service.Create(createRequest("Dup Title", "d", "b"), author.ID)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusUnprocessableEntity, berr.Status)
		assert.Contains(t, berr.Errors["title"], "must be unique")
	})

	t.Run("必填字段为空返回422", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		tests := []struct {
			name  string
			req   dto.CreateArticleRequest
			field string
		}{
			{"标题为空", createRequest("", "d", "b"), "title"},
			{"描述为空", createRequest("T", "", "b"), "description"},
			{"正文为空", createRequest("T", "d", ""), "body"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, berr := service.Create(tt.req, author.ID)
				require.NotNil(t, berr)
				assert.Equal(t, http.StatusUnprocessableEntity, berr.Status)
				assert.Contains(t, berr.Errors[tt.field], "can't be blank")
			})
		}
	})

	t.Run("携带标签创建", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		resp, berr := service.Create(createRequest("Tagged", "d", "b", "zeta", "alpha"), author.ID)
		require.Nil(t, berr)
		assert.Equal(t, []string{"alpha", "zeta"}, resp.TagList)
	})
}

func TestArticleService_Update(t *testing.T) {
	t.Run("标题变更时重算 slug", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		created, berr := service.Create(createRequest("Old Title", "d", "b"), author.ID)
		require.Nil(t, berr)

		updated, berr := service.Update(created.Slug, dto.UpdateArticleRequest{Article: dto.UpdateArticleData{
			Title: "New Title",
		}}, author.ID)
		require.Nil(t, berr)
		assert.Equal(t, fmt.Sprintf("new-title-%d", author.ID), updated.Slug)
		assert.Equal(t, "New Title", updated.Title)

		// 旧 slug 不再可达
		_, berr = service.Get(created.Slug, nil)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusNotFound, berr.Status)
	})

	t.Run("未携带标题时 slug 不变", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		created, berr := service.Create(createRequest("Keep Slug", "d", "b"), author.ID)
		require.Nil(t, berr)

		updated, berr := service.Update(created.Slug, dto.UpdateArticleRequest{Article: dto.UpdateArticleData{
			Body: "new body",
		}}, author.ID)
		require.Nil(t, berr)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.Equal(t, "new body", updated.Body)
		assert.Equal(t, "d", updated.Description)
	})

	t.Run("新标题撞上他文的 slug 时上报冲突", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		_, berr := service.Create(createRequest("Taken Title", "d", "b"), author.ID)
		require.Nil(t, berr)
		created, berr := service.Create(createRequest("Another Title", "d", "b"), author.ID)
		require.Nil(t, berr)

		_, berr = service.Update(created.Slug, dto.UpdateArticleRequest{Article: dto.UpdateArticleData{
			Title: "Taken Title",
		}}, author.ID)
		require.NotNil(t, berr)
		assert.Contains(t, berr.Errors["title"], "must be unique")
	})

	t.Run("标题不变的更新不视为冲突", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		created, berr := service.Create(createRequest("Stable Title", "d", "b"), author.ID)
		require.Nil(t, berr)

		updated, berr := service.Update(created.Slug, dto.UpdateArticleRequest{Article: dto.UpdateArticleData{
			Title: "Stable Title",
			Body:  "edited",
		}}, author.ID)
		require.Nil(t, berr)
		assert.Equal(t, created.Slug, updated.Slug)
	})

	t.Run("非作者更新返回403", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)
		other := testutils.CreateTestUser(db)

		created, berr := service.Create(createRequest("Mine", "d", "b"), author.ID)
		require.Nil(t, berr)

		_, berr = service.Update(created.Slug, dto.UpdateArticleRequest{Article: dto.UpdateArticleData{
			Body: "hijack",
		}}, other.ID)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusForbidden, berr.Status)
	})

	t.Run("携带 tagList 时整体替换标签集合", func(t *testing.T) {
		db := testutils.SetupTestDB(t)
		service := newArticleService(db)
		author := testutils.CreateTestUser(db)

		created, berr := service.Create(createRequest("Retag", "d", "b", "old"), author.ID)
		require.Nil(t, berr)

		newTags := []string{"fresh", "clean"}
		updated, berr := service.Update(created.Slug, dto.UpdateArticleRequest{Article: dto.UpdateArticleData{
			TagList: &newTags,
		}}, author.ID)
		require.Nil(t, berr)
		assert.Equal(t, []string{"clean", "fresh"}, updated.TagList)
	})
}

func TestArticleService_Delete(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newArticleService(db)
	author := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	created, berr := service.Create(createRequest("Doomed", "d", "b", "tagged"), author.ID)
	require.Nil(t, berr)

	t.Run("非作者删除返回403", func(t *testing.T) {
		berr := service.Delete(created.Slug, other.ID)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusForbidden, berr.Status)
	})

	t.Run("作者删除后文章不可达", func(t *testing.T) {
		_, berr := service.Favorite(created.Slug, other.ID)
		require.Nil(t, berr)

		require.Nil(t, service.Delete(created.Slug, author.ID))

		_, berr = service.Get(created.Slug, nil)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusNotFound, berr.Status)
	})

	t.Run("删除不存在的文章返回404", func(t *testing.T) {
		berr := service.Delete("no-such-slug", author.ID)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusNotFound, berr.Status)
	})
}

func TestArticleService_Favorite(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newArticleService(db)
	author := testutils.CreateTestUser(db)
	reader := testutils.CreateTestUser(db)

	created, berr := service.Create(createRequest("Likeable", "d", "b"), author.ID)
	require.Nil(t, berr)

	t.Run("收藏后 favorited 为 true 且计数加一", func(t *testing.T) {
		resp, berr := service.Favorite(created.Slug, reader.ID)
		require.Nil(t, berr)
		assert.True(t, resp.Favorited)
		assert.Equal(t, 1, resp.FavoritesCount)
	})

	t.Run("重复收藏幂等", func(t *testing.T) {
		resp, berr := service.Favorite(created.Slug, reader.ID)
		require.Nil(t, berr)
		assert.True(t, resp.Favorited)
		assert.Equal(t, 1, resp.FavoritesCount)
	})

	t.Run("收藏状态是观察者相对的", func(t *testing.T) {
		resp, berr := service.Get(created.Slug, &author.ID)
		require.Nil(t, berr)
		assert.False(t, resp.Favorited)
		assert.Equal(t, 1, resp.FavoritesCount)
	})

	t.Run("取消收藏后计数归零", func(t *testing.T) {
		resp, berr := service.Unfavorite(created.Slug, reader.ID)
		require.Nil(t, berr)
		assert.False(t, resp.Favorited)
		assert.Equal(t, 0, resp.FavoritesCount)
	})

	t.Run("对未收藏的文章取消收藏幂等", func(t *testing.T) {
		resp, berr := service.Unfavorite(created.Slug, reader.ID)
		require.Nil(t, berr)
		assert.False(t, resp.Favorited)
	})

	t.Run("收藏不存在的文章返回404", func(t *testing.T) {
		_, berr := service.Favorite("no-such-slug", reader.ID)
		require.NotNil(t, berr)
		assert.Equal(t, http.StatusNotFound, berr.Status)
	})
}

func TestArticleService_List(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newArticleService(db)

	alice := testutils.CreateTestUser(db, testutils.WithUsername("alice"))
	bob := testutils.CreateTestUser(db, testutils.WithUsername("bob"))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mkArticle := func(author uint, title string, at time.Time, tags ...string) dto.ArticleResponse {
		t.Helper()
		resp, berr := service.Create(createRequest(title, "d", "b", tags...), author)
		require.Nil(t, berr)
		require.NoError(t, db.Table("articles").
			Where("slug = ?", resp.Slug).
			Updates(map[string]any{"created_at": at, "updated_at": at}).Error)
		return resp
	}

	a1 := mkArticle(alice.ID, "Alpha Post", base.Add(1*time.Hour), "go")
	a2 := mkArticle(alice.ID, "Beta Post", base.Add(2*time.Hour), "go", "web")
	b1 := mkArticle(bob.ID, "Gamma Post", base.Add(3*time.Hour), "web")

	_, berr := service.Favorite(b1.Slug, alice.ID)
	require.Nil(t, berr)

	t.Run("默认按创建时间倒序", func(t *testing.T) {
		env, berr := service.List(ListFilter{}, defaultPageLimit, 0, nil)
		require.Nil(t, berr)
		require.Len(t, env.Articles, 3)
		assert.Equal(t, int64(3), env.ArticlesCount)
		assert.Equal(t, b1.Slug, env.Articles[0].Slug)
		assert.Equal(t, a2.Slug, env.Articles[1].Slug)
		assert.Equal(t, a1.Slug, env.Articles[2].Slug)
	})

	t.Run("按作者过滤", func(t *testing.T) {
		env, berr := service.List(ListFilter{Author: "alice"}, defaultPageLimit, 0, nil)
		require.Nil(t, berr)
		assert.Equal(t, int64(2), env.ArticlesCount)
		assert.Len(t, env.Articles, 2)
	})

	t.Run("按标签过滤", func(t *testing.T) {
		env, berr := service.List(ListFilter{Tag: "web"}, defaultPageLimit, 0, nil)
		require.Nil(t, berr)
		assert.Equal(t, int64(2), env.ArticlesCount)
	})

	t.Run("按收藏者过滤", func(t *testing.T) {
		env, berr := service.List(ListFilter{FavoritedBy: "alice"}, defaultPageLimit, 0, nil)
		require.Nil(t, berr)
		require.Len(t, env.Articles, 1)
		assert.Equal(t, b1.Slug, env.Articles[0].Slug)
	})

	t.Run("多过滤条件为 AND 语义", func(t *testing.T) {
		env, berr := service.List(ListFilter{Author: "alice", Tag: "web"}, defaultPageLimit, 0, nil)
		require.Nil(t, berr)
		require.Len(t, env.Articles, 1)
		assert.Equal(t, a2.Slug, env.Articles[0].Slug)
	})

	t.Run("无匹配时返回空页与零计数", func(t *testing.T) {
		env, berr := service.List(ListFilter{Author: "nobody"}, defaultPageLimit, 0, nil)
		require.Nil(t, berr)
		assert.NotNil(t, env.Articles)
		assert.Empty(t, env.Articles)
		assert.Equal(t, int64(0), env.ArticlesCount)
	})

	t.Run("分页不影响总计数", func(t *testing.T) {
		env, berr := service.List(ListFilter{}, 1, 1, nil)
		require.Nil(t, berr)
		require.Len(t, env.Articles, 1)
		assert.Equal(t, a2.Slug, env.Articles[0].Slug)
		assert.Equal(t, int64(3), env.ArticlesCount)
	})
}

func TestArticleService_Feed(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newArticleService(db)
	profileService := profile.NewProfileService(profile.NewProfileRepository(db))

	reader := testutils.CreateTestUser(db)
	followed := testutils.CreateTestUser(db)
	stranger := testutils.CreateTestUser(db)

	_, berr := service.Create(createRequest("From Followed", "d", "b"), followed.ID)
	require.Nil(t, berr)
	_, berr = service.Create(createRequest("From Stranger", "d", "b"), stranger.ID)
	require.Nil(t, berr)

	t.Run("关注集合为空时返回空页", func(t *testing.T) {
		env, berr := service.Feed(reader.ID, defaultPageLimit, 0)
		require.Nil(t, berr)
		assert.NotNil(t, env.Articles)
		assert.Empty(t, env.Articles)
		assert.Equal(t, int64(0), env.ArticlesCount)
	})

	t.Run("仅包含关注作者的文章", func(t *testing.T) {
		_, berr := profileService.Follow(followed.Username, reader.ID)
		require.Nil(t, berr)

		env, berr := service.Feed(reader.ID, defaultPageLimit, 0)
		require.Nil(t, berr)
		require.Len(t, env.Articles, 1)
		assert.Equal(t, "From Followed", env.Articles[0].Title)
		assert.True(t, env.Articles[0].Author.Following)
		assert.Equal(t, int64(1), env.ArticlesCount)
	})
}

package route

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/config"
	"github.com/thomasdhughes/realworld/internal/article"
	"github.com/thomasdhughes/realworld/internal/comment"
	"github.com/thomasdhughes/realworld/internal/middleware"
	"github.com/thomasdhughes/realworld/internal/profile"
	"github.com/thomasdhughes/realworld/internal/tag"
	"github.com/thomasdhughes/realworld/internal/user"
)

func initRoute(r *gin.Engine, db *gorm.DB) {
	// 初始化handler
	userHandler := user.NewUserHandler(db)
	profileHandler := profile.NewProfileHandler(db)
	articleHandler := article.NewArticleHandler(db)
	commentHandler := comment.NewCommentHandler(db)
	tagHandler := tag.NewTagHandler(db)

	required := middleware.JWTAuth()
	optional := middleware.OptionalJWTAuth()

	api := r.Group("/api")
	{
		api.POST("/users", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.GET("/user", required, userHandler.CurrentUser)
		api.PUT("/user", required, userHandler.UpdateUser)

		api.GET("/articles", optional, articleHandler.ListArticles)
		api.GET("/articles/feed", required, articleHandler.Feed)
		api.POST("/articles", required, articleHandler.CreateArticle)
		api.GET("/articles/:slug", optional, articleHandler.GetArticle)
		api.PUT("/articles/:slug", required, articleHandler.UpdateArticle)
		api.DELETE("/articles/:slug", required, articleHandler.DeleteArticle)
		api.POST("/articles/:slug/favorite", required, articleHandler.FavoriteArticle)
		api.DELETE("/articles/:slug/favorite", required, articleHandler.UnfavoriteArticle)

		api.GET("/articles/:slug/comments", optional, commentHandler.ListComments)
		api.POST("/articles/:slug/comments", required, commentHandler.AddComment)
		api.DELETE("/articles/:slug/comments/:id", required, commentHandler.DeleteComment)

		api.GET("/profiles/:username", optional, profileHandler.GetProfile)
		api.POST("/profiles/:username/follow", required, profileHandler.FollowUser)
		api.DELETE("/profiles/:username/follow", required, profileHandler.UnfollowUser)

		api.GET("/tags", tagHandler.PopularTags)
	}
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := config.Conf.Server.Origin
	if origin == "" {
		origin = "*"
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db)

	return r
}

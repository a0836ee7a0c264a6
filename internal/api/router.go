package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/api/handler"
	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/pkg/metrics"
)

type Router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	recipeHandler     *handler.RecipeHandler
	bookHandler       *handler.BookHandler
	boardHandler      *handler.BoardHandler
	commentHandler    *handler.CommentHandler
	imageHandler      *handler.ImageHandler
	ingredientHandler *handler.IngredientHandler
	cfg               *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	recipeHandler *handler.RecipeHandler,
	bookHandler *handler.BookHandler,
	boardHandler *handler.BoardHandler,
	commentHandler *handler.CommentHandler,
	imageHandler *handler.ImageHandler,
	ingredientHandler *handler.IngredientHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:       authHandler,
		userHandler:       userHandler,
		recipeHandler:     recipeHandler,
		bookHandler:       bookHandler,
		boardHandler:      boardHandler,
		commentHandler:    commentHandler,
		imageHandler:      imageHandler,
		ingredientHandler: ingredientHandler,
		cfg:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(slog.Default()))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.CORS(r.cfg.CORS))

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	secret := r.cfg.JWT.Secret
	api := engine.Group("/api")
	{
		// 공개 - 인증
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		api.GET("/ingredients/suggest", r.ingredientHandler.Suggest)

		// 선택 인증 - 로그인 시 my_hit 포함
		optional := api.Group("")
		optional.Use(middleware.OptionalAuth(secret))
		{
			optional.GET("/recipes/search", r.recipeHandler.Search)
			optional.GET("/boards/:id", r.boardHandler.Get)
			optional.GET("/boards/:id/comments", r.commentHandler.List)
		}

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(secret))
		{
			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.userHandler.GetProfile)
				user.POST("/avatar", r.userHandler.UploadAvatar)
			}

			books := authenticated.Group("/books")
			{
				books.GET("/boards", r.bookHandler.Boards)
				books.GET("/comments", r.bookHandler.Comments)
			}

			boards := authenticated.Group("/boards")
			{
				boards.POST("", r.boardHandler.Create)
				boards.PUT("/:id", r.boardHandler.Update)
				boards.DELETE("/:id", r.boardHandler.Delete)
				boards.POST("/:id/hit", r.boardHandler.ToggleHit)
				boards.POST("/:id/comments", r.commentHandler.Create)
			}

			comments := authenticated.Group("/comments")
			{
				comments.DELETE("/:id", r.commentHandler.Delete)
				comments.POST("/:id/hit", r.commentHandler.ToggleHit)
			}

			images := authenticated.Group("/images")
			{
				images.POST("", r.imageHandler.Upload)
				images.DELETE("/:id", r.imageHandler.Delete)
			}
		}
	}

	return engine
}

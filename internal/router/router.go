package router

import (
	"Tech_Circulo/internal/config"
	"Tech_Circulo/internal/handler"
	"Tech_Circulo/internal/middleware"
	"Tech_Circulo/internal/pkg"
	"Tech_Circulo/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	emailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	emailSvc := service.NewEmailService(emailCfg)

	user := handler.NewUserHandler(service.NewUserService(emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	community := handler.NewCommunityHandler(service.NewCommunityService(), service.NewMembershipService())
	post := handler.NewPostHandler(service.NewPostService())
	engagement := handler.NewEngagementHandler(service.NewEngagementService())
	comment := handler.NewCommentHandler(service.NewCommentService())

	// 验证码
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 注册登录
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token刷新
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态账号接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.GET("/profile", user.GetProfile)
		authGroup.PUT("/profile", user.UpdateProfile)
	}

	// 社区与成员
	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.GET("/list", community.List)
		communityGroup.GET("/search", community.Search)
		communityGroup.GET("/joined", community.Joined)
		communityGroup.GET("/:id", community.Get)
		communityGroup.POST("/:id/join", community.Join)
		communityGroup.POST("/:id/leave", community.Leave)
		communityGroup.GET("/:id/members", community.Members)
		communityGroup.GET("/:id/announcements", community.ListAnnouncements)
		communityGroup.POST("/:id/announcements", community.CreateAnnouncement)
	}

	// 帖子
	postGroup := r.Group("/api/post")
	postGroup.Use(middleware.AuthMiddleware())
	{
		postGroup.POST("/create", post.CreatePost)
		postGroup.GET("/mine", post.MyPosts)
		postGroup.GET("/search", post.SearchPosts)
		postGroup.GET("/list/:id", post.ListByCommunity)
		postGroup.GET("/:id", post.GetPost)
		postGroup.PUT("/:id", post.UpdatePost)
		postGroup.DELETE("/:id", post.DeletePost)

		// 互动：点赞/收藏/举报/统计
		postGroup.POST("/:id/like", engagement.ToggleLike)
		postGroup.POST("/:id/bookmark", engagement.ToggleBookmark)
		postGroup.POST("/:id/report", engagement.Report)
		postGroup.GET("/:id/stats", engagement.Stats)
		postGroup.GET("/:id/status", engagement.Status)

		// 评论
		postGroup.POST("/:id/comments", comment.Create)
		postGroup.GET("/:id/comments", comment.ListByPost)
	}

	// 当前用户的收藏
	bookmarkGroup := r.Group("/api/bookmarks")
	bookmarkGroup.Use(middleware.AuthMiddleware())
	{
		bookmarkGroup.GET("", engagement.Bookmarks)
	}

	return r
}

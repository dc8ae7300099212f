package api

import (
	"Lumen/internal/api/middleware"
	"Lumen/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		imageGroup := apiGroup.Group("/images")
		imageGroup.Use(middleware.AuthMiddleware())
		{
			imageGroup.POST("", group.ImageHandler.Upload)
			imageGroup.GET("", group.ImageHandler.List)
			imageGroup.GET("/:image_id", group.ImageHandler.GetById)
		}

		// 分享页无需登录
		apiGroup.GET("/share/:share_token", group.ImageHandler.GetShared)

		instagramGroup := apiGroup.Group("/instagram")
		instagramGroup.Use(middleware.AuthMiddleware())
		{
			instagramGroup.POST("/connect", group.InstagramHandler.Connect)
			instagramGroup.POST("/connect-by-username", group.InstagramHandler.ConnectByUsername)
			instagramGroup.POST("/refresh-posts", group.InstagramHandler.RefreshPosts)
			instagramGroup.GET("/style-profile", group.InstagramHandler.GetStyleProfile)
			instagramGroup.POST("/manual-style", group.InstagramHandler.SaveManualStyle)
			instagramGroup.GET("/status", group.InstagramHandler.GetStatus)
			instagramGroup.DELETE("/disconnect", group.InstagramHandler.Disconnect)
		}
	}

	return r
}

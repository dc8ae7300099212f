package wire

import (
	"Lumen/internal/api"
	"Lumen/internal/api/config"
	"Lumen/internal/api/handler"
	"Lumen/internal/job"
	"Lumen/internal/pkg/cron"
	"Lumen/internal/pkg/instagram"
	"Lumen/internal/repository"
	"Lumen/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	imageRepo := repository.NewImageRepo(db)
	postRepo := repository.NewInstagramPostRepo(db)
	accountRepo := repository.NewSocialAccountRepo(db)
	profileRepo := repository.NewStyleProfileRepo(db)

	graphClient := instagram.NewGraphClient()
	scraper := instagram.NewScraper()
	browser := instagram.NewBrowserFetcher()

	userService := service.NewUserService(userRepo)
	instagramService := service.NewInstagramService(accountRepo, postRepo, graphClient, scraper, browser)
	styleService := service.NewStyleService(profileRepo, postRepo, instagramService)
	imageService := service.NewImageService(imageRepo, styleService)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		ImageHandler:     handler.NewImageHandler(imageService),
		InstagramHandler: handler.NewInstagramHandler(instagramService, styleService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewScrapeCleanupJob())

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}

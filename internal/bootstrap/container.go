package bootstrap

import (
	"context"
	"log"

	"babybook-be/internal/config"
	"babybook-be/internal/controller"
	"babybook-be/internal/pkg/logger"
	"babybook-be/internal/pkg/mailer"
	"babybook-be/internal/repository/unitofwork"
	"babybook-be/internal/schema"
	"babybook-be/internal/service"
	"babybook-be/pkg/storage"
	"babybook-be/pkg/viewcache"

	pktNats "babybook-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	OAuthController      controller.IOAuthController
	OnboardingController controller.IOnboardingController
	PageController       controller.IPageController
	BookController       controller.IBookController
	MemberController     controller.IMemberController
	SettingsController   controller.ISettingsController
	MediaController      controller.IMediaController
	MetaController       controller.IMetaController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	registry := schema.NewRegistry()

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	var cache viewcache.Cache
	if cfg.App.ViewCacheBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		cache = viewcache.NewRedisCache(rdb)
		log.Println("[INFO] Using View Cache: REDIS")
	} else {
		cache = viewcache.NewMemoryCache(viewcache.DefaultTTL)
		log.Println("[INFO] Using View Cache: MEMORY")
	}

	store, err := storage.NewS3Store(context.Background(), cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
	if err != nil {
		log.Printf("[WARN] Failed to initialize object store: %v", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.InvalidateTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.InvalidateTopic, cache)

	authService := service.NewAuthService(uowFactory, natsPub)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth)
	onboardingService := service.NewOnboardingService(uowFactory, natsPub)
	pageService := service.NewPageService(uowFactory, registry, publisherService, natsPub)
	bookService := service.NewBookService(uowFactory, cache)
	memberService := service.NewMemberService(uowFactory, emailService, natsPub, cfg.App.BaseURL)
	settingsService := service.NewSettingsService(uowFactory, publisherService)
	mediaService := service.NewMediaService(uowFactory, store)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		OAuthController:      controller.NewOAuthController(oauthService, cfg.App.ClientURL),
		OnboardingController: controller.NewOnboardingController(onboardingService),
		PageController:       controller.NewPageController(pageService),
		BookController:       controller.NewBookController(bookService),
		MemberController:     controller.NewMemberController(memberService),
		SettingsController:   controller.NewSettingsController(settingsService),
		MediaController:      controller.NewMediaController(mediaService),
		MetaController:       controller.NewMetaController(),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}

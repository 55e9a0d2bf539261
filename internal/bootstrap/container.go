package bootstrap

import (
	"context"
	"log"

	"estate-listing-be/internal/config"
	"estate-listing-be/internal/controller"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/pkg/mailer"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/internal/service"
	"estate-listing-be/pkg/domainevents"
	"estate-listing-be/pkg/lifecycle"
	"estate-listing-be/pkg/listing"

	pkgNats "estate-listing-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ListingController    controller.IListingController
	SubmissionController controller.ISubmissionController
	PaymentController    controller.IPaymentController
	AdminController      controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	Sweeper         *listing.Sweeper
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

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

	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Lifecycle Core
	eventPublisher := domainevents.NewNatsPublisher(natsPub, sysLogger)
	publisher := lifecycle.NewPublisher(sysLogger)
	machine := lifecycle.NewMachine(publisher, eventPublisher, sysLogger)
	sweeper := listing.NewSweeper(uowFactory, publisher, eventPublisher, sysLogger)

	// 4. Services
	policyService := service.NewPolicyService(uowFactory)
	publisherService := service.NewPublisherService(cfg.Worker.PaymentTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Worker.PaymentTopic,
		uowFactory,
		policyService,
		machine,
		sysLogger,
	)

	submissionService := service.NewSubmissionService(uowFactory, policyService, publisher, eventPublisher, sysLogger)
	listingService := service.NewListingService(uowFactory, sweeper, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, publisherService, rdb, sysLogger)
	adminService := service.NewAdminService(uowFactory, machine, sweeper, policyService, sysLogger)

	// Notification worker: domain events -> submitter emails. Gets its
	// own file-only logger so mail chatter stays off the console.
	notifLogger := logger.NewIsolatedLogger(cfg.App.NotificationLogFilePath)
	notifService := service.NewNotificationService(uowFactory, natsSub, emailService, notifLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	// 5. Controllers
	return &Container{
		ListingController:    controller.NewListingController(listingService),
		SubmissionController: controller.NewSubmissionController(submissionService),
		PaymentController:    controller.NewPaymentController(paymentService),
		AdminController:      controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		Sweeper:         sweeper,
	}
}

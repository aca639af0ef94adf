package routes

import (
	"context"
	"fmt"

	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/persistence/memory"
	"fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/infrastructure/cache"
	"fieldops/internal/infrastructure/config"
	"fieldops/internal/infrastructure/database"
	"fieldops/internal/infrastructure/storage"
	"fieldops/internal/notification"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

type repositories struct {
	projects      interfaces.IProjectRepository
	requests      interfaces.IServiceRequestRepository
	renditions    interfaces.IRenditionRepository
	notifications interfaces.INotificationRepository
	users         interfaces.IUserRepository
	categories    interfaces.IExpenseCategoryRepository
	counters      interfaces.ICounterRepository
}

// Handlers groups every HTTP handler plus the auth use case the middleware needs.
type Handlers struct {
	Auth              usecase.IAuthUseCase
	AuthHandler       *handlers.AuthHandler
	Users             *handlers.UserHandler
	Projects          *handlers.ProjectHandler
	ServiceRequests   *handlers.ServiceRequestHandler
	Renditions        *handlers.RenditionHandler
	Notifications     *handlers.NotificationHandler
	ExpenseCategories *handlers.ExpenseCategoryHandler
	Reports           *handlers.ReportHandler
}

type application struct {
	handlers   Handlers
	dispatcher *notification.Dispatcher
	closers    []func()
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var (
		queue     interfaces.IEventQueue
		blacklist interfaces.ITokenBlacklist
	)
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.closers = append(app.closers, func() { _ = client.Close() })
		queue = notification.NewRedisQueue(client, cfg.Redis.QueueKey)
		blacklist = cache.NewRedisTokenBlacklist(client)
		log.WithField("addr", cfg.Redis.Addr).Info("[bootstrap] redis queue and token blacklist enabled")
	} else {
		queue = notification.NewChannelQueue(cfg.Notifications.QueueSize)
		blacklist = cache.NewMemoryTokenBlacklist()
		log.Warn("[bootstrap] REDIS_ADDR not set, using in-process queue and token blacklist")
	}

	files, err := storage.Open(ctx, cfg.FileStore)
	if err != nil {
		return nil, fmt.Errorf("open file store: %w", err)
	}

	ids := usecase.NewIdentifierGenerator(cfg.IdentifierMode, repos.counters, repos.requests, repos.renditions)
	projectUseCase := usecase.NewProjectUseCase(repos.projects, repos.requests, repos.users, files, queue)
	requestUseCase := usecase.NewServiceRequestUseCase(repos.requests, repos.projects, repos.users, ids, files, queue, projectUseCase)
	renditionUseCase := usecase.NewRenditionUseCase(repos.renditions, repos.requests, repos.projects, repos.categories, ids, files, queue, projectUseCase)
	userUseCase := usecase.NewUserUseCase(repos.users)
	authUseCase := usecase.NewAuthUseCase(repos.users, blacklist, cfg.JWT.Secret, cfg.JWT.TTL)
	categoryUseCase := usecase.NewExpenseCategoryUseCase(repos.categories)

	if err := seed(ctx, cfg, userUseCase, categoryUseCase); err != nil {
		return nil, err
	}

	app.dispatcher = notification.NewDispatcher(queue, repos.notifications, repos.users, notification.DispatcherConfig{
		MaxAttempts: cfg.Notifications.MaxAttempts,
		BaseBackoff: cfg.Notifications.BaseBackoff,
	})

	app.handlers = Handlers{
		Auth:              authUseCase,
		AuthHandler:       handlers.NewAuthHandler(authUseCase, userUseCase),
		Users:             handlers.NewUserHandler(userUseCase),
		Projects:          handlers.NewProjectHandler(projectUseCase),
		ServiceRequests:   handlers.NewServiceRequestHandler(requestUseCase),
		Renditions:        handlers.NewRenditionHandler(renditionUseCase),
		Notifications:     handlers.NewNotificationHandler(usecase.NewNotificationUseCase(repos.notifications)),
		ExpenseCategories: handlers.NewExpenseCategoryHandler(categoryUseCase),
		Reports:           handlers.NewReportHandler(usecase.NewReportUseCase(repos.projects, repos.requests, repos.renditions, repos.users)),
	}
	return app, nil
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("[bootstrap] STORAGE_DRIVER=memory, data is lost on restart")
		store := memory.NewStore()
		return repositories{
			projects:      store.Projects(),
			requests:      store.ServiceRequests(),
			renditions:    store.Renditions(),
			notifications: store.Notifications(),
			users:         store.Users(),
			categories:    store.ExpenseCategories(),
			counters:      store.Counters(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	// Local endpoints start empty; production tables are provisioned by infrastructure.
	if cfg.DynamoDB.Endpoint != "" {
		if err := database.EnsureTables(ctx, ddb, database.Schema(cfg.DynamoDB.Tables)); err != nil {
			return repositories{}, fmt.Errorf("ensure tables: %w", err)
		}
	}

	tables := repository.TableNames(cfg.DynamoDB.Tables)
	return repositories{
		projects:      repository.NewProjectDynamoRepository(ddb, tables),
		requests:      repository.NewServiceRequestDynamoRepository(ddb, tables),
		renditions:    repository.NewRenditionDynamoRepository(ddb, tables),
		notifications: repository.NewNotificationDynamoRepository(ddb, tables),
		users:         repository.NewUserDynamoRepository(ddb, tables),
		categories:    repository.NewExpenseCategoryDynamoRepository(ddb, tables),
		counters:      repository.NewCounterDynamoRepository(ddb, tables),
	}, nil
}

func seed(ctx context.Context, cfg *config.Config, users usecase.IUserUseCase, categories usecase.IExpenseCategoryUseCase) error {
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		admin, created, err := users.EnsureAdmin(ctx, usecase.UserInput{
			FirstName: cfg.Admin.FirstName,
			LastName:  cfg.Admin.LastName,
			Email:     cfg.Admin.Email,
			Password:  cfg.Admin.Password,
		})
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if created {
			log.WithField("email", admin.Email).Info("[bootstrap] admin user created")
		}
	}

	n, err := categories.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed expense categories: %w", err)
	}
	if n > 0 {
		log.WithField("count", n).Info("[bootstrap] default expense categories created")
	}
	return nil
}

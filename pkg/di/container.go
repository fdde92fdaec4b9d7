package di

import (
	"taskjar/application/serviceimpl"
	"taskjar/domain/ports"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/infrastructure/ai"
	natspkg "taskjar/infrastructure/nats"
	"taskjar/infrastructure/postgres"
	redispkg "taskjar/infrastructure/redis"
	"taskjar/infrastructure/websocket"
	"taskjar/interfaces/api/handlers"
	"taskjar/pkg/config"
	"taskjar/pkg/logger"
	"taskjar/pkg/scheduler"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // cache for analytics surfaces (optional)
	NATSClient     *natspkg.Client  // NATS connection + JetStream (optional)
	EventPublisher ports.EventPublisher
	NATSSubscriber *natspkg.Subscriber
	Generator      *ai.GeminiGenerator // nil when no API key is configured
	EventScheduler scheduler.EventScheduler

	// Shared state
	UserLocks *serviceimpl.UserLocks

	// Repositories
	UserRepository            repositories.UserRepository
	TaskRepository            repositories.TaskRepository
	JarRepository             repositories.JarRepository
	DailyCompletionRepository repositories.DailyCompletionRepository
	WeeklyDumpRepository      repositories.WeeklyDumpRepository
	SettingRepository         repositories.SettingRepository

	// Services
	UserService       services.UserService
	TaskService       services.TaskService
	JarService        services.JarService
	AnalyticsService  services.AnalyticsService
	GenerationService services.GenerationService
	SettingService    services.SettingService

	// Broadcasting
	EventBroadcaster *websocket.EventBroadcaster

	// Maintenance
	SnapshotJob *serviceimpl.SnapshotJob
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initEventBroadcaster(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize NATS Client + JetStream (optional - events degrade to no-op)
	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
	if err != nil {
		logger.Warn("NATS client initialization failed (live events disabled)", "error", err)
	} else {
		c.NATSClient = natsClient
		c.EventPublisher = natspkg.NewPublisher(natsClient)
		c.NATSSubscriber = natspkg.NewSubscriber(natsClient.Conn())
		logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
	}

	// Initialize Gemini task generator (optional - callers fall back to
	// deterministic plans)
	if c.Config.Gemini.APIKey != "" {
		generator, err := ai.NewGeminiGenerator(c.Config.Gemini.APIKey, c.Config.Gemini.Model)
		if err != nil {
			logger.Warn("Gemini generator initialization failed", "error", err)
		} else {
			c.Generator = generator
			logger.Info("Gemini generator initialized", "model", c.Config.Gemini.Model)
		}
	} else {
		logger.Warn("Gemini generator disabled (GOOGLE_GENERATIVE_AI_API_KEY not configured)")
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.JarRepository = postgres.NewJarRepository(c.DB)
	c.DailyCompletionRepository = postgres.NewDailyCompletionRepository(c.DB)
	c.WeeklyDumpRepository = postgres.NewWeeklyDumpRepository(c.DB)
	c.SettingRepository = postgres.NewSettingRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserLocks = serviceimpl.NewUserLocks()

	defaults := serviceimpl.SettingsDefaults{
		XPLight:       c.Config.TaskJar.XPLight,
		XPStandard:    c.Config.TaskJar.XPStandard,
		XPChallenging: c.Config.TaskJar.XPChallenging,
		JarTarget:     c.Config.TaskJar.JarTarget,
	}

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)

	// Analytics first: the task service snapshots the day after each
	// completion.
	c.AnalyticsService = serviceimpl.NewAnalyticsService(
		c.TaskRepository,
		c.DailyCompletionRepository,
		c.RedisClient,
		c.EventPublisher,
		c.Config.TaskJar.AnalyticsDays,
	)
	if c.RedisClient != nil {
		logger.Info("Analytics service initialized with Redis cache")
	} else {
		logger.Info("Analytics service initialized without cache")
	}

	c.TaskService = serviceimpl.NewTaskService(
		c.TaskRepository,
		c.JarRepository,
		c.SettingRepository,
		c.AnalyticsService,
		c.EventPublisher,
		c.UserLocks,
		defaults,
	)

	c.JarService = serviceimpl.NewJarService(
		c.JarRepository,
		c.SettingRepository,
		c.EventPublisher,
		c.UserLocks,
		defaults,
	)

	// Generator falls back to a disabled stub so the generation service
	// always has something to call.
	var generator ports.TaskGenerator = ai.NewDisabledGenerator()
	if c.Generator != nil {
		generator = c.Generator
	}
	c.GenerationService = serviceimpl.NewGenerationService(
		generator,
		c.WeeklyDumpRepository,
		c.SettingRepository,
		defaults,
	)

	c.SettingService = serviceimpl.NewSettingService(
		c.SettingRepository,
		c.TaskRepository,
		c.JarRepository,
		c.DailyCompletionRepository,
		c.WeeklyDumpRepository,
		c.JarService,
		c.RedisClient,
		defaults,
	)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initEventBroadcaster() error {
	if c.NATSSubscriber == nil {
		logger.Warn("Event broadcaster disabled (NATS not available)")
		return nil
	}

	c.EventBroadcaster = websocket.NewEventBroadcaster(c.NATSSubscriber)
	if err := c.EventBroadcaster.Start(); err != nil {
		logger.Warn("Failed to start event broadcaster", "error", err)
		c.EventBroadcaster = nil
		return nil
	}

	logger.Info("Event broadcaster started (NATS -> WebSocket)")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()

	c.SnapshotJob = serviceimpl.NewSnapshotJob(c.UserRepository, c.AnalyticsService, c.EventScheduler)
	if err := c.SnapshotJob.Register(); err != nil {
		logger.Warn("Failed to register daily snapshot job", "error", err)
		return nil
	}

	logger.Info("Daily snapshot job registered")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop event broadcaster (also stops the NATS subscription)
	if c.EventBroadcaster != nil {
		c.EventBroadcaster.Stop()
		logger.Info("Event broadcaster stopped")
	}

	// Stop scheduler
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	// Close Gemini client
	if c.Generator != nil {
		if err := c.Generator.Close(); err != nil {
			logger.Warn("Failed to close Gemini client", "error", err)
		}
	}

	// Close NATS connection
	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:       c.UserService,
		TaskService:       c.TaskService,
		JarService:        c.JarService,
		AnalyticsService:  c.AnalyticsService,
		GenerationService: c.GenerationService,
		SettingService:    c.SettingService,
		JWTSecret:         c.Config.JWT.Secret,
	}
}

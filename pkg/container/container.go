package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"police-records-backend/internal/config"
	infraCache "police-records-backend/internal/infrastructure/cache"
	"police-records-backend/internal/infrastructure/database"
	"police-records-backend/pkg/cache"
	"police-records-backend/pkg/jwt"

	"police-records-backend/internal/domains/activity"
	activityHandler "police-records-backend/internal/domains/activity/handler"
	activityRepo "police-records-backend/internal/domains/activity/repository"
	activityService "police-records-backend/internal/domains/activity/service"
	"police-records-backend/internal/domains/address"
	addressHandler "police-records-backend/internal/domains/address/handler"
	addressRepo "police-records-backend/internal/domains/address/repository"
	addressService "police-records-backend/internal/domains/address/service"
	"police-records-backend/internal/domains/cazier"
	cazierHandler "police-records-backend/internal/domains/cazier/handler"
	cazierRepo "police-records-backend/internal/domains/cazier/repository"
	cazierService "police-records-backend/internal/domains/cazier/service"
	"police-records-backend/internal/domains/credential"
	credentialHandler "police-records-backend/internal/domains/credential/handler"
	credentialRepo "police-records-backend/internal/domains/credential/repository"
	credentialService "police-records-backend/internal/domains/credential/service"
	"police-records-backend/internal/domains/license"
	licenseHandler "police-records-backend/internal/domains/license/handler"
	licenseRepo "police-records-backend/internal/domains/license/repository"
	licenseService "police-records-backend/internal/domains/license/service"
	"police-records-backend/internal/domains/person"
	personHandler "police-records-backend/internal/domains/person/handler"
	personRepo "police-records-backend/internal/domains/person/repository"
	personService "police-records-backend/internal/domains/person/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton for the application lifetime.
type Container struct {
	// Infrastructure, shared across all domains.
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories.
	PersonRepo     person.Repository
	AddressRepo    address.Repository
	LicenseRepo    license.Repository
	CazierRepo     cazier.Repository
	ActivityRepo   activity.Repository
	CredentialRepo credential.Repository

	// Services.
	PersonService     person.Service
	AddressService    address.Service
	LicenseService    license.Service
	CazierService     cazier.Service
	ActivityService   activity.Service
	CredentialService credential.Service

	// HTTP handlers.
	PersonHandler     *personHandler.PersonHandler
	AddressHandler    *addressHandler.AddressHandler
	LicenseHandler    *licenseHandler.LicenseHandler
	CazierHandler     *cazierHandler.CazierHandler
	ActivityHandler   *activityHandler.ActivityHandler
	CredentialHandler *credentialHandler.CredentialHandler
}

// NewContainer builds the whole dependency graph. Initialization order is
// config, infrastructure, repositories, services, handlers; each layer
// depends only on the layers before it.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("[CONTAINER] Database connected")

	// Redis only backs the two catalog reads, so a connection failure is
	// not fatal: the services fall back to direct store reads.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("[CONTAINER] Redis unavailable, catalog caching disabled: %v", err)
	} else {
		c.Cache = redisCache
		log.Println("[CONTAINER] Redis connected")
	}

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[CONTAINER] Ready")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.PersonRepo = personRepo.NewPostgresRepository(pool)
	c.AddressRepo = addressRepo.NewPostgresRepository(pool)
	c.LicenseRepo = licenseRepo.NewPostgresRepository(pool)
	c.CazierRepo = cazierRepo.NewPostgresRepository(pool)
	c.ActivityRepo = activityRepo.NewPostgresRepository(pool)
	c.CredentialRepo = credentialRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.PersonService = personService.NewPersonService(c.PersonRepo)
	c.AddressService = addressService.NewAddressService(c.AddressRepo)
	c.LicenseService = licenseService.NewLicenseService(c.LicenseRepo, c.Cache)
	c.CazierService = cazierService.NewCazierService(c.CazierRepo, c.Cache)
	c.ActivityService = activityService.NewActivityService(c.ActivityRepo)
	c.CredentialService = credentialService.NewCredentialService(c.CredentialRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService)
	c.AddressHandler = addressHandler.NewAddressHandler(c.AddressService)
	c.LicenseHandler = licenseHandler.NewLicenseHandler(c.LicenseService)
	c.CazierHandler = cazierHandler.NewCazierHandler(c.CazierService)
	c.ActivityHandler = activityHandler.NewActivityHandler(c.ActivityService)
	c.CredentialHandler = credentialHandler.NewCredentialHandler(c.CredentialService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("[CONTAINER] Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("[CONTAINER] Failed to close Redis: %v", err)
			} else {
				log.Println("[CONTAINER] Redis connections closed")
			}
		}
	}
}

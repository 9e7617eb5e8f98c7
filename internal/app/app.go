package app

import (
	"context"
	"fmt"
	"log"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/documents"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/oripay-exchange-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/jwt"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/mailer"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/mongodb"
)

// Repositories groups the document-backed repositories
type Repositories struct {
	Accounts      repositories.AccountRepository
	Users         *documents.UserRepository
	Admins        *documents.AdminRepository
	Content       *documents.ContentRepository
	Services      *documents.ServiceRepository
	Announcements *documents.AnnouncementRepository
	Settings      *documents.SystemSettingsRepository
	Currencies    *documents.CurrencyRepository
	Countries     *documents.CountryRepository
}

// App holds the storage, mail transport and identity provider shared by the binaries
type App struct {
	Config   *config.Config
	Store    repositories.DocumentStore
	Repos    Repositories
	Mailer   mailer.Mailer
	Provider *identity.AccountProvider

	mongoClient *mongodb.Client
}

// Open connects the document store and mail transport selected by cfg
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	var accounts repositories.AccountRepository
	if cfg.MongoDB.URI == config.MemoryStoreURI {
		log.Println("[WARN] Using the in-memory document store; data is lost on restart")
		a.Store = memory.NewDocumentStore()
		accounts = memory.NewAccountRepository()
	} else {
		client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
		if err != nil {
			return nil, err
		}
		a.mongoClient = client
		db := client.Database(cfg.MongoDB.Database)
		a.Store = mongorepo.NewDocumentStore(db)

		accountRepo := mongorepo.NewAccountRepository(db)
		if err := accountRepo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("failed to create account indexes: %w", err)
		}
		accounts = accountRepo
		log.Printf("[INFO] Connected to MongoDB database %s", cfg.MongoDB.Database)
	}

	a.Repos = Repositories{
		Accounts:      accounts,
		Users:         documents.NewUserRepository(a.Store),
		Admins:        documents.NewAdminRepository(a.Store),
		Content:       documents.NewContentRepository(a.Store),
		Services:      documents.NewServiceRepository(a.Store),
		Announcements: documents.NewAnnouncementRepository(a.Store),
		Settings:      documents.NewSystemSettingsRepository(a.Store),
		Currencies:    documents.NewCurrencyRepository(a.Store),
		Countries:     documents.NewCountryRepository(a.Store),
	}

	if cfg.Mail.AMQPURL != "" {
		m, err := mailer.NewRabbitMQMailer(cfg.Mail.AMQPURL, cfg.Mail.Queue)
		if err != nil {
			a.Close(context.Background())
			return nil, err
		}
		a.Mailer = m
	} else {
		log.Println("[WARN] Mail.AMQPURL not set; emails are logged instead of queued")
		a.Mailer = mailer.NewLogMailer()
	}

	tokens := jwt.NewTokenService(cfg.JWT.Secret, cfg.TokenTTL())
	a.Provider = identity.NewAccountProvider(accounts, tokens, a.Mailer, identity.ProviderOptions{
		ResetURL:   cfg.Mail.ResetURL,
		LoginRate:  cfg.Identity.LoginRate,
		LoginBurst: cfg.Identity.LoginBurst,
	})
	return a, nil
}

// Close releases the mail transport and the database connection
func (a *App) Close(ctx context.Context) {
	if a.Mailer != nil {
		if err := a.Mailer.Close(); err != nil {
			log.Printf("[ERROR] Failed to close mailer: %v", err)
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			log.Printf("[ERROR] Error disconnecting from MongoDB: %v", err)
		}
	}
}

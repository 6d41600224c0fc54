package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/recruitedge/outreach/internal/config"
	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/database"
	"github.com/recruitedge/outreach/internal/infra/integration/anthropic"
	"github.com/recruitedge/outreach/internal/infra/mail"
	"github.com/recruitedge/outreach/internal/infra/queue"
	"github.com/recruitedge/outreach/internal/usecase"
)

// App holds the wired collaborators and use cases shared by the API server
// and the console.
type App struct {
	Config   *config.Config
	DB       *sql.DB
	RabbitMQ *queue.RabbitMQ
	LeadRepo entity.LeadRepositoryInterface

	GenerateEmailUC *usecase.GenerateEmailUseCase
	SendEmailUC     *usecase.SendEmailUseCase
	OutreachUC      *usecase.OutreachUseCase
	ListLeadsUC     *usecase.ListLeadsUseCase
	UpdateLeadUC    *usecase.UpdateLeadUseCase
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	// 1. Lead store
	if cfg.DatabaseURL != "" {
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		repo := database.NewLeadRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		a.DB = db
		a.LeadRepo = repo
		log.Println("🗄️ Leads stored in Postgres")
	} else {
		a.LeadRepo = database.NewJSONLeadRepository(cfg.LeadsFile)
		log.Printf("🗄️ Leads stored in %s", cfg.LeadsFile)
	}

	// 2. Generator and mail provider
	generator, err := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicMaxTokens)
	if err != nil {
		a.Close()
		return nil, err
	}
	mailer := newMailer(cfg)

	// 3. Optional lead events
	var publisher usecase.LeadEventPublisher
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.RabbitMQ = rabbitMQ
		publisher = queue.NewProducer(rabbitMQ.Ch)
		log.Println("📨 Publishing lead events to RabbitMQ")
	}

	// 4. Use cases
	a.GenerateEmailUC = usecase.NewGenerateEmailUseCase(generator, cfg.ParseStrategy)
	a.SendEmailUC = usecase.NewSendEmailUseCase(mailer, a.LeadRepo, publisher)
	a.OutreachUC = usecase.NewOutreachUseCase(a.GenerateEmailUC, a.SendEmailUC)
	a.ListLeadsUC = usecase.NewListLeadsUseCase(a.LeadRepo)
	a.UpdateLeadUC = usecase.NewUpdateLeadUseCase(a.LeadRepo, publisher)

	return a, nil
}

func newMailer(cfg *config.Config) usecase.EmailService {
	if cfg.MailProvider == mail.ProviderSMTP {
		if cfg.MailHost == "" {
			log.Println("⚠️ MAIL_HOST is not set, sends will fail")
		}
		return mail.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	}

	if cfg.ResendAPIKey == "" {
		log.Println("⚠️ RESEND_API_KEY is not set, sends will fail")
	}
	return mail.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom)
}

// MailConfigured reports whether the selected provider has credentials.
func (a *App) MailConfigured() bool {
	if a.Config.MailProvider == mail.ProviderSMTP {
		return a.Config.MailHost != ""
	}
	return a.Config.ResendAPIKey != ""
}

func (a *App) Close() {
	if a.RabbitMQ != nil {
		a.RabbitMQ.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

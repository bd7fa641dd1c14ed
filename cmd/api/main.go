// @title           Onboarding API
// @version         1.0
// @description     API de seguimiento del onboarding de consultores.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/afero"

	_ "github.com/jhoicas/Onboarding-api/docs"
	"github.com/jhoicas/Onboarding-api/internal/application/auth"
	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/mail"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Onboarding-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Onboarding-api/internal/interfaces/http"
	"github.com/jhoicas/Onboarding-api/pkg/config"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// devJWTSecret solo para STORAGE_DRIVER=memory sin JWT_SECRET.
const devJWTSecret = "dev-only-insecure-secret"

// stores repositorios y TxRunner del driver elegido.
type stores struct {
	consultants repository.ConsultantRepository
	documents   repository.DocumentRepository
	activities  repository.ActivityRepository
	users       repository.UserRepository
	tx          onboarding.TxRunner
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("files", cfg.Files.Driver).
		Bool("mail_dry_run", cfg.Mail.DryRun).
		Msg("iniciando aplicación")

	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	if cfg.JWT.Secret == "" {
		if cfg.Storage.Driver != "memory" {
			log.Fatal().Msg("JWT_SECRET es requerido")
		}
		log.Warn().Msg("JWT_SECRET vacío; usando secreto de desarrollo")
		cfg.JWT.Secret = devJWTSecret
	}

	generator, err := infrapdf.NewMarotoPDFGenerator(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("checklist de onboarding")
	}
	files, err := openFileStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de documentos")
	}
	var mailer onboarding.EmailSender
	if cfg.Mail.DryRun {
		mailer = mail.NewDryRunSender(log)
	} else {
		mailer = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
		}, log)
	}

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.Email != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("crear admin inicial")
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("admin inicial creado")
		}
	}

	consultantUC := onboarding.NewConsultantUseCase(st.consultants, st.tx, log)
	documentUC := onboarding.NewDocumentUseCase(st.consultants, st.documents, st.tx, log)
	activityUC := onboarding.NewActivityUseCase(st.consultants, st.activities, st.tx)
	progressUC := onboarding.NewProgressUseCase(st.consultants, st.documents, st.activities)
	outreachUC := onboarding.NewOutreachUseCase(
		st.consultants, st.documents, st.tx,
		generator, files, mailer,
		onboarding.OutreachConfig{
			CompanyName:        cfg.Company.Name,
			DefaultManager:     cfg.Company.DefaultManager,
			HiringManager:      cfg.Company.HiringManager,
			HiringManagerTitle: cfg.Company.HiringManagerTitle,
			Location:           cfg.Company.Location,
			Timeout:            cfg.Outreach.Timeout(),
		},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Outreach.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Onboarding API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ConsultantUC: consultantUC,
		DocumentUC:   documentUC,
		ActivityUC:   activityUC,
		ProgressUC:   progressUC,
		OutreachUC:   outreachUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Storage.Driver == "memory" {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &stores{
			consultants: s.Consultants(),
			documents:   s.Documents(),
			activities:  s.Activities(),
			users:       s.Users(),
			tx:          s,
			close:       func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(pool, log); err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		consultants: postgres.NewConsultantRepository(pool),
		documents:   postgres.NewDocumentRepository(pool),
		activities:  postgres.NewActivityRepository(pool),
		users:       postgres.NewUserRepository(pool),
		tx:          postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}

func openFileStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (onboarding.FileStore, error) {
	if cfg.Files.Driver == "minio" {
		s, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.Files.MinioEndpoint,
			AccessKey: cfg.Files.MinioAccessKey,
			SecretKey: cfg.Files.MinioSecretKey,
			Bucket:    cfg.Files.MinioBucket,
			UseSSL:    cfg.Files.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	return storage.NewLocalStore(afero.NewOsFs(), cfg.Files.LocalDir, log)
}

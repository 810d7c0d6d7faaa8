package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/database/postgres"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent/agentclient"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/sheets"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/sheets/sheetsclient"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/stripe"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/stripe/stripeclient"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository"
	"github.com/farah2601/investor-plattform-sub002/internal/api"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/scheduler"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/authenticating"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/companying"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/sharing"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/snapshotting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	investorLinkRepo := repository.NewInvestorLinkRepository(pgConn)
	accessRequestRepo := repository.NewAccessRequestRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, companyRepo, cfg)

	agentClient := agentclient.NewClient(cfg)
	agentIntegrator := agent.New(cfg, agentClient)

	stripeClient := stripeclient.NewClient(cfg)
	stripeIntegrator := stripe.New(cfg, stripeClient)

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	companyService := companying.NewService(companyRepo, stripeIntegrator, cfg)
	snapshotService := snapshotting.NewService(cfg, snapshotRepo, companyRepo, agentIntegrator)
	sharingService := sharing.NewService(cfg, investorLinkRepo, accessRequestRepo, companyRepo, snapshotRepo)

	// Inicializa o agendador de sincronização noturna de snapshots
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		companyRepo,
		snapshotRepo,
		agentIntegrator,
		stripeIntegrator,
		sheetsIntegrator,
		cfg,
	)

	// Inicia o agendador em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshots")
	} else {
		logrus.Info("Agendador de sincronização de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		snapshotService,
		companyService,
		sharingService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

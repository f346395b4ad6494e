package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/infrastructure/repository"
	"github.com/vfg2006/backbone-api/internal/api"
	"github.com/vfg2006/backbone-api/internal/config"
	"github.com/vfg2006/backbone-api/internal/scheduler"
	"github.com/vfg2006/backbone-api/internal/usecases/analyzing"
	"github.com/vfg2006/backbone-api/internal/usecases/authenticating"
	"github.com/vfg2006/backbone-api/internal/usecases/detecting"
	"github.com/vfg2006/backbone-api/internal/usecases/importing"
	"github.com/vfg2006/backbone-api/internal/usecases/prioritizing"
	"github.com/vfg2006/backbone-api/internal/usecases/scoring"
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

	companyRepo := repository.NewCompanyRepository(pgConn)
	roundRepo := repository.NewRoundRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	firmRepo := repository.NewFirmRepository(pgConn)
	personRepo := repository.NewPersonRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Monta o pipeline de análise: detecção de issues, health score e
	// ordenação por prioridade
	detector := detecting.NewService()
	scorer := scoring.NewService()
	prioritizer := prioritizing.NewService()

	analyzer := analyzing.NewService(
		companyRepo,
		roundRepo,
		dealRepo,
		firmRepo,
		personRepo,
		goalRepo,
		detector,
		scorer,
		prioritizer,
	)

	importer := importing.NewService(
		pgConn,
		companyRepo,
		roundRepo,
		dealRepo,
		firmRepo,
		personRepo,
		goalRepo,
	)

	// Inicializa o agendador de detecção periódica
	detectionSyncService := scheduler.NewDetectionSyncService(analyzer, cfg)

	if err := detectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de detecção de issues")
	} else {
		logrus.Info("Agendador de detecção de issues iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		importer,
		authenticator,
		detectionSyncService,
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

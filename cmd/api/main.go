package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sustain-inventory/inventory-api/infrastructure/cache/rediscache"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/infrastructure/integrator/forecastapi/forecastclient"
	"github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini"
	"github.com/sustain-inventory/inventory-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/api"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/scheduler"
	"github.com/sustain-inventory/inventory-api/internal/usecases/authenticating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/contact"
	"github.com/sustain-inventory/inventory-api/internal/usecases/dashboarding"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/internal/usecases/reserving"
	"github.com/sustain-inventory/inventory-api/internal/usecases/selling"
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

	itemRepo := repository.NewItemRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	reservationRepo := repository.NewReservationRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewForecastSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Sem chave o endpoint de previsão responde "Gemini API key missing."
	var geminiClient geminiclient.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = geminiclient.NewClient(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar cliente Gemini, previsões ficarão indisponíveis")
		} else {
			defer geminiClient.Close()
		}
	} else {
		logrus.Warn("GEMINI_API_KEY não configurada, previsões ficarão indisponíveis")
	}
	geminiIntegrator := gemini.New(cfg, geminiClient)

	forecaster := forecasting.NewService(cfg, geminiIntegrator)
	if cfg.Redis.Addr != "" {
		forecastCache := rediscache.NewForecastCache(cfg)
		defer forecastCache.Close()

		if err := forecastCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("Redis indisponível, cache de previsões desabilitado")
		} else {
			forecaster.WithCache(forecastCache)
			logrus.WithField("addr", cfg.Redis.Addr).Info("Cache de previsões habilitado")
		}
	}

	requester := forecastRequester(cfg, forecaster)

	inventoryService := inventory.NewService(itemRepo, saleRepo, catalogRepo, cfg)
	reservingService := reserving.NewService(itemRepo, saleRepo, reservationRepo, contactRepo, cfg)
	sellingService := selling.NewService(saleRepo, cfg)
	contactService := contact.NewService(contactRepo)
	dashboardService := dashboarding.NewService(saleRepo, itemRepo, requester, cfg)

	forecastSnapshotSyncService := scheduler.NewForecastSnapshotSyncService(dashboardService, snapshotRepo, cfg)

	if err := forecastSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de previsão")
	} else {
		logrus.Info("Agendador de snapshots de previsão iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Inventory:     inventoryService,
		Reserver:      reservingService,
		Seller:        sellingService,
		Contacter:     contactService,
		Dashboarder:   dashboardService,
		Forecaster:    forecaster,
		Snapshots:     forecastSnapshotSyncService,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// forecastRequester usa o endpoint remoto quando FORECAST_ENDPOINT_URL está definido
func forecastRequester(cfg *config.Config, forecaster forecasting.Forecaster) forecasting.Requester {
	if cfg.Forecast.EndpointURL == "" {
		return forecasting.NewLocalRequester(forecaster)
	}

	client, err := forecastclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Endpoint de previsão inválido, usando previsão local")
		return forecasting.NewLocalRequester(forecaster)
	}

	logrus.WithField("endpoint", cfg.Forecast.EndpointURL).Info("Previsões do dashboard via endpoint remoto")
	return client
}

// configureLogger configura o formato dos logs. O .env é procurado a partir do diretório atual pelo config.
func configureLogger() {
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

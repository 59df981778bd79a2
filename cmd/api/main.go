package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "locality-api/docs"
	"locality-api/internal/config"
	"locality-api/internal/gazetteer"
	"locality-api/internal/geocoder"
	"locality-api/internal/handler"
	"locality-api/internal/repository"
	"locality-api/internal/search"
	"locality-api/internal/service"
	"locality-api/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ownerCollection holds the user and provider documents that embed a location.
const ownerCollection = "users"

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gaz, err := gazetteer.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load gazetteer")
	}

	// Database connection. Providers live in Postgres whenever DB_SOURCE is set;
	// DB_DRIVER picks where entity locations are stored.
	var pool *pgxpool.Pool
	if config.DBSource != "" {
		pool, err = pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer pool.Close()

		if err := repository.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("cannot create schema")
		}
	}

	// Provider candidates are the imported directory (when Postgres is configured) plus
	// every tracked entity that has a role, read from the same store the tracker writes.
	var providers repository.ProviderSources
	if pool != nil {
		providers = append(providers, repository.NewRepository(pool))
	}

	var store tracker.Store
	switch config.DBDriver {
	case "postgres":
		s := repository.NewLocationStore(pool)
		store, providers = s, append(providers, s)
	case "mongo":
		client, err := repository.ConnectMongo(ctx, config.MongoURI)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to mongo")
		}
		defer client.Disconnect(context.Background())
		s := repository.NewMongoLocationStore(client.Database(config.MongoDatabase).Collection(ownerCollection))
		store, providers = s, append(providers, s)
	default:
		log.Warn().Msg("using in-memory location store; locations are lost on restart")
		s := tracker.NewMemoryStore()
		store, providers = s, append(providers, s)
	}

	opts := geocoder.Options{
		CacheTTL:      config.CacheTTL,
		DeviceTimeout: config.DeviceTimeout,
	}
	if config.GeoIPCityDB != "" {
		geoip, err := geocoder.OpenGeoIP(config.GeoIPCityDB)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open GeoIP database")
		}
		defer geoip.Close()
		opts.IPLocator = geoip
	}

	// Initialize layers
	resolver := geocoder.NewResolver(
		geocoder.NewClient(config.GeocoderBaseURL, config.GeocoderAPIKey, config.GeocoderTimeout),
		gaz,
		opts,
	)

	geoCodeService := service.NewGeoCodeService(resolver, search.NewDebouncer(config.DebounceDelay))
	reverseGeocodeService := service.NewReverseGeoCodeService(resolver)
	searchService := service.NewSearchService(search.NewRanker(gaz), gaz)
	nearbyService := service.NewNearbyService(providers, gaz)
	locationService := service.NewLocationService(tracker.New(store), resolver, gaz)

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)
	searchHandler := handler.NewSearchHandler(searchService)
	nearbyHandler := handler.NewNearbyHandler(nearbyService)
	locationHandler := handler.NewLocationHandler(locationService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.Logger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/search", searchHandler.Search)
	r.GET("/places/autocomplete", geoCodeHandler.Autocomplete)
	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	r.POST("/device-location", reverseGeocodeHandler.DeviceLocation)
	r.GET("/approximate-location", reverseGeocodeHandler.ApproximateLocation)
	r.GET("/nearby", nearbyHandler.Providers)
	r.GET("/nearby/cities", nearbyHandler.Cities)
	r.GET("/entities/:id/location", locationHandler.Get)
	r.PUT("/entities/:id/location", locationHandler.Update)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin", "X-Request-ID", "X-Session-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         86400,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           corsHandler.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Str("store", config.DBDriver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"locality-api/internal/config"
	"locality-api/internal/models"
	"locality-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Expected CSV header, in order.
var providerColumns = []string{"name", "role", "category", "lat", "lng"}

func main() {
	file := flag.String("file", "", "Path to the providers CSV file to import")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	providers, err := parseProviders(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}

	log.Info().Int("records", len(providers)).Msg("parsed providers")

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	before, err := countProviders(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count providers")
	}

	if err := insertProviders(ctx, conn, providers); err != nil {
		log.Fatal().Err(err).Msg("cannot insert providers")
	}

	after, err := countProviders(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count providers")
	}
	if after-before != len(providers) {
		log.Fatal().Int("expected", len(providers)).Int("inserted", after-before).Msg("record count mismatch")
	}

	log.Info().Int("records", len(providers)).Int("total", after).Msg("import finished")
}

// parseProviders reads a header row followed by name,role,category,lat,lng rows. Rows
// outside the country are rejected along with the whole file.
func parseProviders(r io.Reader) ([]models.Provider, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(providerColumns)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, col := range providerColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return nil, fmt.Errorf("unexpected header %q, want %s", strings.Join(header, ","), strings.Join(providerColumns, ","))
		}
	}

	var providers []models.Provider
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		lat, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q", line, record[3])
		}
		lng, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q", line, record[4])
		}
		if err := models.ValidateCoordinates(lat, lng); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		name, role := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		if name == "" || role == "" {
			return nil, fmt.Errorf("line %d: name and role are required", line)
		}

		providers = append(providers, models.Provider{
			Name:        name,
			Role:        role,
			Category:    strings.TrimSpace(record[2]),
			Coordinates: models.Coordinates{Latitude: lat, Longitude: lng},
		})
	}

	return providers, nil
}

func insertProviders(ctx context.Context, conn *pgx.Conn, providers []models.Provider) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"providers"},
		[]string{"name", "role", "category", "latitude", "longitude"},
		pgx.CopyFromSlice(len(providers), func(i int) ([]any, error) {
			p := providers[i]
			return []any{p.Name, p.Role, p.Category, p.Coordinates.Latitude, p.Coordinates.Longitude}, nil
		}),
	)
	return err
}

func countProviders(ctx context.Context, conn *pgx.Conn) (int, error) {
	var count int
	err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM providers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

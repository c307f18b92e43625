package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"

	typegen "github.com/goliatone/go-typegen"
	"github.com/goliatone/go-typegen/pkg/config"
	"github.com/goliatone/go-typegen/pkg/orchestrator"
)

const defaultOutPath = "record-types.ts"

func main() {
	var (
		dbPath     = flag.String("db", "", "path to the record service database file")
		jsonPath   = flag.String("json", "", "path to a JSON schema export")
		urlFlag    = flag.String("url", "", "URL of a running record service")
		email      = flag.String("email", "", "admin email for the remote API (or TYPEGEN_EMAIL)")
		password   = flag.String("password", "", "admin password for the remote API (or TYPEGEN_PASSWORD)")
		outPath    = flag.String("out", "", "output path for the generated definitions")
		configPath = flag.String("config", "", "path to a config file (default typegen.yml)")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(typegen.Version)
		return
	}

	logger := newLogger(*verbose)

	cfgPath, explicit := config.DefaultPath, false
	if *configPath != "" {
		cfgPath, explicit = *configPath, true
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	// Flags win over the config file; credentials fall back to the
	// environment.
	db := firstNonEmpty(*dbPath, cfg.DB)
	jsonFile := firstNonEmpty(*jsonPath, cfg.JSON)
	url := firstNonEmpty(*urlFlag, cfg.URL)
	out := firstNonEmpty(*outPath, cfg.Out, defaultOutPath)

	req := typegen.Request{OutPath: out}
	switch countSet(db, jsonFile, url) {
	case 0:
		logger.Fatal().Msg("one of -db, -json or -url is required")
	case 1:
		// exactly one source
	default:
		logger.Fatal().Msg("-db, -json and -url are mutually exclusive")
	}

	switch {
	case db != "":
		req.Source = typegen.SourceFromDatabase(db)
	case jsonFile != "":
		req.Source = typegen.SourceFromFile(jsonFile)
	case url != "":
		req.Source = typegen.SourceFromURL(url)
		req.Email = firstNonEmpty(*email, cfg.Email, os.Getenv("TYPEGEN_EMAIL"))
		req.Password = firstNonEmpty(*password, os.Getenv("TYPEGEN_PASSWORD"))
		if req.Email == "" {
			logger.Fatal().Msg("admin email is required for the remote API")
		}
		if req.Password == "" {
			req.Password, err = promptPassword(req.Email)
			if err != nil {
				logger.Fatal().Err(err).Msg("read admin password")
			}
		}
	}

	ctx := context.Background()
	if _, err := typegen.Generate(ctx, req, orchestrator.WithLogger(logger)); err != nil {
		logger.Fatal().Err(err).Msg("generate type definitions")
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func promptPassword(email string) (string, error) {
	var out string
	prompt := &survey.Password{
		Message: fmt.Sprintf("Admin password for %s:", email),
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func countSet(values ...string) int {
	count := 0
	for _, value := range values {
		if value != "" {
			count++
		}
	}
	return count
}

// Command importer loads a timetable file into the schedule database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/config"
	"github.com/Dermofet/MephiApp-sub000/internal/importer"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/filestorage"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "Path to the configuration file")
	file := flag.String("file", "", "Timetable to import (.csv or .xls)")
	encoding := flag.String("encoding", importer.EncodingUTF8, "Input encoding: utf-8 or windows-1251")
	replace := flag.Bool("replace", false, "Drop the existing lessons of every imported room first")
	archive := flag.Bool("archive", false, "Keep a copy of the file in the import archive")
	flag.Parse()

	if *file == "" {
		logger.Error().Msg("-file is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rows, err := importer.ReadFile(*file, *encoding)
	if err != nil {
		lgr.Error().Err(err).Str("file", *file).Msg("Failed to read timetable")
		os.Exit(1)
	}
	if len(rows) == 0 {
		lgr.Warn().Str("file", *file).Msg("Timetable contains no lessons, nothing to do")
		return
	}

	db, err := importer.Open(cfg.GetPostgresConnectionString())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	result, err := importer.NewLoader(db, lgr).Load(ctx, rows, *replace)
	if err != nil {
		lgr.Error().Err(err).Msg("Import failed, nothing was written")
		os.Exit(1)
	}

	if *archive {
		if stored, err := archiveFile(cfg, *file); err != nil {
			lgr.Warn().Err(err).Msg("Timetable imported but could not be archived")
		} else {
			result.Archived = stored
		}
	}

	lgr.Info().
		Int("rows", result.Rows).
		Int("corps", result.Corps).
		Int("rooms", result.Rooms).
		Int("lessonsAdded", result.LessonsAdded).
		Int64("lessonsDeleted", result.LessonsDeleted).
		Str("archived", result.Archived).
		Msg("Timetable imported")
}

func archiveFile(cfg *config.Config, path string) (string, error) {
	storage, err := filestorage.NewLocalStorage(cfg.Storage.ImportArchiveDir, cfg.Storage.BaseURL)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return storage.SaveReader(f, path, services.ImportSubPath)
}

package main

import (
	"fmt"
	"os"

	"github.com/nirbeaver/construction-management/internal/auth"
	"github.com/nirbeaver/construction-management/internal/config"
	"github.com/nirbeaver/construction-management/internal/db"
	"github.com/nirbeaver/construction-management/internal/excel"
	httphandler "github.com/nirbeaver/construction-management/internal/http"
	"github.com/nirbeaver/construction-management/internal/http/middleware"
	"github.com/nirbeaver/construction-management/internal/logger"
	"github.com/nirbeaver/construction-management/internal/pdf"
	"github.com/nirbeaver/construction-management/internal/repository"
	"github.com/nirbeaver/construction-management/internal/service"
	"github.com/nirbeaver/construction-management/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	store, err := storage.NewLocal(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init file storage")
	}

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	projectRepo := repository.NewProjectRepository(database)
	subcontractorRepo := repository.NewSubcontractorRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	officeExpenseRepo := repository.NewOfficeExpenseRepository(database)
	documentRepo := repository.NewDocumentRepository(database)

	projectService := service.NewProjectService(projectRepo, log)
	subcontractorService := service.NewSubcontractorService(subcontractorRepo, projectRepo, log)
	transactionService := service.NewTransactionService(transactionRepo, projectRepo, log)
	officeExpenseService := service.NewOfficeExpenseService(officeExpenseRepo, log)
	documentService := service.NewDocumentService(documentRepo, projectRepo, store, log)
	reportService := service.NewReportService(projectRepo, subcontractorRepo, transactionRepo, excel.NewGenerator(), pdfGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		projectService,
		subcontractorService,
		transactionService,
		officeExpenseService,
		documentService,
		reportService,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins, cfg.Storage.Dir)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting construction management service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

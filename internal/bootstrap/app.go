package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"fastreader/internal/documents"
	"fastreader/internal/readinglogs"
	"fastreader/internal/server"
	"fastreader/internal/shared/config"
	"fastreader/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Store              *documents.Store
	DocumentsRepo      documents.Repo
	ReadingLogsRepo    readinglogs.Repo
	DocumentsService   *documents.Service
	ReadingLogsService *readinglogs.Service
	DocumentsHandler   *documents.Handler
	ReadingLogsHandler *readinglogs.Handler
	Pages              *server.Pages
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := documents.NewStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	var docRepo documents.Repo
	var logRepo readinglogs.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		logRepo = &readinglogs.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		logRepo = readinglogs.NewMemoryRepo()
	}

	logSvc := &readinglogs.Service{Repo: logRepo, Docs: docRepo}
	docSvc := &documents.Service{Store: store, Repo: docRepo, Logs: logRepo}

	app := &App{
		Config:             cfg,
		DB:                 sqlDB,
		Store:              store,
		DocumentsRepo:      docRepo,
		ReadingLogsRepo:    logRepo,
		DocumentsService:   docSvc,
		ReadingLogsService: logSvc,
		DocumentsHandler:   documents.NewHandler(docSvc),
		ReadingLogsHandler: readinglogs.NewHandler(logSvc),
		Pages:              server.NewPages(docSvc),
	}

	app.Router = server.NewRouter(server.Deps{
		Config:      cfg,
		Documents:   app.DocumentsHandler,
		ReadingLogs: app.ReadingLogsHandler,
		Pages:       app.Pages,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

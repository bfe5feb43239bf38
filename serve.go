package main

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"housing-trends/charts"
	"housing-trends/common"
	"housing-trends/datasets"
	"housing-trends/exports"
	"housing-trends/imports"

	_ "housing-trends/docs"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

//go:embed templates/index.html
var templatesFS embed.FS

type serveOptions struct {
	port         string
	databasePath string
	datasetsFile string
	dataDir      string
}

func newServeCmd() *cobra.Command {
	cfg := common.LoadConfig()
	opts := &serveOptions{
		port:         cfg.Port,
		databasePath: cfg.DatabasePath,
		datasetsFile: cfg.DatasetsFile,
		dataDir:      cfg.DataDir,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the dataset catalogue and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Port = opts.port
			cfg.DatabasePath = opts.databasePath
			cfg.DatasetsFile = opts.datasetsFile
			cfg.DataDir = opts.dataDir
			return serve(cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.port, "port", "p", opts.port, "HTTP listen port (env PORT)")
	cmd.Flags().StringVar(&opts.databasePath, "db", opts.databasePath, "SQLite file for metrics and load history (env DATABASE_PATH)")
	cmd.Flags().StringVar(&opts.datasetsFile, "datasets", opts.datasetsFile, "YAML dataset catalogue, built-in datasets when empty (env DATASETS_FILE)")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", opts.dataDir, "Directory for relative dataset paths (env DATA_DIR)")
	return cmd
}

func serve(cfg common.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize database
	db, err := common.Init(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := common.Close(db); err != nil {
			log.Println("Failed to close database:", err)
		}
	}()

	cat := datasets.DefaultCatalogue(cfg.DataDir)
	if cfg.DatasetsFile != "" {
		cat, err = datasets.LoadCatalogue(cfg.DatasetsFile, cfg.DataDir)
		if err != nil {
			return err
		}
	}

	// Every dataset must load before the server accepts requests
	registry, err := datasets.Load(cat, db)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}

	r, err := NewRouter(registry, db)
	if err != nil {
		return err
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	return r.Run(cfg.Addr())
}

// NewRouter wires the dashboard page and the API onto a gin engine. db may be
// nil, in which case request metrics are not persisted.
func NewRouter(registry *datasets.Registry, db *gorm.DB) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.SetHTMLTemplate(tmpl)
	r.Use(common.MetricsMiddleware(db))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Datasets": registry.Routes(),
		})
	})

	api := r.Group("/api")
	v1 := api.Group("/v1/datasets")
	charts.RegisterRoutes(api, v1, charts.NewHandler(registry))
	exports.RegisterRoutes(v1, exports.NewHandler(registry))
	imports.RegisterRoutes(api.Group("/v1/imports"))

	return r, nil
}

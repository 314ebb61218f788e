package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/board-explorer/backend/internal/api"
	"github.com/board-explorer/backend/internal/board"
	"github.com/board-explorer/backend/internal/catalog"
	"github.com/board-explorer/backend/internal/config"
	"github.com/board-explorer/backend/internal/storage"
	"github.com/board-explorer/backend/internal/web"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Config lives next to the executable
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	configPath := filepath.Join(exeDir, "BoardExplorer.exe.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	embeddedMode := web.HasEmbeddedFiles()

	fileStore, err := storage.NewLocalStore(cfg.GetUploadDir())
	if err != nil {
		fmt.Printf("Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	catalogStore := catalog.NewStore()

	renderer := board.NewRenderer(nil)
	if cfg.Dataset.StyleFile != "" {
		style, err := board.LoadStyle(cfg.Dataset.StyleFile)
		if err == nil {
			renderer = board.NewRenderer(style)
		} else if !os.IsNotExist(err) {
			fmt.Printf("Warning: failed to load style file: %v\n", err)
		}
	}

	h := api.NewHandler(fileStore, catalogStore, renderer)
	h.SetMaxPoints(cfg.Dataset.MaxPoints)

	// Boot with the default snapshot when one is present
	if cfg.Dataset.DefaultSnapshot != "" {
		if err := h.LoadDefaultSnapshot(cfg.Dataset.DefaultSnapshot); err != nil {
			fmt.Printf("Warning: failed to load default snapshot: %v\n", err)
		} else if cat, ok := catalogStore.Current(); ok {
			fmt.Printf("Loaded default snapshot: %d routes from %s\n", cat.Len(), cat.Source)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			path := c.Request().URL.Path
			return path == "/api/health" || strings.HasPrefix(path, "/api/board/")
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	if cfg.Dataset.EnableCompression {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: cfg.Dataset.CompressionLevel,
		}))
	}

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, h, api.Options{
		AllowSnapshotDeletion: cfg.Security.AllowFileDeletion,
	})

	if embeddedMode {
		if err := web.RegisterStaticRoutes(e); err != nil {
			fmt.Printf("Warning: failed to register static routes: %v\n", err)
		}
	}

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	mode := "API only"
	if embeddedMode {
		mode = "Embedded viewer"
	}

	fmt.Printf("\n")
	fmt.Printf("Board Explorer Server\n")
	fmt.Printf("  Version:    %s (%s)\n", Version, BuildTime)
	fmt.Printf("  Mode:       %s\n", mode)
	fmt.Printf("  Config:     %s\n", configPath)
	fmt.Printf("  Listen:     http://%s\n", cfg.GetServerAddr())
	fmt.Printf("  Data Dir:   %s\n", cfg.GetDataDir())
	fmt.Printf("\n")

	e.Logger.Fatal(e.StartServer(s))
}

package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/api"
	"github.com/hanumantha123456/portfolio/cache"
	"github.com/hanumantha123456/portfolio/config"
	"github.com/hanumantha123456/portfolio/content"
	"github.com/hanumantha123456/portfolio/encryption"
	"github.com/hanumantha123456/portfolio/internal/reload"
	"github.com/hanumantha123456/portfolio/storage"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Starts the HTTP server. The page is rendered per request with the
visitor's stored theme, and a small JSON API under /api/v1 reads and changes it.
With --watch, edits to the content file are picked up without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DSN)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("Failed to close storage", "error", err)
			}
		}()

		prefCache, err := cache.Open(cfg.Cache.Backend, cache.RedisOptions{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		if prefCache != nil {
			defer func() {
				if err := prefCache.Close(); err != nil {
					logger.Error("Failed to close cache", "error", err)
				}
			}()
		}

		profile, err := content.Load(cfg.Site.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		cookies, err := cookieManager(cfg, logger)
		if err != nil {
			return err
		}

		srv, err := api.NewServer(api.Config{
			ListenAddress:  cfg.Server.Addr,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			Storage:        store,
			Cache:          prefCache,
			CacheTTL:       cfg.Cache.TTL,
			Logger:         logger,
			Profile:        profile,
			Cookies:        cookies,
			CookieSecure:   cfg.Server.CookieSecure,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AssetsDir:      cfg.Site.AssetsDir,
			WasmURL:        cfg.Site.WasmURL,
		})
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			if err := watchContent(ctx, cfg.Site.ContentFile, srv, logger); err != nil {
				return err
			}
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down server...")
		timeout := cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

// cookieManager picks the visitor cookie key: config first, then the
// environment, then a random per-process key.
func cookieManager(cfg *config.Config, logger portfolio.Logger) (*encryption.Manager, error) {
	if cfg.Server.CookieKey != "" {
		return encryption.NewManagerWithKey([]byte(cfg.Server.CookieKey))
	}
	mgr, err := encryption.NewManager()
	if err == nil {
		return mgr, nil
	}
	if !errors.Is(err, encryption.ErrKeyNotFound) {
		return nil, fmt.Errorf("cookie key: %w", err)
	}

	secret := make([]byte, encryption.MinKeyLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating cookie key: %w", err)
	}
	logger.Warn("No cookie key configured, visitor ids will not survive a restart", "env", encryption.EnvKeyName)
	return encryption.NewManagerWithKey(secret)
}

// watchContent reloads the content file into srv whenever it changes.
func watchContent(ctx context.Context, path string, srv *api.Server, logger portfolio.Logger) error {
	if path == "" {
		logger.Warn("--watch has no effect without site.content_file")
		return nil
	}
	w, err := reload.New(path, reload.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	logger.Info("Watching content file", "path", w.Path())

	go func() {
		_ = w.Run(ctx, func() {
			p, err := content.Load(path)
			if err != nil {
				logger.Error("Failed to reload content, keeping previous version", "path", path, "error", err)
				return
			}
			srv.SetProfile(p)
		})
	}()
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address override, e.g. :3000")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}

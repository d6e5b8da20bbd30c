package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/seedbed/incubator/internal/config"
	"github.com/seedbed/incubator/internal/domain/document"
	"github.com/seedbed/incubator/internal/domain/guest"
	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/importer"
	"github.com/seedbed/incubator/internal/sqlite"
	"github.com/seedbed/incubator/internal/transport"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg config.Config) error {
	logger := newLogger(cfg)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	startupRepo := sqlite.NewStartupRepository(db)
	meetingRepo := sqlite.NewMeetingRepository(db)
	guestRepo := sqlite.NewGuestRepository(db)
	documentRepo := sqlite.NewDocumentRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)
	importStore := sqlite.NewImportStore(db)

	userSvc := user.NewService(userRepo, logger)
	services := transport.Services{
		Startups:  startup.NewService(startupRepo, logger),
		Meetings:  meeting.NewService(meetingRepo, logger),
		Guests:    guest.NewService(guestRepo, logger),
		Documents: document.NewService(documentRepo, logger),
		Users:     userSvc,
		Importer:  importer.New(importStore, logger),
		Stats:     statsRepo,
		Logger:    logger,
	}

	router := transport.NewRouter(services, userSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

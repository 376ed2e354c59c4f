package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostbot/internal/adapters/discord"
	"hostbot/internal/adapters/httpapi"
	"hostbot/internal/application"
	"hostbot/internal/config"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/infrastructure/database"
	"hostbot/internal/infrastructure/i18n"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration invalide: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("erreur lors des migrations: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("erreur lors de l'initialisation de la base de données: %w", err)
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("erreur lors du chargement des traductions: %w", err)
	}

	eventRepo := database.NewEventRepository(pool)
	hostingRepo := database.NewHostingRepository(pool)
	profileRepo := database.NewHostProfileRepository(pool)
	requestRepo := database.NewHostingRequestRepository(pool)

	hostingUC := application.NewHostingService(hostingRepo, requestRepo, profileRepo, eventRepo)
	requestUC := application.NewHostingRequestService(hostingRepo, requestRepo, eligibility.NewEvaluator(log.Default()))

	if cfg.HTTPAddr != "" {
		srv := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      httpapi.NewHandler(hostingUC, requestUC).Router(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Printf("✅ API HTTP à l'écoute sur %s", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("❌ Erreur du serveur HTTP: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("⚠️ Arrêt du serveur HTTP: %v", err)
			}
		}()
	}

	bot, err := discord.NewBot(cfg, hostingUC, requestUC, translator)
	if err != nil {
		return err
	}
	if err := bot.Start(ctx); err != nil {
		return fmt.Errorf("erreur lors du démarrage du bot: %w", err)
	}
	return nil
}

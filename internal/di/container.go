package di

import (
	"log/slog"
	"net/http"
	"time"

	feedService "github.com/promodesk/social-publisher/internal/modules/feed/service"
	historyRepo "github.com/promodesk/social-publisher/internal/modules/history/repository"
	historyService "github.com/promodesk/social-publisher/internal/modules/history/service"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/facebook"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/instagram"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/telegram"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/vk"
	publishService "github.com/promodesk/social-publisher/internal/modules/publish/service"
	"github.com/promodesk/social-publisher/internal/shared/config"
	httpServer "github.com/promodesk/social-publisher/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register the HTTP client shared by the platform publishers
	do.Provide(injector, func(i do.Injector) (*http.Client, error) {
		return &http.Client{Timeout: 30 * time.Second}, nil
	})

	// Register Telegram Publisher
	do.Provide(injector, func(i do.Injector) (*telegram.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*http.Client](i)
		return telegram.New(cfg.TelegramAPIURL, client, cfg.RetryPolicy()), nil
	})

	// Register VK Publisher
	do.Provide(injector, func(i do.Injector) (*vk.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*http.Client](i)
		return vk.New(cfg.VKAPIURL, client, cfg.RetryPolicy()), nil
	})

	// Register Instagram Publisher
	do.Provide(injector, func(i do.Injector) (*instagram.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*http.Client](i)
		return instagram.New(cfg.GraphAPIURL, client, cfg.RetryPolicy()), nil
	})

	// Register Facebook Publisher
	do.Provide(injector, func(i do.Injector) (*facebook.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*http.Client](i)
		return facebook.New(cfg.GraphAPIURL, client, cfg.RetryPolicy()), nil
	})

	// Register Dispatcher Service
	do.Provide(injector, func(i do.Injector) (*publishService.Service, error) {
		return publishService.New(
			do.MustInvoke[*telegram.Publisher](i),
			do.MustInvoke[*vk.Publisher](i),
			do.MustInvoke[*instagram.Publisher](i),
			do.MustInvoke[*facebook.Publisher](i),
		), nil
	})

	// Register History Repository
	do.Provide(injector, func(i do.Injector) (historyRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := historyRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize history repository").Wrap(err)
		}
		return repo, nil
	})

	// Register History Service
	do.Provide(injector, func(i do.Injector) (*historyService.Service, error) {
		repo := do.MustInvoke[historyRepo.Repository](i)
		return historyService.New(repo), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		repo := do.MustInvoke[historyRepo.Repository](i)
		return feedService.New(repo), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dispatcher := do.MustInvoke[*publishService.Service](i)
		history := do.MustInvoke[*historyService.Service](i)
		feed := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, dispatcher, history, feed)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services. Publishers and repositories
// hold no background state, so there is nothing to stop explicitly yet.
func Shutdown(injector do.Injector) error {
	return nil
}

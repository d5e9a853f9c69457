package cmd

import (
	"github.com/dowlandaiello/notedly/log"

	"github.com/dowlandaiello/notedly/oauth"
	"github.com/dowlandaiello/notedly/oauth/http"
	"github.com/dowlandaiello/notedly/oauth/services"
)

type Configuration struct {
	Google struct {
		Enabled bool   `toml:"enabled"`
		File    string `toml:"file"`
	} `toml:"google"`
	Github struct {
		Enabled bool   `toml:"enabled"`
		File    string `toml:"file"`
	} `toml:"github"`
}

// Start registers the login routes for every enabled provider.
func Start(srv http.Server, cfg Configuration, logger log.Logger, upserter oauth.UserUpserter) {
	providerService := services.NewProviderService()

	if cfg.Google.Enabled {
		service, err := services.NewGoogleService(upserter, cfg.Google.File)
		if err != nil {
			logger.Fatal("could not instantiate google service:", err)
		}
		http.RegisterGoogleHTTPRoutes(srv, service)
		providerService.Register("google")
	}

	if cfg.Github.Enabled {
		service, err := services.NewGithubService(upserter, cfg.Github.File)
		if err != nil {
			logger.Fatal("could not instantiate github service:", err)
		}
		http.RegisterGithubHTTPRoutes(srv, service)
		providerService.Register("github")
	}

	http.RegisterProviderHTTPRoutes(srv, providerService)
}

package main

import (
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	boardscmd "github.com/dowlandaiello/notedly/boards/cmd"
	oauthcmd "github.com/dowlandaiello/notedly/oauth/cmd"
	userscmd "github.com/dowlandaiello/notedly/users/cmd"
	"github.com/dowlandaiello/notedly/web"
)

type ServeConfiguration struct {
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
	Users  userscmd.Configuration  `toml:"users"`
	Boards boardscmd.Configuration `toml:"boards"`
	OAuth  oauthcmd.Configuration  `toml:"oauth"`
}

func init() {
	inheritPersistentPreRun(&ServeCommand)
	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Start the notedly server",
	Long:  "Start the notedly server",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := ioutil.ReadFile(configFile)
		if err != nil {
			logger.Fatal("could not read configuration file:", err)
		}

		var cfg ServeConfiguration
		if err := toml.Unmarshal(data, &cfg); err != nil {
			logger.Fatal("error unmarshalling configuration:", err)
		}

		srv := web.NewServer(env)

		// Users first: every other module authenticates through it.
		userService, userRepository, authenticator := userscmd.Start(srv, cfg.Users, logger)

		boardscmd.Start(srv, cfg.Boards, logger, userRepository, authenticator)

		oauthcmd.Start(srv, cfg.OAuth, logger, userService)

		logger.Printf("server started, listening on %s", cfg.Web.Addr)
		if err := srv.Run(cfg.Web.Addr); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}

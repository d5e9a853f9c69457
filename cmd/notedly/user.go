package main

import (
	"io/ioutil"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dowlandaiello/notedly/users/bolt"
	userscmd "github.com/dowlandaiello/notedly/users/cmd"
	"github.com/dowlandaiello/notedly/users/services"
)

type UserConfiguration struct {
	Users userscmd.Configuration `toml:"users"`
}

var (
	userDriver  *bolt.Driver
	userService *services.UserService
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)

	inheritPersistentPreRun(&UserCommand)
	inheritPersistentPreRun(&UserAllCommand)

	RootCmd.AddCommand(&UserCommand)
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "Retrieve a user based on its id",
	Long:  "Retrieve a user based on its id",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		data, err := ioutil.ReadFile(configFile)
		if err != nil {
			logger.Fatal("could not read configuration file:", err)
		}

		var cfg UserConfiguration
		if err := toml.Unmarshal(data, &cfg); err != nil {
			logger.Fatal("error unmarshalling configuration:", err)
		}

		userDriver = &bolt.Driver{}
		if err := userDriver.Open(cfg.Users.Bolt.Store); err != nil {
			logger.Fatal("could not open user store:", err)
		}

		userService = services.NewUserService(bolt.NewUserRepository(userDriver))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		userDriver.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cmd.Help()
			return
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("id should be a number:", err)
		}

		user, err := userService.Get(id)
		if err != nil {
			logger.Fatal("could not retrieve user:", err)
		}

		logger.Printf("%d - %s (%s)", user.ID, user.Email, user.ProviderID)
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "List all the users",
	Long:  "List all the users",
	Run: func(cmd *cobra.Command, args []string) {
		all, err := userService.List()
		if err != nil {
			logger.Fatal("could not list users:", err)
		}

		for _, user := range all {
			logger.Printf("%d - %s (%s)", user.ID, user.Email, user.ProviderID)
		}
	},
}

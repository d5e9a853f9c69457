package cmd

import (
	"github.com/dowlandaiello/notedly/log"
	"github.com/dowlandaiello/notedly/users"
	"github.com/dowlandaiello/notedly/users/bolt"
	"github.com/dowlandaiello/notedly/users/http"
	"github.com/dowlandaiello/notedly/users/services"
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
}

// Start registers the user routes and returns the pieces the other
// modules build on: the user service, the user repository, and the
// request authenticator.
func Start(srv http.Server, conf Configuration, logger log.Logger) (*services.UserService, users.UserRepository, *users.Authenticator) {
	driver := &bolt.Driver{}
	if err := driver.Open(conf.Bolt.Store); err != nil {
		logger.Fatal("could not open user store:", err)
	}

	userRepository := bolt.NewUserRepository(driver)
	userService := services.NewUserService(userRepository)

	resolver := users.NewResolver(userRepository)
	authenticator := users.NewAuthenticator(resolver)

	http.RegisterUserEndpoints(srv, userService, authenticator)

	return userService, userRepository, authenticator
}

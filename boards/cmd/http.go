package cmd

import (
	"github.com/dowlandaiello/notedly/boards/bolt"
	"github.com/dowlandaiello/notedly/boards/http"
	"github.com/dowlandaiello/notedly/boards/services"
	"github.com/dowlandaiello/notedly/log"
	"github.com/dowlandaiello/notedly/users"
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
}

// Start registers the board and note routes.
func Start(
	srv http.Server,
	conf Configuration,
	logger log.Logger,
	userRepo users.UserRepository,
	auth *users.Authenticator,
) {
	driver := &bolt.Driver{}
	if err := driver.Open(conf.Bolt.Store); err != nil {
		logger.Fatal("could not open board store:", err)
	}

	boardRepository := bolt.NewBoardRepository(driver)
	noteRepository := bolt.NewNoteRepository(driver)
	permissionRepository := bolt.NewPermissionRepository(driver)

	boardService := services.NewBoardService(boardRepository, noteRepository, permissionRepository, userRepo)
	http.RegisterBoardEndpoints(srv, boardService, auth)

	noteService := services.NewNoteService(noteRepository, boardRepository, permissionRepository)
	http.RegisterNoteEndpoints(srv, noteService, auth)
}

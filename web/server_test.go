package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowlandaiello/notedly/boards"
	boardshttp "github.com/dowlandaiello/notedly/boards/http"
	boardsinmem "github.com/dowlandaiello/notedly/boards/inmem"
	boardsservices "github.com/dowlandaiello/notedly/boards/services"
	"github.com/dowlandaiello/notedly/token"
	"github.com/dowlandaiello/notedly/users"
	usershttp "github.com/dowlandaiello/notedly/users/http"
	usersinmem "github.com/dowlandaiello/notedly/users/inmem"
	usersservices "github.com/dowlandaiello/notedly/users/services"
)

type fixture struct {
	srv   *Server
	users users.UserRepository
}

func createServer(t *testing.T) *fixture {
	userRepo := usersinmem.NewInMemUserRepository()
	userService := usersservices.NewUserService(userRepo)
	auth := users.NewAuthenticator(users.NewResolver(userRepo))

	noteRepo := boardsinmem.NewInMemNoteRepository()
	permissionRepo := boardsinmem.NewInMemPermissionRepository()
	boardRepo := boardsinmem.NewInMemBoardRepository(noteRepo, permissionRepo)
	boardService := boardsservices.NewBoardService(boardRepo, noteRepo, permissionRepo, userRepo)
	noteService := boardsservices.NewNoteService(noteRepo, boardRepo, permissionRepo)

	srv := NewServer("prod") // avoid unnecessary log
	usershttp.RegisterUserEndpoints(srv, userService, auth)
	boardshttp.RegisterBoardEndpoints(srv, boardService, auth)
	boardshttp.RegisterNoteEndpoints(srv, noteService, auth)

	return &fixture{
		srv:   srv,
		users: userRepo,
	}
}

// user inserts a user whose session resolves from the given bearer token.
func (f *fixture) user(t *testing.T, email, bearer string) users.User {
	user := users.User{
		ProviderID:     "test:" + email,
		Email:          email,
		CredentialHash: token.Hash(bearer),
	}
	require.NoError(t, f.users.Upsert(&user))
	return user
}

func (f *fixture) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp := httptest.NewRecorder()
	f.srv.router.ServeHTTP(resp, req)
	return resp
}

func TestServer_Ping(t *testing.T) {
	f := createServer(t)

	resp := f.do(t, "GET", "/notedly/ping", "", nil)
	assert.Equal(t, 200, resp.Code)
	assert.JSONEq(t, `{"data": "ok"}`, resp.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createServer(t)

	resp := f.do(t, "GET", "/notedly/nope", "", nil)
	assert.Equal(t, 404, resp.Code)
	assert.JSONEq(t, `{"message": "Page not found"}`, resp.Body.String())
}

func TestServer_Me(t *testing.T) {
	f := createServer(t)
	f.user(t, "alice@noted.ly", "alice-token")

	var tts = map[string]struct {
		bearer string
		code   int
	}{
		"no credential":   {bearer: "", code: 401},
		"unknown token":   {bearer: "not-a-session", code: 401},
		"resolved caller": {bearer: "alice-token", code: 200},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			resp := f.do(t, "GET", "/notedly/me", tt.bearer, nil)
			require.Equal(t, tt.code, resp.Code, resp.Body.String())

			if tt.code != 200 {
				return
			}

			var me users.User
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &me))
			assert.Equal(t, "alice@noted.ly", me.Email)
			assert.NotContains(t, resp.Body.String(), token.Hash("alice-token"),
				"the credential hash never leaves the service")
		})
	}
}

func TestServer_BoardAccess(t *testing.T) {
	f := createServer(t)
	f.user(t, "alice@noted.ly", "alice-token")
	bob := f.user(t, "bob@noted.ly", "bob-token")
	f.user(t, "carol@noted.ly", "carol-token")

	// Alice creates a board.
	resp := f.do(t, "POST", "/notedly/boards", "alice-token", map[string]interface{}{
		"title": "Trip Plans",
	})
	require.Equal(t, 200, resp.Code, resp.Body.String())

	var board boards.Board
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &board))
	require.NotEqual(t, 0, board.ID)

	boardPath := "/notedly/boards/" + strconv.Itoa(board.ID)

	// And invites Bob, read-only.
	resp = f.do(t, "POST", boardPath+"/permissions", "alice-token", map[string]interface{}{
		"userID":  bob.ID,
		"canRead": true,
	})
	require.Equal(t, 200, resp.Code, resp.Body.String())

	// Carol was never invited: the board does not exist for her.
	resp = f.do(t, "GET", boardPath, "carol-token", nil)
	assert.Equal(t, 404, resp.Code, resp.Body.String())

	// Bob views the board but cannot rename it or add notes.
	resp = f.do(t, "GET", boardPath, "bob-token", nil)
	assert.Equal(t, 200, resp.Code, resp.Body.String())

	resp = f.do(t, "PATCH", boardPath, "bob-token", map[string]interface{}{
		"title": "Bob's Trip",
	})
	assert.Equal(t, 403, resp.Code, resp.Body.String())

	resp = f.do(t, "POST", "/notedly/notes", "bob-token", map[string]interface{}{
		"boardID": board.ID,
		"title":   "Packing list",
	})
	assert.Equal(t, 403, resp.Code, resp.Body.String())

	// The owner writes freely.
	resp = f.do(t, "POST", "/notedly/notes", "alice-token", map[string]interface{}{
		"boardID": board.ID,
		"title":   "Packing list",
		"body":    "socks",
	})
	require.Equal(t, 200, resp.Code, resp.Body.String())

	// Bob checks his own grant on the board.
	grantPath := "/notedly/users/" + strconv.Itoa(bob.ID) + "/grants/" + strconv.Itoa(board.ID)
	resp = f.do(t, "GET", grantPath, "bob-token", nil)
	require.Equal(t, 200, resp.Code, resp.Body.String())

	var grant boards.Permission
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &grant))
	assert.True(t, grant.CanRead)
	assert.False(t, grant.CanWrite)

	// But nobody else can.
	resp = f.do(t, "GET", grantPath, "carol-token", nil)
	assert.Equal(t, 403, resp.Code, resp.Body.String())
}

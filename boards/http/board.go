package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/boards/endpoints"
	"github.com/dowlandaiello/notedly/boards/services"
	"github.com/dowlandaiello/notedly/users"
)

func RegisterBoardEndpoints(srv Server, service *services.BoardService, auth *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	// Create endpoint
	ep := endpoints.NewBoardEndpoint(service)

	listHandler := kithttp.NewServer(
		auth.Authenticate(ep.List),
		decodeNoBodyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getHandler := kithttp.NewServer(
		auth.Authenticate(ep.Get),
		decodeBoardIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createHandler := kithttp.NewServer(
		auth.Authenticate(ep.Create),
		decodeBoardCreateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		auth.Authenticate(ep.Update),
		decodeBoardUpdateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		auth.Authenticate(ep.Delete),
		decodeBoardIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	permissionsHandler := kithttp.NewServer(
		auth.Authenticate(ep.Permissions),
		decodeBoardIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	notesHandler := kithttp.NewServer(
		auth.Authenticate(ep.Notes),
		decodeBoardIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	usersHandler := kithttp.NewServer(
		auth.Authenticate(ep.Users),
		decodeBoardIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	inviteHandler := kithttp.NewServer(
		auth.Authenticate(ep.Invite),
		decodeInviteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	revokeHandler := kithttp.NewServer(
		auth.Authenticate(ep.Revoke),
		decodeRevokeRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	boardsOfHandler := kithttp.NewServer(
		auth.Authenticate(ep.BoardsOf),
		decodeUserIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	grantsOfHandler := kithttp.NewServer(
		auth.Authenticate(ep.GrantsOf),
		decodeUserIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	grantOfHandler := kithttp.NewServer(
		auth.Authenticate(ep.GrantOf),
		decodeGrantOfRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/notedly/boards", "GET", listHandler)
	srv.RegisterHandler("/notedly/boards", "POST", createHandler)
	srv.RegisterHandler("/notedly/boards/:id", "GET", getHandler)
	srv.RegisterHandler("/notedly/boards/:id", "PATCH", updateHandler)
	srv.RegisterHandler("/notedly/boards/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/notedly/boards/:id/permissions", "GET", permissionsHandler)
	srv.RegisterHandler("/notedly/boards/:id/permissions", "POST", inviteHandler)
	srv.RegisterHandler("/notedly/boards/:id/permissions/:userID", "DELETE", revokeHandler)
	srv.RegisterHandler("/notedly/boards/:id/notes", "GET", notesHandler)
	srv.RegisterHandler("/notedly/boards/:id/users", "GET", usersHandler)
	srv.RegisterHandler("/notedly/users/:id/boards", "GET", boardsOfHandler)
	srv.RegisterHandler("/notedly/users/:id/grants", "GET", grantsOfHandler)
	srv.RegisterHandler("/notedly/users/:id/grants/:boardID", "GET", grantOfHandler)
}

func decodeNoBodyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return nil, nil
}

func decodeBoardIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return pathID(ctx, "id")
}

func decodeUserIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return pathID(ctx, "id")
}

func decodeBoardCreateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var board boards.Board
	err := json.NewDecoder(r.Body).Decode(&board)
	if err != nil {
		return nil, err
	}

	return board, nil
}

func decodeBoardUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	boardID, err := pathID(ctx, "id")
	if err != nil {
		return nil, err
	}

	var update services.BoardUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		return nil, err
	}

	return endpoints.BoardUpdateRequest{
		BoardID: boardID,
		Update:  update,
	}, nil
}

func decodeInviteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	boardID, err := pathID(ctx, "id")
	if err != nil {
		return nil, err
	}

	var grant boards.Permission
	if err := json.NewDecoder(r.Body).Decode(&grant); err != nil {
		return nil, err
	}

	return endpoints.InviteRequest{
		BoardID: boardID,
		Grant:   grant,
	}, nil
}

func decodeGrantOfRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body

	userID, err := pathID(ctx, "id")
	if err != nil {
		return nil, err
	}

	boardID, err := pathID(ctx, "boardID")
	if err != nil {
		return nil, err
	}

	return endpoints.GrantOfRequest{
		UserID:  userID,
		BoardID: boardID,
	}, nil
}

func decodeRevokeRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body

	boardID, err := pathID(ctx, "id")
	if err != nil {
		return nil, err
	}

	userID, err := pathID(ctx, "userID")
	if err != nil {
		return nil, err
	}

	return endpoints.RevokeRequest{
		BoardID: boardID,
		UserID:  userID,
	}, nil
}

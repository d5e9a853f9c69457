package http

import (
	"context"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dowlandaiello/notedly/users"
	"github.com/dowlandaiello/notedly/users/endpoints"
	"github.com/dowlandaiello/notedly/users/services"
)

func RegisterUserEndpoints(srv Server, service *services.UserService, auth *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	// Create endpoint
	ep := endpoints.NewUserEndpoint(service)

	// Me handler
	meHandler := kithttp.NewServer(
		auth.Authenticate(ep.Me),
		decodeMeRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	userHandler := kithttp.NewServer(
		auth.Authenticate(ep.User),
		decodeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	usersHandler := kithttp.NewServer(
		auth.Authenticate(ep.Users),
		decodeUsersRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/notedly/me", "GET", meHandler)
	srv.RegisterHandler("/notedly/users", "GET", usersHandler)
	srv.RegisterHandler("/notedly/users/:id", "GET", userHandler)
}

func decodeMeRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return nil, nil
}

func decodeUsersRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return nil, nil
}

func decodeUserRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body

	params := ctx.Value("params").(map[string]string)
	userID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, err
	}

	return userID, nil
}

package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dowlandaiello/notedly/oauth/services"
)

func RegisterGithubHTTPRoutes(srv Server, service *services.GithubService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	githubLoginURLHandler := kithttp.NewServer(
		makeGithubLoginURLEndpoint(service),
		decodeLoginURLRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	githubLoginHandler := kithttp.NewServer(
		makeGithubLoginEndpoint(service),
		decodeLoginRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/notedly/oauth/github", "GET", githubLoginURLHandler)
	srv.RegisterHandler("/notedly/oauth/github", "POST", githubLoginHandler)
}

func makeGithubLoginURLEndpoint(s *services.GithubService) endpoint.Endpoint {
	return func(_ context.Context, _ interface{}) (interface{}, error) {
		return map[string]string{"url": s.LoginURL()}, nil
	}
}

func makeGithubLoginEndpoint(s *services.GithubService) endpoint.Endpoint {
	return func(_ context.Context, r interface{}) (interface{}, error) {
		req, ok := r.(LoginRequest)
		if !ok {
			return nil, errInvalidRequest
		}

		token, err := s.Login(req.State, req.Code)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"access_token": token}, nil
	}
}

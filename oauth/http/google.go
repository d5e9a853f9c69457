package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dowlandaiello/notedly/oauth/services"
)

func RegisterGoogleHTTPRoutes(srv Server, service *services.GoogleService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	googleLoginURLHandler := kithttp.NewServer(
		makeGoogleLoginURLEndpoint(service),
		decodeLoginURLRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	googleLoginHandler := kithttp.NewServer(
		makeGoogleLoginEndpoint(service),
		decodeLoginRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/notedly/oauth/google", "GET", googleLoginURLHandler)
	srv.RegisterHandler("/notedly/oauth/google", "POST", googleLoginHandler)
}

func makeGoogleLoginURLEndpoint(s *services.GoogleService) endpoint.Endpoint {
	return func(_ context.Context, _ interface{}) (interface{}, error) {
		return map[string]string{"url": s.LoginURL()}, nil
	}
}

// LoginRequest carries the state and code a provider sent back to the
// client's callback page.
type LoginRequest struct {
	State string `json:"state"`
	Code  string `json:"code"`
}

func makeGoogleLoginEndpoint(s *services.GoogleService) endpoint.Endpoint {
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

func decodeLoginURLRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func decodeLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return req, nil
}

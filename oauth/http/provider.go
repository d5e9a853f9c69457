package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dowlandaiello/notedly/oauth/services"
)

func RegisterProviderHTTPRoutes(srv Server, service *services.ProviderService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	providerHandler := kithttp.NewServer(
		makeProviderEndpoint(service),
		decodeProviderRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/notedly/oauth/providers", "GET", providerHandler)
}

func makeProviderEndpoint(s *services.ProviderService) endpoint.Endpoint {
	return func(_ context.Context, _ interface{}) (interface{}, error) {
		return map[string]interface{}{"providers": s.Providers()}, nil
	}
}

func decodeProviderRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

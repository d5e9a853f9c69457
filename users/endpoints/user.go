package endpoints

import (
	"context"

	"github.com/dowlandaiello/notedly/users"
	"github.com/dowlandaiello/notedly/users/services"
)

type UserEndpoint struct {
	service *services.UserService
}

func NewUserEndpoint(s *services.UserService) UserEndpoint {
	return UserEndpoint{
		service: s,
	}
}

func (ep UserEndpoint) Me(ctx context.Context, _ interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Get(caller.ID)
}

func (ep UserEndpoint) User(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	userID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.GetSelf(caller, userID)
}

func (ep UserEndpoint) Users(ctx context.Context, _ interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	return ep.service.ListIDs()
}

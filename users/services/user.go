package services

import (
	"fmt"

	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/users"
)

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("No user for id %d", id), errors.NotFound())
}

type UserService struct {
	repository users.UserRepository
}

func NewUserService(repo users.UserRepository) *UserService {
	return &UserService{
		repository: repo,
	}
}

func (s *UserService) Get(id int) (users.User, error) {
	user, err := s.repository.Get(id)
	if err != nil {
		return users.User{}, err
	}

	if user.ID == 0 {
		return users.User{}, errUserNotFound(id)
	}
	return user, nil
}

// GetSelf returns the user with the given id, but only to that user.
func (s *UserService) GetSelf(caller users.User, id int) (users.User, error) {
	if caller.ID != id {
		return users.User{}, errors.New("you can only view your own account", errors.Forbidden())
	}

	return s.Get(id)
}

// Upsert creates or updates a user record keyed on its provider identity.
// The credential hash always comes from the latest login, so upserting
// rotates the session token that resolves to this user.
func (s *UserService) Upsert(u users.User) (users.User, error) {
	if u.ProviderID == "" {
		return users.User{}, errors.New("missing provider identity", errors.BadRequest())
	}

	user, err := s.repository.GetByProviderID(u.ProviderID)
	if err != nil {
		return users.User{}, err
	}

	user.ProviderID = u.ProviderID
	user.Email = u.Email
	user.CredentialHash = u.CredentialHash

	err = s.repository.Upsert(&user)
	if err != nil {
		return users.User{}, err
	}

	return user, nil
}

func (s *UserService) List() ([]users.User, error) {
	return s.repository.List()
}

// ListIDs returns the id of every user.
func (s *UserService) ListIDs() ([]int, error) {
	all, err := s.repository.List()
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(all))
	for i, user := range all {
		ids[i] = user.ID
	}
	return ids, nil
}

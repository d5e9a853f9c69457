package inmem

import (
	"sync"

	"github.com/dowlandaiello/notedly/users"
)

type InMemUserRepository struct {
	mu    sync.Locker
	users []users.User
	maxID int
}

func NewInMemUserRepository() *InMemUserRepository {
	return &InMemUserRepository{
		mu:    &sync.Mutex{},
		users: make([]users.User, 0),
		maxID: 0,
	}
}

func (r *InMemUserRepository) Get(userID int) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return users.User{}, nil
}

func (r *InMemUserRepository) GetByProviderID(providerID string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ProviderID == providerID {
			return u, nil
		}
	}
	return users.User{}, nil
}

func (r *InMemUserRepository) GetByCredentialHash(hash string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hash == "" {
		return users.User{}, nil
	}

	for _, u := range r.users {
		if u.CredentialHash == hash {
			return u, nil
		}
	}
	return users.User{}, nil
}

func (r *InMemUserRepository) Upsert(user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		r.maxID++
		user.ID = r.maxID
	} else if user.ID > r.maxID {
		r.maxID = user.ID
	}

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}

	r.users = append(r.users, *user)
	return nil
}

func (r *InMemUserRepository) List() ([]users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]users.User, len(r.users))
	copy(all, r.users)
	return all, nil
}

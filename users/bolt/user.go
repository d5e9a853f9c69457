package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/dowlandaiello/notedly/users"
)

var userBucket = []byte("users")

// userRecord is the storage layout of a user. The credential hash is
// hidden from the API representation but has to be persisted here.
type userRecord struct {
	ID             int    `json:"id"`
	ProviderID     string `json:"providerID"`
	Email          string `json:"email"`
	CredentialHash string `json:"credentialHash"`
}

func (r userRecord) user() users.User {
	return users.User{
		ID:             r.ID,
		ProviderID:     r.ProviderID,
		Email:          r.Email,
		CredentialHash: r.CredentialHash,
	}
}

func record(u users.User) userRecord {
	return userRecord{
		ID:             u.ID,
		ProviderID:     u.ProviderID,
		Email:          u.Email,
		CredentialHash: u.CredentialHash,
	}
}

type UserRepository struct {
	driver *Driver
}

func NewUserRepository(driver *Driver) *UserRepository {
	return &UserRepository{
		driver: driver,
	}
}

func (r *UserRepository) Get(id int) (users.User, error) {
	var user users.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var rec userRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		user = rec.user()
		return nil
	})
	if err != nil {
		return users.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByProviderID(providerID string) (users.User, error) {
	return r.scan(func(rec userRecord) bool {
		return rec.ProviderID == providerID
	})
}

func (r *UserRepository) GetByCredentialHash(hash string) (users.User, error) {
	if hash == "" {
		return users.User{}, nil
	}

	return r.scan(func(rec userRecord) bool {
		return rec.CredentialHash == hash
	})
}

func (r *UserRepository) Upsert(user *users.User) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID == 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			user.ID = int(id)
		}

		data, err := json.Marshal(record(*user))
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (r *UserRepository) List() ([]users.User, error) {
	var all []users.User

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var rec userRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				return err
			}
			all = append(all, rec.user())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

func (r *UserRepository) scan(match func(userRecord) bool) (users.User, error) {
	var user users.User

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var rec userRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				return err
			}

			if match(rec) {
				user = rec.user()
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return users.User{}, err
	}

	return user, nil
}

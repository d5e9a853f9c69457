package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/dowlandaiello/notedly/boards"
)

type PermissionRepository struct {
	driver *Driver
}

func NewPermissionRepository(driver *Driver) *PermissionRepository {
	return &PermissionRepository{
		driver: driver,
	}
}

func (r *PermissionRepository) Get(userID, boardID int) (boards.Permission, error) {
	var grant boards.Permission
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(permissionBucket)

		data := bucket.Get(grantKey(boardID, userID))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &grant)
	})
	if err != nil {
		return boards.Permission{}, err
	}

	return grant, nil
}

func (r *PermissionRepository) ListForBoard(boardID int) ([]boards.Permission, error) {
	grants := make([]boards.Permission, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(permissionBucket).Cursor()
		prefix := boardPrefix(boardID)

		for k, data := c.Seek(prefix); k != nil && hasPrefix(k, prefix); k, data = c.Next() {
			var grant boards.Permission
			if err := json.Unmarshal(data, &grant); err != nil {
				return err
			}
			grants = append(grants, grant)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return grants, nil
}

func (r *PermissionRepository) ListForUser(userID int) ([]boards.Permission, error) {
	grants := make([]boards.Permission, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(permissionBucket).Cursor()

		for k, data := c.First(); k != nil; k, data = c.Next() {
			var grant boards.Permission
			if err := json.Unmarshal(data, &grant); err != nil {
				return err
			}

			if grant.UserID == userID {
				grants = append(grants, grant)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return grants, nil
}

func (r *PermissionRepository) Upsert(grant *boards.Permission) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		return putGrant(tx, grant)
	})
}

func (r *PermissionRepository) Delete(userID, boardID int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(permissionBucket).Delete(grantKey(boardID, userID))
	})
}

// putGrant writes a grant inside an open transaction so board creation
// can persist the owner's grant atomically.
func putGrant(tx *bolt.Tx, grant *boards.Permission) error {
	data, err := json.Marshal(grant)
	if err != nil {
		return err
	}

	return tx.Bucket(permissionBucket).Put(grantKey(grant.BoardID, grant.UserID), data)
}

package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/dowlandaiello/notedly/boards"
)

type NoteRepository struct {
	driver *Driver
}

func NewNoteRepository(driver *Driver) *NoteRepository {
	return &NoteRepository{
		driver: driver,
	}
}

func (r *NoteRepository) Get(id int) (boards.Note, error) {
	var note boards.Note
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &note)
	})
	if err != nil {
		return boards.Note{}, err
	}

	return note, nil
}

func (r *NoteRepository) ListForBoard(boardID int) ([]boards.Note, error) {
	return r.list(func(note boards.Note) bool {
		return note.BoardID == boardID
	})
}

func (r *NoteRepository) ListForAuthor(authorID int) ([]boards.Note, error) {
	return r.list(func(note boards.Note) bool {
		return note.AuthorID == authorID
	})
}

func (r *NoteRepository) Upsert(note *boards.Note) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		if note.ID == 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			note.ID = int(id)
		}

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		return bucket.Put(itob(note.ID), data)
	})
}

func (r *NoteRepository) Delete(id int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(noteBucket).Delete(itob(id))
	})
}

func (r *NoteRepository) list(match func(boards.Note) bool) ([]boards.Note, error) {
	notes := make([]boards.Note, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(noteBucket).Cursor()

		for k, data := c.First(); k != nil; k, data = c.Next() {
			var note boards.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}

			if match(note) {
				notes = append(notes, note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Package db is the link table of the reference server. It keeps rows in
// memory, in insertion order, with sequential ids and unique names.
package db

import (
	"context"
	"errors"
	"sync"

	"link-admin/pkg/models"
)

var (
	// ErrRecordNotFound is returned when no row matches
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when a name is already taken
	ErrDuplicateName = errors.New(`duplicate key value violates unique constraint "links_name_key"`)
)

// LinkUpdate carries the columns of a partial update
type LinkUpdate struct {
	Name    *string
	Link    *string
	Enabled bool
}

type DB struct {
	mu     sync.RWMutex
	nextID models.LinkID
	order  []models.LinkID
	rows   map[models.LinkID]*models.Link
}

// New creates an empty table
func New() *DB {
	return &DB{
		rows: make(map[models.LinkID]*models.Link),
	}
}

// GetLinks retrieves all links in insertion order
func (db *DB) GetLinks(ctx context.Context) ([]models.Link, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	links := make([]models.Link, 0, len(db.order))
	for _, id := range db.order {
		links = append(links, *db.rows[id])
	}
	return links, nil
}

// CreateLink inserts a new, enabled link
func (db *DB) CreateLink(ctx context.Context, name, link string) (*models.Link, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.nameTaken(name, 0) {
		return nil, ErrDuplicateName
	}

	db.nextID++
	row := &models.Link{ID: db.nextID, Name: name, Link: link, Enabled: true}
	db.rows[row.ID] = row
	db.order = append(db.order, row.ID)

	created := *row
	return &created, nil
}

// GetLinkByName retrieves a link by its name
func (db *DB) GetLinkByName(ctx context.Context, name string) (*models.Link, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, id := range db.order {
		if row := db.rows[id]; row.Name == name {
			link := *row
			return &link, nil
		}
	}
	return nil, ErrRecordNotFound
}

// UpdateLink applies a partial update
func (db *DB) UpdateLink(ctx context.Context, id models.LinkID, update LinkUpdate) (*models.Link, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	row, ok := db.rows[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	if update.Name != nil && db.nameTaken(*update.Name, id) {
		return nil, ErrDuplicateName
	}

	models.LinkPatch{Name: update.Name, Link: update.Link, Enabled: update.Enabled}.Apply(row)
	updated := *row
	return &updated, nil
}

// DeleteLink deletes a link
func (db *DB) DeleteLink(ctx context.Context, id models.LinkID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.rows[id]; !ok {
		return ErrRecordNotFound
	}
	delete(db.rows, id)
	for i, other := range db.order {
		if other == id {
			db.order = append(db.order[:i], db.order[i+1:]...)
			break
		}
	}
	return nil
}

// IncrementTimesUsed bumps the usage counter of a link
func (db *DB) IncrementTimesUsed(ctx context.Context, id models.LinkID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	row, ok := db.rows[id]
	if !ok {
		return ErrRecordNotFound
	}
	row.TimesUsed++
	return nil
}

func (db *DB) nameTaken(name string, except models.LinkID) bool {
	for id, row := range db.rows {
		if id != except && row.Name == name {
			return true
		}
	}
	return false
}

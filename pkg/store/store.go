// Package store holds the client's authoritative copy of the link table.
//
// Records enter the store only from confirmed server responses, so the
// store never invents an id or a usage count. Order is the server's list
// order, with newly created links appended.
package store

import (
	"errors"
	"fmt"

	"link-admin/pkg/models"
)

var (
	// ErrLinkNotFound is returned when an operation targets an id the store
	// does not hold.
	ErrLinkNotFound = errors.New("link not found in store")
	// ErrDuplicateLink is returned when a record would share an id with one
	// already held.
	ErrDuplicateLink = errors.New("link already in store")
)

// Store maps link identity to link record. It is not safe for concurrent
// use; the sync controller mutates it from a single goroutine.
type Store struct {
	order []models.LinkID
	byID  map[models.LinkID]models.Link
}

// New creates an empty store
func New() *Store {
	return &Store{
		byID: make(map[models.LinkID]models.Link),
	}
}

// ReplaceAll discards the current contents and loads links in the given
// order. A list with a repeated id is rejected and the store is left as it
// was.
func (s *Store) ReplaceAll(links []models.Link) error {
	order := make([]models.LinkID, 0, len(links))
	byID := make(map[models.LinkID]models.Link, len(links))
	for _, l := range links {
		if _, ok := byID[l.ID]; ok {
			return fmt.Errorf("%w: id %s appears twice in list", ErrDuplicateLink, l.ID)
		}
		byID[l.ID] = l
		order = append(order, l.ID)
	}
	s.order = order
	s.byID = byID
	return nil
}

// Insert appends a newly created link
func (s *Store) Insert(link models.Link) error {
	if _, ok := s.byID[link.ID]; ok {
		return fmt.Errorf("%w: id %s", ErrDuplicateLink, link.ID)
	}
	s.byID[link.ID] = link
	s.order = append(s.order, link.ID)
	return nil
}

// Patch applies the fields carried by patch to the link with the given id
// and returns the updated record.
func (s *Store) Patch(id models.LinkID, patch models.LinkPatch) (models.Link, error) {
	link, ok := s.byID[id]
	if !ok {
		return models.Link{}, fmt.Errorf("%w: id %s", ErrLinkNotFound, id)
	}
	patch.Apply(&link)
	s.byID[id] = link
	return link, nil
}

// Remove deletes the link with the given id
func (s *Store) Remove(id models.LinkID) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: id %s", ErrLinkNotFound, id)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the link with the given id
func (s *Store) Get(id models.LinkID) (models.Link, bool) {
	link, ok := s.byID[id]
	return link, ok
}

// All returns a copy of every link in order
func (s *Store) All() []models.Link {
	links := make([]models.Link, 0, len(s.order))
	for _, id := range s.order {
		links = append(links, s.byID[id])
	}
	return links
}

// IDs returns the ids in order
func (s *Store) IDs() []models.LinkID {
	ids := make([]models.LinkID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Len returns the number of links held
func (s *Store) Len() int {
	return len(s.order)
}

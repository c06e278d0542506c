package services

import (
	"context"
	"errors"

	"link-admin/pkg/db"
	"link-admin/pkg/models"
	"link-admin/pkg/utils"
)

var (
	// ErrInvalidInput wraps validation failures
	ErrInvalidInput = errors.New("invalid input")
	// ErrLinkDisabled is returned when resolving a disabled link
	ErrLinkDisabled = errors.New("link disabled")
)

// validationError keeps the validation message as the error text while
// matching ErrInvalidInput.
type validationError struct {
	err error
}

func (e validationError) Error() string        { return e.err.Error() }
func (e validationError) Is(target error) bool { return target == ErrInvalidInput }

// LinkUpdate is a partial update as received from a client
type LinkUpdate struct {
	Name    *string
	Link    *string
	Enabled bool
}

// LinkService handles business logic for link operations
type LinkService struct {
	db *db.DB
}

// NewLinkService creates a new link service
func NewLinkService(database *db.DB) *LinkService {
	return &LinkService{db: database}
}

// ListLinks retrieves all links
func (s *LinkService) ListLinks(ctx context.Context) ([]models.Link, error) {
	return s.db.GetLinks(ctx)
}

// CreateLink validates and creates a new link
func (s *LinkService) CreateLink(ctx context.Context, linkCreate models.LinkCreate) (*models.Link, error) {
	name, err := utils.NormalizeName(linkCreate.Name)
	if err != nil {
		return nil, validationError{err}
	}
	link, err := utils.ValidateURL(linkCreate.Link)
	if err != nil {
		return nil, validationError{err}
	}

	return s.db.CreateLink(ctx, name, link)
}

// UpdateLink validates and applies a partial update. Fields left nil keep
// their value.
func (s *LinkService) UpdateLink(ctx context.Context, id models.LinkID, update LinkUpdate) (*models.Link, error) {
	dbUpdate := db.LinkUpdate{Enabled: update.Enabled}

	if update.Name != nil {
		name, err := utils.NormalizeName(*update.Name)
		if err != nil {
			return nil, validationError{err}
		}
		dbUpdate.Name = &name
	}
	if update.Link != nil {
		link, err := utils.ValidateURL(*update.Link)
		if err != nil {
			return nil, validationError{err}
		}
		dbUpdate.Link = &link
	}

	return s.db.UpdateLink(ctx, id, dbUpdate)
}

// DeleteLink deletes a link
func (s *LinkService) DeleteLink(ctx context.Context, id models.LinkID) error {
	return s.db.DeleteLink(ctx, id)
}

// Resolve returns the target of an enabled link and counts the use
func (s *LinkService) Resolve(ctx context.Context, name string) (string, error) {
	link, err := s.db.GetLinkByName(ctx, name)
	if err != nil {
		return "", err
	}
	if !link.Enabled {
		return "", ErrLinkDisabled
	}
	if err := s.db.IncrementTimesUsed(ctx, link.ID); err != nil {
		return "", err
	}
	return link.Link, nil
}

package linksync

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"link-admin/pkg/cli/client"
	"link-admin/pkg/models"
)

// fakeAPI is an in-memory stand-in for the link server.
type fakeAPI struct {
	mu     sync.Mutex
	links  []models.Link
	nextID models.LinkID

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	// gates hold an update back until the channel for its name is closed.
	gates map[string]chan struct{}

	creates []models.LinkCreate
	updates []models.LinkPatch
}

func newFakeAPI(links ...models.Link) *fakeAPI {
	f := &fakeAPI{nextID: 1, gates: make(map[string]chan struct{})}
	for _, l := range links {
		f.links = append(f.links, l)
		if l.ID >= f.nextID {
			f.nextID = l.ID + 1
		}
	}
	return f
}

func (f *fakeAPI) ListLinks(ctx context.Context) ([]models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Link, len(f.links))
	copy(out, f.links)
	return out, nil
}

func (f *fakeAPI) CreateLink(ctx context.Context, req models.LinkCreate) (*models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, l := range f.links {
		if l.Name == req.Name {
			return nil, &client.ApplicationError{Op: client.OpCreate, Status: http.StatusConflict, Message: "duplicate key value violates unique constraint \"links_name_key\""}
		}
	}
	created := models.Link{ID: f.nextID, Name: req.Name, Link: req.Link, Enabled: true}
	f.nextID++
	f.links = append(f.links, created)
	return &created, nil
}

func (f *fakeAPI) UpdateLink(ctx context.Context, id models.LinkID, patch models.LinkPatch) error {
	if patch.Name != nil {
		f.mu.Lock()
		gate := f.gates[*patch.Name]
		f.mu.Unlock()
		if gate != nil {
			<-gate
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, patch)
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.links {
		if f.links[i].ID == id {
			patch.Apply(&f.links[i])
			return nil
		}
	}
	return &client.ApplicationError{Op: client.OpUpdate, Status: http.StatusNotFound, Message: "record not found"}
}

func (f *fakeAPI) DeleteLink(ctx context.Context, id models.LinkID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.links {
		if f.links[i].ID == id {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return nil
		}
	}
	return &client.ApplicationError{Op: client.OpDelete, Status: http.StatusNotFound, Message: "not found"}
}

func (f *fakeAPI) gate(name string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[name] = ch
	return ch
}

var errConnRefused = &client.TransportError{
	Op:    client.OpList,
	Cause: errors.New("dial tcp 127.0.0.1:3030: connect: connection refused"),
}

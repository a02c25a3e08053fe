package service

import (
	"context"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/gateway"
)

// fakeGateway lets each test script exactly the remote behavior it
// needs; unset methods succeed with zero values.
type fakeGateway struct {
	loginFn      func(email, password string) (string, error)
	registerFn   func(email, password string) (*domain.User, error)
	resendFn     func(email string) error
	verifyFn     func(token string) (string, error)
	meFn         func() (*domain.User, error)
	statsFn      func() (*domain.Stats, error)
	pingFn       func() error
	listNotesFn  func() ([]domain.Note, error)
	createNoteFn func(input gateway.NoteInput) (*domain.Note, error)
	updateNoteFn func(id int64, input gateway.NoteInput) (*domain.Note, error)
	deleteNoteFn func(id int64) error
	listTagsFn   func() ([]domain.Tag, error)
	createTagFn  func(name string) (*domain.Tag, error)
	updateTagFn  func(id int64, name string) (*domain.Tag, error)
	deleteTagFn  func(id int64) error

	pingCalls      int
	listNotesCalls int
}

func (f *fakeGateway) Login(_ context.Context, email, password string) (string, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return "fake-token", nil
}

func (f *fakeGateway) Register(_ context.Context, email, password string) (*domain.User, error) {
	if f.registerFn != nil {
		return f.registerFn(email, password)
	}
	return &domain.User{ID: 1, Email: email}, nil
}

func (f *fakeGateway) ResendVerification(_ context.Context, email string) error {
	if f.resendFn != nil {
		return f.resendFn(email)
	}
	return nil
}

func (f *fakeGateway) Verify(_ context.Context, token string) (string, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}
	return "verified", nil
}

func (f *fakeGateway) Me(context.Context) (*domain.User, error) {
	if f.meFn != nil {
		return f.meFn()
	}
	return &domain.User{ID: 1, Email: "user@example.com", IsVerified: true}, nil
}

func (f *fakeGateway) Stats(context.Context) (*domain.Stats, error) {
	if f.statsFn != nil {
		return f.statsFn()
	}
	return &domain.Stats{}, nil
}

func (f *fakeGateway) Ping(context.Context) error {
	f.pingCalls++
	if f.pingFn != nil {
		return f.pingFn()
	}
	return nil
}

func (f *fakeGateway) ListNotes(context.Context) ([]domain.Note, error) {
	f.listNotesCalls++
	if f.listNotesFn != nil {
		return f.listNotesFn()
	}
	return nil, nil
}

func (f *fakeGateway) CreateNote(_ context.Context, input gateway.NoteInput) (*domain.Note, error) {
	if f.createNoteFn != nil {
		return f.createNoteFn(input)
	}
	return &domain.Note{ID: 1, Title: input.Title, Content: input.Content}, nil
}

func (f *fakeGateway) UpdateNote(_ context.Context, id int64, input gateway.NoteInput) (*domain.Note, error) {
	if f.updateNoteFn != nil {
		return f.updateNoteFn(id, input)
	}
	return &domain.Note{ID: id, Title: input.Title, Content: input.Content}, nil
}

func (f *fakeGateway) DeleteNote(_ context.Context, id int64) error {
	if f.deleteNoteFn != nil {
		return f.deleteNoteFn(id)
	}
	return nil
}

func (f *fakeGateway) ListTags(context.Context) ([]domain.Tag, error) {
	if f.listTagsFn != nil {
		return f.listTagsFn()
	}
	return nil, nil
}

func (f *fakeGateway) CreateTag(_ context.Context, name string) (*domain.Tag, error) {
	if f.createTagFn != nil {
		return f.createTagFn(name)
	}
	return &domain.Tag{ID: 1, Name: name}, nil
}

func (f *fakeGateway) UpdateTag(_ context.Context, id int64, name string) (*domain.Tag, error) {
	if f.updateTagFn != nil {
		return f.updateTagFn(id, name)
	}
	return &domain.Tag{ID: id, Name: name}, nil
}

func (f *fakeGateway) DeleteTag(_ context.Context, id int64) error {
	if f.deleteTagFn != nil {
		return f.deleteTagFn(id)
	}
	return nil
}

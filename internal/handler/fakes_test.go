package handler

import (
	"context"

	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// The stub repositories embed the interface so each test only fills in the
// methods its route actually touches.

type stubContactsRepo struct {
	repository.ContactsRepository
	contacts map[int64]*entity.Contact
	created  *repository.ContactInsert
	deleted  []int64
}

func newStubContactsRepo(contacts ...*entity.Contact) *stubContactsRepo {
	repo := &stubContactsRepo{contacts: map[int64]*entity.Contact{}}
	for _, contact := range contacts {
		repo.contacts[contact.ID] = contact
	}
	return repo
}

func (s *stubContactsRepo) List(ctx context.Context) ([]entity.Contact, error) {
	out := make([]entity.Contact, 0, len(s.contacts))
	for _, contact := range s.contacts {
		out = append(out, *contact)
	}
	return out, nil
}

func (s *stubContactsRepo) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	contact, ok := s.contacts[id]
	if !ok {
		return nil, repository.ErrContactNotFound
	}
	return contact, nil
}

func (s *stubContactsRepo) Create(ctx context.Context, input repository.ContactInsert) (*entity.Contact, error) {
	s.created = &input
	contact := &entity.Contact{ID: 1, Name: input.Name, Email: input.Email, ContactType: input.ContactType}
	s.contacts[contact.ID] = contact
	return contact, nil
}

func (s *stubContactsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := s.contacts[id]; !ok {
		return repository.ErrContactNotFound
	}
	s.deleted = append(s.deleted, id)
	delete(s.contacts, id)
	return nil
}

func (s *stubContactsRepo) FilterExisting(ctx context.Context, ids []int64) ([]int64, error) {
	var out []int64
	for _, id := range ids {
		if _, ok := s.contacts[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

type stubCompaniesRepo struct {
	repository.CompaniesRepository
}

func (s *stubCompaniesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

type stubInteractionsRepo struct {
	repository.InteractionsRepository
}

func (s *stubInteractionsRepo) ListForContact(ctx context.Context, contactID int64) ([]entity.Interaction, error) {
	return nil, nil
}

type stubTasksRepo struct {
	repository.TasksRepository
	counts map[string]int
}

func (s *stubTasksRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	return s.counts, nil
}

func (s *stubTasksRepo) Create(ctx context.Context, input repository.TaskInsert) (*entity.Task, error) {
	return &entity.Task{ID: 1, Title: input.Title, Status: input.Status, ContactID: input.ContactID}, nil
}

type stubMeetingsRepo struct {
	repository.MeetingsRepository
	created *repository.MeetingInsert
}

func (s *stubMeetingsRepo) Create(ctx context.Context, input repository.MeetingInsert) (*entity.Meeting, error) {
	s.created = &input
	return &entity.Meeting{ID: 1, Title: input.Title, Start: input.Start, End: input.End, Status: input.Status, Attendees: []entity.Attendee{}}, nil
}

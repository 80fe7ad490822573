package service

import (
	"context"

	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

type fakeContactsRepo struct {
	contacts    map[int64]*entity.Contact
	lastInsert  *repository.ContactInsert
	lastPatch   *repository.ContactUpdate
	createCalls int
	updateCalls int
}

func newFakeContactsRepo(contacts ...*entity.Contact) *fakeContactsRepo {
	repo := &fakeContactsRepo{contacts: map[int64]*entity.Contact{}}
	for _, contact := range contacts {
		repo.contacts[contact.ID] = contact
	}
	return repo
}

func (f *fakeContactsRepo) List(ctx context.Context) ([]entity.Contact, error) {
	out := make([]entity.Contact, 0, len(f.contacts))
	for _, contact := range f.contacts {
		out = append(out, *contact)
	}
	return out, nil
}

func (f *fakeContactsRepo) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return nil, repository.ErrContactNotFound
	}
	return contact, nil
}

func (f *fakeContactsRepo) Create(ctx context.Context, input repository.ContactInsert) (*entity.Contact, error) {
	f.createCalls++
	f.lastInsert = &input
	contact := &entity.Contact{
		ID:          int64(len(f.contacts) + 1),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ContactType: input.ContactType,
		SalesStage:  input.SalesStage,
		CompanyID:   input.CompanyID,
	}
	f.contacts[contact.ID] = contact
	return contact, nil
}

func (f *fakeContactsRepo) Update(ctx context.Context, id int64, patch repository.ContactUpdate) (*entity.Contact, error) {
	f.updateCalls++
	f.lastPatch = &patch
	contact, ok := f.contacts[id]
	if !ok {
		return nil, repository.ErrContactNotFound
	}
	return contact, nil
}

func (f *fakeContactsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.contacts[id]; !ok {
		return repository.ErrContactNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.contacts[id]
	return ok, nil
}

func (f *fakeContactsRepo) FilterExisting(ctx context.Context, ids []int64) ([]int64, error) {
	var out []int64
	for _, id := range ids {
		if _, ok := f.contacts[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeContactsRepo) ListWithStage(ctx context.Context) ([]entity.Contact, error) {
	var out []entity.Contact
	for _, contact := range f.contacts {
		if contact.SalesStage != nil {
			out = append(out, *contact)
		}
	}
	return out, nil
}

type fakeCompaniesRepo struct {
	companies  map[int64]*entity.Company
	lastPatch  *repository.CompanyUpdate
	lastInsert string
}

func newFakeCompaniesRepo(companies ...*entity.Company) *fakeCompaniesRepo {
	repo := &fakeCompaniesRepo{companies: map[int64]*entity.Company{}}
	for _, company := range companies {
		repo.companies[company.ID] = company
	}
	return repo
}

func (f *fakeCompaniesRepo) List(ctx context.Context) ([]entity.Company, error) {
	out := make([]entity.Company, 0, len(f.companies))
	for _, company := range f.companies {
		out = append(out, *company)
	}
	return out, nil
}

func (f *fakeCompaniesRepo) Get(ctx context.Context, id int64) (*entity.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, repository.ErrCompanyNotFound
	}
	return company, nil
}

func (f *fakeCompaniesRepo) Create(ctx context.Context, name string, website, address *string) (*entity.Company, error) {
	f.lastInsert = name
	company := &entity.Company{ID: int64(len(f.companies) + 1), Name: name, Website: website, Address: address}
	f.companies[company.ID] = company
	return company, nil
}

func (f *fakeCompaniesRepo) Update(ctx context.Context, id int64, patch repository.CompanyUpdate) (*entity.Company, error) {
	f.lastPatch = &patch
	company, ok := f.companies[id]
	if !ok {
		return nil, repository.ErrCompanyNotFound
	}
	return company, nil
}

func (f *fakeCompaniesRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.companies[id]; !ok {
		return repository.ErrCompanyNotFound
	}
	delete(f.companies, id)
	return nil
}

func (f *fakeCompaniesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.companies[id]
	return ok, nil
}

type fakeInteractionsRepo struct {
	interactions []entity.Interaction
	byContact    map[int64][]entity.Interaction
	byCompany    map[int64][]entity.Interaction
	counts       map[string]int
	lastInsert   *repository.InteractionInsert
	lastMessage  string
}

func newFakeInteractionsRepo() *fakeInteractionsRepo {
	return &fakeInteractionsRepo{
		byContact: map[int64][]entity.Interaction{},
		byCompany: map[int64][]entity.Interaction{},
		counts:    map[string]int{},
	}
}

func (f *fakeInteractionsRepo) List(ctx context.Context) ([]entity.Interaction, error) {
	return f.interactions, nil
}

func (f *fakeInteractionsRepo) ListForContact(ctx context.Context, contactID int64) ([]entity.Interaction, error) {
	return f.byContact[contactID], nil
}

func (f *fakeInteractionsRepo) ListForCompany(ctx context.Context, companyID int64) ([]entity.Interaction, error) {
	return f.byCompany[companyID], nil
}

func (f *fakeInteractionsRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.interactions)), nil
}

func (f *fakeInteractionsRepo) CountByType(ctx context.Context) (map[string]int, error) {
	return f.counts, nil
}

func (f *fakeInteractionsRepo) CreateWithNotification(ctx context.Context, input repository.InteractionInsert, message string) (*entity.Interaction, error) {
	f.lastInsert = &input
	f.lastMessage = message
	interaction := entity.Interaction{
		ID:              int64(len(f.interactions) + 1),
		InteractionType: input.InteractionType,
		Notes:           input.Notes,
		ContactID:       input.ContactID,
		CompanyID:       input.CompanyID,
	}
	f.interactions = append(f.interactions, interaction)
	return &interaction, nil
}

func (f *fakeInteractionsRepo) Delete(ctx context.Context, id int64) error {
	for i, interaction := range f.interactions {
		if interaction.ID == id {
			f.interactions = append(f.interactions[:i], f.interactions[i+1:]...)
			return nil
		}
	}
	return repository.ErrInteractionNotFound
}

type fakeNotificationsRepo struct {
	notifications map[int64]*entity.Notification
	markCalls     int
}

func newFakeNotificationsRepo(notifications ...*entity.Notification) *fakeNotificationsRepo {
	repo := &fakeNotificationsRepo{notifications: map[int64]*entity.Notification{}}
	for _, notification := range notifications {
		repo.notifications[notification.ID] = notification
	}
	return repo
}

func (f *fakeNotificationsRepo) List(ctx context.Context) ([]entity.Notification, error) {
	out := make([]entity.Notification, 0, len(f.notifications))
	for _, notification := range f.notifications {
		out = append(out, *notification)
	}
	return out, nil
}

func (f *fakeNotificationsRepo) MarkRead(ctx context.Context, id int64) (*entity.Notification, error) {
	f.markCalls++
	notification, ok := f.notifications[id]
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}
	notification.IsRead = true
	return notification, nil
}

type fakeMeetingsRepo struct {
	meetings   map[int64]*entity.Meeting
	lastInsert *repository.MeetingInsert
	lastPatch  *repository.MeetingUpdate
	upcoming   int64
}

func newFakeMeetingsRepo(meetings ...*entity.Meeting) *fakeMeetingsRepo {
	repo := &fakeMeetingsRepo{meetings: map[int64]*entity.Meeting{}}
	for _, meeting := range meetings {
		repo.meetings[meeting.ID] = meeting
	}
	return repo
}

func (f *fakeMeetingsRepo) List(ctx context.Context, includePast bool) ([]entity.Meeting, error) {
	out := make([]entity.Meeting, 0, len(f.meetings))
	for _, meeting := range f.meetings {
		out = append(out, *meeting)
	}
	return out, nil
}

func (f *fakeMeetingsRepo) Get(ctx context.Context, id int64) (*entity.Meeting, error) {
	meeting, ok := f.meetings[id]
	if !ok {
		return nil, repository.ErrMeetingNotFound
	}
	return meeting, nil
}

func (f *fakeMeetingsRepo) Create(ctx context.Context, input repository.MeetingInsert) (*entity.Meeting, error) {
	f.lastInsert = &input
	meeting := &entity.Meeting{
		ID:        int64(len(f.meetings) + 1),
		Title:     input.Title,
		Start:     input.Start,
		End:       input.End,
		Status:    input.Status,
		CompanyID: input.CompanyID,
	}
	f.meetings[meeting.ID] = meeting
	return meeting, nil
}

func (f *fakeMeetingsRepo) Update(ctx context.Context, id int64, patch repository.MeetingUpdate) (*entity.Meeting, error) {
	f.lastPatch = &patch
	meeting, ok := f.meetings[id]
	if !ok {
		return nil, repository.ErrMeetingNotFound
	}
	return meeting, nil
}

func (f *fakeMeetingsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.meetings[id]; !ok {
		return repository.ErrMeetingNotFound
	}
	delete(f.meetings, id)
	return nil
}

func (f *fakeMeetingsRepo) UpcomingCount(ctx context.Context) (int64, error) {
	return f.upcoming, nil
}

type fakeTasksRepo struct {
	tasks      map[int64]*entity.Task
	counts     map[string]int
	lastInsert *repository.TaskInsert
	lastPatch  *repository.TaskUpdate
	lastFilter *repository.TaskListFilter
}

func newFakeTasksRepo(tasks ...*entity.Task) *fakeTasksRepo {
	repo := &fakeTasksRepo{tasks: map[int64]*entity.Task{}, counts: map[string]int{}}
	for _, task := range tasks {
		repo.tasks[task.ID] = task
	}
	return repo
}

func (f *fakeTasksRepo) List(ctx context.Context, filter repository.TaskListFilter) ([]entity.Task, error) {
	f.lastFilter = &filter
	out := make([]entity.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		out = append(out, *task)
	}
	return out, nil
}

func (f *fakeTasksRepo) Get(ctx context.Context, id int64) (*entity.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeTasksRepo) Create(ctx context.Context, input repository.TaskInsert) (*entity.Task, error) {
	f.lastInsert = &input
	task := &entity.Task{
		ID:        int64(len(f.tasks) + 1),
		Title:     input.Title,
		Status:    input.Status,
		ContactID: input.ContactID,
		CompanyID: input.CompanyID,
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, id int64, patch repository.TaskUpdate) (*entity.Task, error) {
	f.lastPatch = &patch
	task, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTasksRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	return f.counts, nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

package service

import (
	"context"

	"github.com/octobees/crm-backend/internal/dto"
	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// MeetingsService exposes meeting CRUD including attendance handling.
type MeetingsService struct {
	meetings repository.MeetingsRepository
	contacts repository.ContactsRepository
}

// NewMeetingsService creates a new instance of MeetingsService.
func NewMeetingsService(meetings repository.MeetingsRepository, contacts repository.ContactsRepository) *MeetingsService {
	return &MeetingsService{meetings: meetings, contacts: contacts}
}

// List returns meetings ordered by start time; includePast widens the window
// to everything instead of start >= now.
func (s *MeetingsService) List(ctx context.Context, includePast bool) ([]entity.Meeting, error) {
	return s.meetings.List(ctx, includePast)
}

// Get fetches a single meeting.
func (s *MeetingsService) Get(ctx context.Context, id int64) (*entity.Meeting, error) {
	return s.meetings.Get(ctx, id)
}

// Create validates and persists a meeting. Attendee ids that do not identify
// an existing contact are silently skipped, matching the legacy behaviour.
func (s *MeetingsService) Create(ctx context.Context, payload dto.MeetingCreate) (*entity.Meeting, error) {
	if payload.Title == "" {
		return nil, requiredFieldError("title")
	}
	if payload.Start == "" {
		return nil, requiredFieldError("start")
	}
	if payload.End == "" {
		return nil, requiredFieldError("end")
	}

	start, err := parseOptionalTimestamp(&payload.Start, "start")
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalTimestamp(&payload.End, "end")
	if err != nil {
		return nil, err
	}

	status := entity.MeetingStatusConfirmed
	if payload.Status != nil && *payload.Status != "" {
		status = *payload.Status
	}

	attendees, err := s.contacts.FilterExisting(ctx, payload.Attendees)
	if err != nil {
		return nil, err
	}

	return s.meetings.Create(ctx, repository.MeetingInsert{
		Title:       payload.Title,
		Description: payload.Description,
		Location:    payload.Location,
		Start:       *start,
		End:         *end,
		Status:      status,
		CompanyID:   payload.CompanyID,
		AttendeeIDs: attendees,
	})
}

// Update applies a partial update; a present attendee list replaces the
// attendance wholesale, again skipping unknown contact ids.
func (s *MeetingsService) Update(ctx context.Context, id int64, payload dto.MeetingPatch) (*entity.Meeting, error) {
	start, err := parseOptionalTimestamp(payload.Start, "start")
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalTimestamp(payload.End, "end")
	if err != nil {
		return nil, err
	}

	patch := repository.MeetingUpdate{
		Description: payload.Description,
		Location:    payload.Location,
		Start:       start,
		End:         end,
		CompanyID:   payload.CompanyID,
	}
	if payload.Title != nil && *payload.Title != "" {
		patch.Title = payload.Title
	}
	if payload.Status != nil && *payload.Status != "" {
		patch.Status = payload.Status
	}
	if payload.Attendees != nil {
		attendees, err := s.contacts.FilterExisting(ctx, *payload.Attendees)
		if err != nil {
			return nil, err
		}
		if attendees == nil {
			attendees = []int64{}
		}
		patch.AttendeeIDs = &attendees
	}

	return s.meetings.Update(ctx, id, patch)
}

// Delete removes a meeting and its attendance rows.
func (s *MeetingsService) Delete(ctx context.Context, id int64) error {
	return s.meetings.Delete(ctx, id)
}

// UpcomingCount counts meetings starting at or after the current time.
func (s *MeetingsService) UpcomingCount(ctx context.Context) (int64, error) {
	return s.meetings.UpcomingCount(ctx)
}

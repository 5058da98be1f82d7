package service

import (
	"context"
	"fmt"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
)

// ContactService defines operations for contacts
type ContactService interface {
	CreateContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error)
	BulkCreateContacts(ctx context.Context, req model.BulkCreateContactsRequest) (int, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) CreateContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error) {
	contact := contactFromRequest(req)
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repo: %w", err)
	}
	return contact, nil
}

// BulkCreateContacts inserts all rows atomically and returns the count inserted
func (s *contactService) BulkCreateContacts(ctx context.Context, req model.BulkCreateContactsRequest) (int, error) {
	contacts := make([]model.Contact, 0, len(req.Contacts))
	for _, c := range req.Contacts {
		contacts = append(contacts, *contactFromRequest(c))
	}

	if err := s.repo.CreateBulk(ctx, contacts); err != nil {
		return 0, fmt.Errorf("failed to bulk create contacts in repo: %w", err)
	}
	return len(contacts), nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts from repo: %w", err)
	}
	return contacts, nil
}

func contactFromRequest(req model.CreateContactRequest) *model.Contact {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Contact{
		Name:     req.Name,
		Phone:    req.Phone,
		BatchID:  req.BatchID,
		Tags:     tags,
		Category: req.Category,
		Notes:    req.Notes,
	}
}

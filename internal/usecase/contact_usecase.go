package usecase

import (
	"context"
	"net/http"
	"strings"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/repository"
)

type ContactValidator interface {
	ValidateContact(in ContactInput) error
	ValidateReport(in ReportInput) error
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ReportInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

type ContactOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ContactUsecase stores contact-form messages and issue reports.
type ContactUsecase struct {
	repo      repository.ContactRepository
	validator ContactValidator
	idGen     IDGenerator
	clock     Clock
}

func NewContactUsecase(repo repository.ContactRepository, validator ContactValidator, idGen IDGenerator, clock Clock) *ContactUsecase {
	return &ContactUsecase{repo: repo, validator: validator, idGen: idGen, clock: clock}
}

func (u *ContactUsecase) SendMessage(ctx context.Context, in ContactInput) (ContactOutput, error) {
	if err := u.validator.ValidateContact(in); err != nil {
		return ContactOutput{}, err
	}
	msg := model.ContactMessage{
		ID:        u.idGen.NewID(),
		Kind:      model.ContactKindMessage,
		Name:      strings.TrimSpace(in.Name),
		Email:     normalizeEmail(in.Email),
		Body:      strings.TrimSpace(in.Message),
		CreatedAt: u.clock.Now(),
	}
	if err := u.repo.Create(ctx, msg); err != nil {
		return ContactOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ContactOutput{ID: msg.ID, Message: "Thank you for your message! We'll get back to you soon."}, nil
}

func (u *ContactUsecase) ReportIssue(ctx context.Context, in ReportInput) (ContactOutput, error) {
	if err := u.validator.ValidateReport(in); err != nil {
		return ContactOutput{}, err
	}
	msg := model.ContactMessage{
		ID:        u.idGen.NewID(),
		Kind:      model.ContactKindReport,
		Name:      strings.TrimSpace(in.Name),
		Email:     normalizeEmail(in.Email),
		IssueType: in.IssueType,
		Body:      strings.TrimSpace(in.Description),
		CreatedAt: u.clock.Now(),
	}
	if err := u.repo.Create(ctx, msg); err != nil {
		return ContactOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ContactOutput{ID: msg.ID, Message: "Thanks for the report! Our team will look into it."}, nil
}

// List is the staff view, newest first.
func (u *ContactUsecase) List(ctx context.Context, filter repository.ContactFilter) ([]model.ContactMessage, error) {
	msgs, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msgs, nil
}

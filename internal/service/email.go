package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/loopwell/mailcheck-api/internal/core"
	"github.com/loopwell/mailcheck-api/internal/data"
	"github.com/loopwell/mailcheck-api/internal/domain/model"
	apperrors "github.com/loopwell/mailcheck-api/internal/errors"
	"github.com/loopwell/mailcheck-api/internal/ports"
)

// statusLookupConcurrency bounds the parallel status fan-out during listing.
const statusLookupConcurrency = 4

// EmailServiceOptions groups dependencies for EmailService.
type EmailServiceOptions struct {
	Users   core.UserRepository      // Required
	Emails  core.SentEmailRepository // Required
	Gateway ports.DeliveryGateway    // Required
	Logger  *slog.Logger             // Optional
}

// EmailService orchestrates sending test emails through the delivery provider
// and joining stored send records with live delivery status.
type EmailService struct {
	users   core.UserRepository
	emails  core.SentEmailRepository
	gateway ports.DeliveryGateway
	logger  *slog.Logger
}

// NewEmailService constructs a new EmailService.
func NewEmailService(opts EmailServiceOptions) *EmailService {
	if opts.Users == nil {
		panic("UserRepository is required")
	}
	if opts.Emails == nil {
		panic("SentEmailRepository is required")
	}
	if opts.Gateway == nil {
		panic("DeliveryGateway is required")
	}
	return &EmailService{
		users:   opts.Users,
		emails:  opts.Emails,
		gateway: opts.Gateway,
		logger:  opts.Logger,
	}
}

// SendTestEmail validates the caller, hands the message to the delivery
// provider, and persists one SentEmail record referencing the returned id.
// The record is written strictly after the provider accepts the send, so a
// stored record always refers to a delivery the provider knows about; any
// failure before that point leaves no partial state.
func (s *EmailService) SendTestEmail(
	ctx context.Context,
	callerID string,
	req model.SendEmailRequest,
) (string, error) {
	if callerID == "" {
		return "", apperrors.Unauthenticated("no authenticated caller")
	}
	if err := req.Validate(); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeValidation, "validate send request")
	}

	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return "", apperrors.NotFoundf("user %s not found", callerID)
		}
		return "", fmt.Errorf("resolve caller: %w", err)
	}

	deliveryID, err := s.gateway.Send(ctx, ports.SendInput{
		From:    user.SenderDisplay(),
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	if _, err = s.emails.Create(ctx, &model.CreateSentEmailRequest{
		OwnerID:    callerID,
		DeliveryID: deliveryID,
		Recipient:  req.To,
		Subject:    req.Subject,
	}); err != nil {
		// The provider already accepted the message; nothing to roll back.
		return "", fmt.Errorf("record sent email %s: %w", deliveryID, err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "test email sent",
			"owner_id", callerID,
			"delivery_id", deliveryID,
		)
	}

	return deliveryID, nil
}

// ListRecentWithStatus returns the caller's most recent sends, newest first,
// each joined with a freshly fetched delivery status. An unauthenticated
// caller gets an empty listing rather than an error.
//
// Status lookups run concurrently; results are re-associated by index so the
// record order is preserved regardless of completion order. Any lookup
// failure fails the whole listing so a partially enriched page is never
// presented as a success.
func (s *EmailService) ListRecentWithStatus(
	ctx context.Context,
	callerID string,
) ([]model.EmailWithStatus, error) {
	if callerID == "" {
		return []model.EmailWithStatus{}, nil
	}

	records, err := s.emails.ListRecentByOwner(ctx, callerID, model.RecentEmailsPageSize)
	if err != nil {
		return nil, fmt.Errorf("list sent emails: %w", err)
	}

	results := make([]model.EmailWithStatus, len(records))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(statusLookupConcurrency)
	for i, rec := range records {
		group.Go(func() error {
			status, statusErr := s.gateway.Status(gctx, rec.DeliveryID)
			if statusErr != nil {
				return apperrors.Wrapf(statusErr, apperrors.ErrCodeUnavailable,
					"status lookup for delivery %s", rec.DeliveryID)
			}
			results[i] = model.EmailWithStatus{
				DeliveryID: rec.DeliveryID,
				SentAt:     rec.CreatedAt,
				To:         rec.Recipient,
				Subject:    rec.Subject,
				Status:     status,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

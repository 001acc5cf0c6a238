package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loopwell/mailcheck-api/internal/data"
	"github.com/loopwell/mailcheck-api/internal/domain/model"
	apperrors "github.com/loopwell/mailcheck-api/internal/errors"
	"github.com/loopwell/mailcheck-api/internal/mocks"
	"github.com/loopwell/mailcheck-api/internal/ports"
)

const (
	testOwnerID    = "user-123"
	testDeliveryID = "re_delivery_1"
)

// newEmailService creates mock collaborators and a service for testing.
func newEmailService(t *testing.T) (*mocks.MockUserRepository, *mocks.MockSentEmailRepository, *mocks.MockDeliveryGateway, *EmailService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	emailRepo := mocks.NewMockSentEmailRepository(ctrl)
	gateway := mocks.NewMockDeliveryGateway(ctrl)

	service := NewEmailService(EmailServiceOptions{
		Users:   userRepo,
		Emails:  emailRepo,
		Gateway: gateway,
	})

	return userRepo, emailRepo, gateway, service
}

func testUser(displayName *string) *model.User {
	return &model.User{
		ID:          testOwnerID,
		Email:       "owner@example.com",
		DisplayName: displayName,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestEmailService_SendTestEmail_Success(t *testing.T) {
	t.Parallel()
	userRepo, emailRepo, gateway, service := newEmailService(t)

	ctx := context.Background()
	req := model.SendEmailRequest{
		To:      "delivered@resend.dev",
		Subject: "Hi there",
		Body:    "hello world",
	}

	userRepo.EXPECT().
		GetByID(ctx, testOwnerID).
		Return(testUser(stringPtr("Ada Lovelace")), nil).
		Times(1)

	// The provider must accept the message before any record is written.
	sendCall := gateway.EXPECT().
		Send(ctx, ports.SendInput{
			From:    "Ada Lovelace <owner@example.com>",
			To:      "delivered@resend.dev",
			Subject: "Hi there",
			Body:    "hello world",
		}).
		Return(testDeliveryID, nil).
		Times(1)

	emailRepo.EXPECT().
		Create(ctx, &model.CreateSentEmailRequest{
			OwnerID:    testOwnerID,
			DeliveryID: testDeliveryID,
			Recipient:  "delivered@resend.dev",
			Subject:    "Hi there",
		}).
		After(sendCall).
		Return(&model.SentEmail{
			ID:         "row-1",
			OwnerID:    testOwnerID,
			DeliveryID: testDeliveryID,
			Recipient:  "delivered@resend.dev",
			Subject:    "Hi there",
			CreatedAt:  time.Now(),
		}, nil).
		Times(1)

	deliveryID, err := service.SendTestEmail(ctx, testOwnerID, req)

	require.NoError(t, err)
	assert.Equal(t, testDeliveryID, deliveryID)
}

func TestEmailService_SendTestEmail_DefaultSenderLabel(t *testing.T) {
	t.Parallel()
	userRepo, emailRepo, gateway, service := newEmailService(t)

	ctx := context.Background()

	// A profile without a display name falls back to "Me".
	userRepo.EXPECT().
		GetByID(ctx, testOwnerID).
		Return(testUser(nil), nil).
		Times(1)

	gateway.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in ports.SendInput) (string, error) {
			assert.Equal(t, "Me <owner@example.com>", in.From)
			return testDeliveryID, nil
		}).
		Times(1)

	emailRepo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(&model.SentEmail{DeliveryID: testDeliveryID}, nil).
		Times(1)

	_, err := service.SendTestEmail(ctx, testOwnerID, model.SendEmailRequest{
		To:   "delivered@resend.dev",
		Body: "body",
	})

	require.NoError(t, err)
}

func TestEmailService_SendTestEmail_EmptySubjectStoredVerbatim(t *testing.T) {
	t.Parallel()
	userRepo, emailRepo, gateway, service := newEmailService(t)

	ctx := context.Background()

	userRepo.EXPECT().
		GetByID(ctx, testOwnerID).
		Return(testUser(nil), nil).
		Times(1)
	gateway.EXPECT().
		Send(ctx, gomock.Any()).
		Return(testDeliveryID, nil).
		Times(1)

	emailRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateSentEmailRequest) (*model.SentEmail, error) {
			assert.Empty(t, req.Subject)
			return &model.SentEmail{DeliveryID: testDeliveryID}, nil
		}).
		Times(1)

	_, err := service.SendTestEmail(ctx, testOwnerID, model.SendEmailRequest{
		To:   "delivered@resend.dev",
		Body: "no subject",
	})

	require.NoError(t, err)
}

func TestEmailService_SendTestEmail_Unauthenticated(t *testing.T) {
	t.Parallel()
	_, _, _, service := newEmailService(t)

	_, err := service.SendTestEmail(context.Background(), "", model.SendEmailRequest{
		To:   "delivered@resend.dev",
		Body: "body",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestEmailService_SendTestEmail_InvalidRecipient(t *testing.T) {
	t.Parallel()
	_, _, _, service := newEmailService(t)

	_, err := service.SendTestEmail(context.Background(), testOwnerID, model.SendEmailRequest{
		To:   "not-an-address",
		Body: "body",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestEmailService_SendTestEmail_UnknownUser(t *testing.T) {
	t.Parallel()
	userRepo, _, _, service := newEmailService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		GetByID(ctx, "ghost").
		Return(nil, data.ErrUserNotFound).
		Times(1)

	// No gateway call, no record: the mock controller fails on any
	// unexpected interaction.
	_, err := service.SendTestEmail(ctx, "ghost", model.SendEmailRequest{
		To:   "delivered@resend.dev",
		Body: "body",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestEmailService_SendTestEmail_GatewayFailureLeavesNoRecord(t *testing.T) {
	t.Parallel()
	userRepo, _, gateway, service := newEmailService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		GetByID(ctx, testOwnerID).
		Return(testUser(nil), nil).
		Times(1)
	gateway.EXPECT().
		Send(ctx, gomock.Any()).
		Return("", apperrors.Unavailable("provider down")).
		Times(1)

	// Create is never expected: a rejected send must leave no history row.
	_, err := service.SendTestEmail(ctx, testOwnerID, model.SendEmailRequest{
		To:   "delivered@resend.dev",
		Body: "body",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestEmailService_SendTestEmail_PersistFailure(t *testing.T) {
	t.Parallel()
	userRepo, emailRepo, gateway, service := newEmailService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		GetByID(ctx, testOwnerID).
		Return(testUser(nil), nil).
		Times(1)
	gateway.EXPECT().
		Send(ctx, gomock.Any()).
		Return(testDeliveryID, nil).
		Times(1)
	emailRepo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil, errors.New("insert failed")).
		Times(1)

	_, err := service.SendTestEmail(ctx, testOwnerID, model.SendEmailRequest{
		To:   "delivered@resend.dev",
		Body: "body",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), testDeliveryID)
}

func TestEmailService_ListRecentWithStatus_Unauthenticated(t *testing.T) {
	t.Parallel()
	_, _, _, service := newEmailService(t)

	// No repository or gateway expectations: an anonymous caller short-circuits.
	emails, err := service.ListRecentWithStatus(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, emails)
	assert.Empty(t, emails)
}

func TestEmailService_ListRecentWithStatus_EmptyHistory(t *testing.T) {
	t.Parallel()
	_, emailRepo, _, service := newEmailService(t)

	ctx := context.Background()
	emailRepo.EXPECT().
		ListRecentByOwner(ctx, testOwnerID, model.RecentEmailsPageSize).
		Return([]*model.SentEmail{}, nil).
		Times(1)

	emails, err := service.ListRecentWithStatus(ctx, testOwnerID)

	require.NoError(t, err)
	assert.Empty(t, emails)
}

func TestEmailService_ListRecentWithStatus_PreservesOrder(t *testing.T) {
	t.Parallel()
	_, emailRepo, gateway, service := newEmailService(t)

	ctx := context.Background()
	now := time.Now()
	records := []*model.SentEmail{
		{DeliveryID: "re_3", OwnerID: testOwnerID, Recipient: "c@example.com", Subject: "third", CreatedAt: now},
		{DeliveryID: "re_2", OwnerID: testOwnerID, Recipient: "b@example.com", Subject: "second", CreatedAt: now.Add(-time.Minute)},
		{DeliveryID: "re_1", OwnerID: testOwnerID, Recipient: "a@example.com", Subject: "first", CreatedAt: now.Add(-2 * time.Minute)},
	}
	statuses := map[string]model.DeliveryStatus{
		"re_1": {State: model.DeliveryStateDelivered},
		"re_2": {State: model.DeliveryStateBounced},
		"re_3": {State: model.DeliveryStateQueued},
	}

	emailRepo.EXPECT().
		ListRecentByOwner(ctx, testOwnerID, model.RecentEmailsPageSize).
		Return(records, nil).
		Times(1)

	// Lookups run concurrently; the result order must still match the records.
	gateway.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, deliveryID string) (model.DeliveryStatus, error) {
			if deliveryID == "re_3" {
				time.Sleep(10 * time.Millisecond)
			}
			return statuses[deliveryID], nil
		}).
		Times(3)

	emails, err := service.ListRecentWithStatus(ctx, testOwnerID)

	require.NoError(t, err)
	require.Len(t, emails, 3)
	assert.Equal(t, "re_3", emails[0].DeliveryID)
	assert.Equal(t, model.DeliveryStateQueued, emails[0].Status.State)
	assert.Equal(t, "re_2", emails[1].DeliveryID)
	assert.Equal(t, model.DeliveryStateBounced, emails[1].Status.State)
	assert.Equal(t, "re_1", emails[2].DeliveryID)
	assert.Equal(t, model.DeliveryStateDelivered, emails[2].Status.State)

	// The join carries the stored fields through unchanged.
	assert.Equal(t, "c@example.com", emails[0].To)
	assert.Equal(t, "third", emails[0].Subject)
	assert.Equal(t, now, emails[0].SentAt)
}

func TestEmailService_ListRecentWithStatus_LookupFailureFailsListing(t *testing.T) {
	t.Parallel()
	_, emailRepo, gateway, service := newEmailService(t)

	ctx := context.Background()
	records := []*model.SentEmail{
		{DeliveryID: "re_1", OwnerID: testOwnerID, Recipient: "a@example.com"},
		{DeliveryID: "re_2", OwnerID: testOwnerID, Recipient: "b@example.com"},
	}

	emailRepo.EXPECT().
		ListRecentByOwner(ctx, testOwnerID, model.RecentEmailsPageSize).
		Return(records, nil).
		Times(1)

	gateway.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, deliveryID string) (model.DeliveryStatus, error) {
			if deliveryID == "re_2" {
				return model.DeliveryStatus{}, errors.New("provider timeout")
			}
			return model.DeliveryStatus{State: model.DeliveryStateSent}, nil
		}).
		MinTimes(1).
		MaxTimes(2)

	_, err := service.ListRecentWithStatus(ctx, testOwnerID)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
	assert.Contains(t, err.Error(), "re_2")
}

func TestEmailService_ListRecentWithStatus_RepoFailure(t *testing.T) {
	t.Parallel()
	_, emailRepo, _, service := newEmailService(t)

	ctx := context.Background()
	emailRepo.EXPECT().
		ListRecentByOwner(ctx, testOwnerID, model.RecentEmailsPageSize).
		Return(nil, errors.New("db down")).
		Times(1)

	_, err := service.ListRecentWithStatus(ctx, testOwnerID)

	require.Error(t, err)
}

func stringPtr(s string) *string { return &s }

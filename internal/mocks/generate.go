// Package mocks provides mock implementations for testing the mailcheck API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository
// and gateway interfaces. The mocks are generated using go:generate directives and provide a
// fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockSentEmailRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(email, nil)
package mocks

// Generate mock for SentEmailRepository interface from internal/core package.
// This creates MockSentEmailRepository with methods for all SentEmailRepository interface methods:
// Create, ListRecentByOwner
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=sent_email_repository_mock.go github.com/loopwell/mailcheck-api/internal/core SentEmailRepository

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Upsert, GetByID
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/loopwell/mailcheck-api/internal/core UserRepository

// Generate mock for DeliveryGateway interface from internal/ports package.
// This creates MockDeliveryGateway with methods for all DeliveryGateway interface methods:
// Send, Status
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=delivery_gateway_mock.go github.com/loopwell/mailcheck-api/internal/ports DeliveryGateway

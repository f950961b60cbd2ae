// Package mocks provides mock implementations of the port interfaces for tests.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the REST API ports.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockCandidateAPI(ctrl)
//	api.EXPECT().ListCandidates(gomock.Any()).Return(list, nil)
package mocks

// Generate mock for CandidateAPI interface from internal/ports package.
// This creates MockCandidateAPI with methods for all CandidateAPI interface methods:
// ListCandidates, UpdateRole, DeleteResource, SendMagicLink
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=candidate_api_mock.go github.com/mrraghuvarun/talent/internal/ports CandidateAPI

// Generate mock for DetailsAPI interface from internal/ports package.
// This creates MockDetailsAPI with methods for all DetailsAPI interface methods:
// GetDetails, UpdatePersonal, UpdateQualification, UpdateSkills, UpdateCertifications, ResumeURL
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=details_api_mock.go github.com/mrraghuvarun/talent/internal/ports DetailsAPI

// Generate mock for MagicLinkAPI interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=magic_link_api_mock.go github.com/mrraghuvarun/talent/internal/ports MagicLinkAPI

// Generate mock for Authenticator interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=authenticator_mock.go github.com/mrraghuvarun/talent/internal/ports Authenticator

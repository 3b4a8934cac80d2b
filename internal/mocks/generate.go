// Package mocks holds gomock doubles for the service repository ports.
//
// Regenerate after changing an interface:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=actionneur_repository_mock.go github.com/plsapi/backend/internal/service ActionneurRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=charbon_repository_mock.go github.com/plsapi/backend/internal/service CharbonRepository

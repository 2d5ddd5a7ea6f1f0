// Package mocks holds generated mocks for the gateway's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe
// mocks for the port interfaces. Hand-written doubles for the auth
// ports live in the auth subpackage; the generated ones below cover the
// rental ports, whose call patterns the handler tests script with
// EXPECT().
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=tool_directory_mock.go github.com/toolrent/admin-gateway/internal/ports ToolDirectory

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=client_directory_mock.go github.com/toolrent/admin-gateway/internal/ports ClientDirectory

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=rate_schedule_mock.go github.com/toolrent/admin-gateway/internal/ports RateSchedule

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=report_source_mock.go github.com/toolrent/admin-gateway/internal/ports ReportSource

// Package extmocks mocks of interfaces from external packages.
package extmocks

//go:generate mockgen -destination=writer_mock.go -package=extmocks -mock_names Writer=WriterMock io Writer

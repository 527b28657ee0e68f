package currency_mocks

//go:generate mockgen -source=../formatter.go -destination=currency_mocks.go -package=currency_mocks

// This file contains the go:generate directive to generate mocks for the
// currency Store interface. To regenerate the mocks, run:
//   go generate ./internal/currency/currency_mocks

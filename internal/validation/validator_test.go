package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	first := GetValidator()
	second := GetValidator()
	s.Same(first, second)
}

func (s *ValidatorTestSuite) TestUsernameFormat() {
	type payload struct {
		Username string `validate:"username_format"`
	}

	valid := []string{"alice", "bob.smith", "user_99", "a-b", "9lives"}
	for _, username := range valid {
		s.NoError(s.validator.GetValidate().Struct(payload{Username: username}), username)
	}

	invalid := []string{"", ".leading", "-leading", "_leading", "has space", "emoji🙂"}
	for _, username := range invalid {
		s.Error(s.validator.GetValidate().Struct(payload{Username: username}), username)
	}
}

func (s *ValidatorTestSuite) TestCurrencyCode() {
	type payload struct {
		Code string `validate:"currency_code"`
	}

	for _, code := range []string{"USD", "EUR", "JPY", "GBP"} {
		s.NoError(s.validator.GetValidate().Struct(payload{Code: code}), code)
	}

	for _, code := range []string{"", "usd", "XYZ", "US"} {
		s.Error(s.validator.GetValidate().Struct(payload{Code: code}), code)
	}
}

func (s *ValidatorTestSuite) TestMonthNumber() {
	type payload struct {
		Month int `validate:"month_number"`
	}

	for _, month := range []int{1, 6, 12} {
		s.NoError(s.validator.GetValidate().Struct(payload{Month: month}))
	}

	for _, month := range []int{0, 13, -1} {
		s.Error(s.validator.GetValidate().Struct(payload{Month: month}))
	}
}

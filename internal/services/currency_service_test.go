package services

import (
	"testing"

	"payme/internal/database"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service CurrencyServiceInterface
	user    *models.User
}

func (s *CurrencyServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	preferenceRepo := repositories.NewPreferenceRepository(s.db.DB)
	s.service = NewCurrencyService(preferenceRepo, "en-US", nil)
	s.user = database.CreateTestUser(s.T(), s.db, "currencyuser")
}

func (s *CurrencyServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCurrencyServiceSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func (s *CurrencyServiceTestSuite) TestListCurrencies() {
	currencies := s.service.ListCurrencies()
	s.Require().NotEmpty(currencies)

	codes := make(map[string]bool, len(currencies))
	for _, c := range currencies {
		codes[c.Code] = true
	}
	s.True(codes["USD"])
	s.True(codes["EUR"])
	s.True(codes["JPY"])
}

func (s *CurrencyServiceTestSuite) TestActiveCurrency_DefaultsFromLocale() {
	active, err := s.service.ActiveCurrency(s.user.ID)
	s.NoError(err)
	s.Require().NotNil(active)
	s.Equal("USD", active.Currency.Code)
	s.Equal("$1,234.56", active.Sample)
}

func (s *CurrencyServiceTestSuite) TestSelectCurrency_Persists() {
	selected, err := s.service.SelectCurrency(s.user.ID, "EUR")
	s.NoError(err)
	s.Equal("EUR", selected.Currency.Code)

	// A fresh lookup must read the stored selection, not the locale default.
	active, err := s.service.ActiveCurrency(s.user.ID)
	s.NoError(err)
	s.Equal("EUR", active.Currency.Code)
}

func (s *CurrencyServiceTestSuite) TestSelectCurrency_UnknownCodeFallsBack() {
	selected, err := s.service.SelectCurrency(s.user.ID, "XYZ")
	s.NoError(err)
	s.Equal("USD", selected.Currency.Code)
}

func (s *CurrencyServiceTestSuite) TestSelectCurrency_ZeroDecimalSample() {
	selected, err := s.service.SelectCurrency(s.user.ID, "JPY")
	s.NoError(err)
	s.Equal("JPY", selected.Currency.Code)
	s.NotContains(selected.Sample, ".")
}

func (s *CurrencyServiceTestSuite) TestSelections_AreScopedPerUser() {
	other := database.CreateTestUser(s.T(), s.db, "othercurrencyuser")

	_, err := s.service.SelectCurrency(s.user.ID, "GBP")
	s.Require().NoError(err)

	active, err := s.service.ActiveCurrency(other.ID)
	s.NoError(err)
	s.Equal("USD", active.Currency.Code)
}

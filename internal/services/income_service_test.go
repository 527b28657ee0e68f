package services

import (
	"testing"

	"payme/internal/database"
	"payme/internal/dto"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type IncomeServiceTestSuite struct {
	suite.Suite
	db        *database.DB
	monthRepo repositories.MonthRepositoryInterface
	service   IncomeServiceInterface
	user      *models.User
	month     *models.Month
}

func (s *IncomeServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.monthRepo = repositories.NewMonthRepository(s.db.DB)
	incomeRepo := repositories.NewIncomeRepository(s.db.DB)
	s.service = NewIncomeService(incomeRepo, s.monthRepo)

	s.user = database.CreateTestUser(s.T(), s.db, "incomeuser")
	s.month = database.CreateTestMonth(s.T(), s.db, s.user, 2026, 3)
}

func (s *IncomeServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestIncomeServiceSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}

func (s *IncomeServiceTestSuite) closeMonth() {
	s.month.Close()
	s.Require().NoError(s.monthRepo.Update(s.month))
}

func (s *IncomeServiceTestSuite) TestCreate() {
	entry, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.NoError(err)
	s.Require().NotNil(entry)
	s.Equal(s.month.ID, entry.MonthID)
	s.Equal("Salary", entry.Label)
	s.True(entry.Amount.Equal(decimal.NewFromInt(3000)))
}

func (s *IncomeServiceTestSuite) TestCreate_ClosedMonth() {
	s.closeMonth()

	_, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.ErrorIs(err, models.ErrMonthClosed)
}

func (s *IncomeServiceTestSuite) TestCreate_OtherUsersMonth() {
	other := database.CreateTestUser(s.T(), s.db, "otherincomeuser")

	_, err := s.service.Create(other.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.ErrorIs(err, ErrMonthNotFound)
}

func (s *IncomeServiceTestSuite) TestListByMonth() {
	for _, label := range []string{"Salary", "Freelance"} {
		_, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
			Label:  label,
			Amount: decimal.NewFromInt(1000),
		})
		s.Require().NoError(err)
	}

	entries, err := s.service.ListByMonth(s.user.ID, s.month.ID)
	s.NoError(err)
	s.Len(entries, 2)
}

func (s *IncomeServiceTestSuite) TestUpdate() {
	entry, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.Require().NoError(err)

	raise := decimal.NewFromInt(3200)
	updated, err := s.service.Update(s.user.ID, entry.ID, &dto.UpdateIncomeRequest{Amount: &raise})
	s.NoError(err)
	s.Equal("Salary", updated.Label)
	s.True(updated.Amount.Equal(raise))
}

func (s *IncomeServiceTestSuite) TestUpdate_ClosedMonth() {
	entry, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.Require().NoError(err)
	s.closeMonth()

	_, err = s.service.Update(s.user.ID, entry.ID, &dto.UpdateIncomeRequest{Label: "Bonus"})
	s.ErrorIs(err, models.ErrMonthClosed)
}

func (s *IncomeServiceTestSuite) TestUpdate_NotFound() {
	_, err := s.service.Update(s.user.ID, uuid.New(), &dto.UpdateIncomeRequest{Label: "Bonus"})
	s.ErrorIs(err, ErrIncomeNotFound)
}

func (s *IncomeServiceTestSuite) TestDelete() {
	entry, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.Require().NoError(err)

	s.NoError(s.service.Delete(s.user.ID, entry.ID))

	entries, err := s.service.ListByMonth(s.user.ID, s.month.ID)
	s.NoError(err)
	s.Empty(entries)
}

func (s *IncomeServiceTestSuite) TestDelete_OtherUsersEntry() {
	entry, err := s.service.Create(s.user.ID, s.month.ID, &dto.CreateIncomeRequest{
		Label:  "Salary",
		Amount: decimal.NewFromInt(3000),
	})
	s.Require().NoError(err)

	other := database.CreateTestUser(s.T(), s.db, "otherincomeuser")
	err = s.service.Delete(other.ID, entry.ID)
	s.ErrorIs(err, ErrIncomeNotFound)
}

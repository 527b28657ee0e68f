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

type FixedExpenseServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service FixedExpenseServiceInterface
	user    *models.User
}

func (s *FixedExpenseServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewFixedExpenseService(repositories.NewFixedExpenseRepository(s.db.DB))
	s.user = database.CreateTestUser(s.T(), s.db, "fixeduser")
}

func (s *FixedExpenseServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestFixedExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(FixedExpenseServiceTestSuite))
}

func (s *FixedExpenseServiceTestSuite) TestCreate() {
	expense, err := s.service.Create(s.user.ID, &dto.CreateFixedExpenseRequest{
		Label:  "Rent",
		Amount: decimal.NewFromInt(1400),
	})
	s.NoError(err)
	s.Require().NotNil(expense)
	s.Equal(s.user.ID, expense.UserID)
	s.Equal("Rent", expense.Label)
	s.True(expense.Amount.Equal(decimal.NewFromInt(1400)))
}

func (s *FixedExpenseServiceTestSuite) TestList_OrderedByLabel() {
	for _, label := range []string{"Rent", "Internet", "Phone"} {
		_, err := s.service.Create(s.user.ID, &dto.CreateFixedExpenseRequest{
			Label:  label,
			Amount: decimal.NewFromInt(50),
		})
		s.Require().NoError(err)
	}

	expenses, err := s.service.List(s.user.ID)
	s.NoError(err)
	s.Require().Len(expenses, 3)
	s.Equal("Internet", expenses[0].Label)
	s.Equal("Phone", expenses[1].Label)
	s.Equal("Rent", expenses[2].Label)
}

func (s *FixedExpenseServiceTestSuite) TestList_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "otherfixeduser")
	_, err := s.service.Create(other.ID, &dto.CreateFixedExpenseRequest{
		Label:  "Rent",
		Amount: decimal.NewFromInt(900),
	})
	s.Require().NoError(err)

	expenses, err := s.service.List(s.user.ID)
	s.NoError(err)
	s.Empty(expenses)
}

func (s *FixedExpenseServiceTestSuite) TestUpdate() {
	expense, err := s.service.Create(s.user.ID, &dto.CreateFixedExpenseRequest{
		Label:  "Electricity",
		Amount: decimal.NewFromInt(90),
	})
	s.Require().NoError(err)

	hike := decimal.NewFromInt(110)
	updated, err := s.service.Update(s.user.ID, expense.ID, &dto.UpdateFixedExpenseRequest{Amount: &hike})
	s.NoError(err)
	s.Equal("Electricity", updated.Label)
	s.True(updated.Amount.Equal(hike))
}

func (s *FixedExpenseServiceTestSuite) TestUpdate_NotFound() {
	_, err := s.service.Update(s.user.ID, uuid.New(), &dto.UpdateFixedExpenseRequest{Label: "Nope"})
	s.ErrorIs(err, ErrFixedExpenseNotFound)
}

func (s *FixedExpenseServiceTestSuite) TestUpdate_OtherUsersExpense() {
	other := database.CreateTestUser(s.T(), s.db, "otherfixeduser")
	expense, err := s.service.Create(other.ID, &dto.CreateFixedExpenseRequest{
		Label:  "Rent",
		Amount: decimal.NewFromInt(900),
	})
	s.Require().NoError(err)

	_, err = s.service.Update(s.user.ID, expense.ID, &dto.UpdateFixedExpenseRequest{Label: "Hijack"})
	s.ErrorIs(err, ErrFixedExpenseNotFound)
}

func (s *FixedExpenseServiceTestSuite) TestDelete() {
	expense, err := s.service.Create(s.user.ID, &dto.CreateFixedExpenseRequest{
		Label:  "Insurance",
		Amount: decimal.NewFromInt(120),
	})
	s.Require().NoError(err)

	s.NoError(s.service.Delete(s.user.ID, expense.ID))

	expenses, err := s.service.List(s.user.ID)
	s.NoError(err)
	s.Empty(expenses)
}

package repositories

import (
	"testing"

	"payme/internal/database"
	"payme/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestFixedExpenseRepository(t *testing.T) {
	suite.Run(t, new(FixedExpenseRepositoryTestSuite))
}

type FixedExpenseRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo FixedExpenseRepositoryInterface
	user *models.User
}

func (s *FixedExpenseRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewFixedExpenseRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "ada")
}

func (s *FixedExpenseRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *FixedExpenseRepositoryTestSuite) TestCreateAndGetByID() {
	expense := &models.FixedExpense{
		UserID: s.user.ID,
		Label:  "Rent",
		Amount: decimal.NewFromInt(1400),
	}

	s.NoError(s.repo.Create(expense))

	found, err := s.repo.GetByID(expense.ID)
	s.NoError(err)
	s.Equal("Rent", found.Label)
	s.True(found.Amount.Equal(decimal.NewFromInt(1400)))
}

func (s *FixedExpenseRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrFixedExpenseNotFound)
}

func (s *FixedExpenseRepositoryTestSuite) TestGetByUserID_OrderedByLabel() {
	for _, label := range []string{"Rent", "Internet", "Phone"} {
		s.NoError(s.repo.Create(&models.FixedExpense{
			UserID: s.user.ID,
			Label:  label,
			Amount: decimal.NewFromInt(50),
		}))
	}

	expenses, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.Len(expenses, 3)
	s.Equal("Internet", expenses[0].Label)
	s.Equal("Phone", expenses[1].Label)
	s.Equal("Rent", expenses[2].Label)
}

func (s *FixedExpenseRepositoryTestSuite) TestGetByUserID_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "grace")
	s.NoError(s.repo.Create(&models.FixedExpense{UserID: s.user.ID, Label: "Rent", Amount: decimal.NewFromInt(1400)}))
	s.NoError(s.repo.Create(&models.FixedExpense{UserID: other.ID, Label: "Gym", Amount: decimal.NewFromInt(40)}))

	expenses, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.Len(expenses, 1)
	s.Equal("Rent", expenses[0].Label)
}

func (s *FixedExpenseRepositoryTestSuite) TestUpdate() {
	expense := &models.FixedExpense{UserID: s.user.ID, Label: "Rent", Amount: decimal.NewFromInt(1400)}
	s.NoError(s.repo.Create(expense))

	expense.Amount = decimal.NewFromInt(1450)
	s.NoError(s.repo.Update(expense))

	found, err := s.repo.GetByID(expense.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(1450)))
}

func (s *FixedExpenseRepositoryTestSuite) TestDelete() {
	expense := &models.FixedExpense{UserID: s.user.ID, Label: "Rent", Amount: decimal.NewFromInt(1400)}
	s.NoError(s.repo.Create(expense))

	s.NoError(s.repo.Delete(expense.ID))

	_, err := s.repo.GetByID(expense.ID)
	s.ErrorIs(err, ErrFixedExpenseNotFound)
}

func (s *FixedExpenseRepositoryTestSuite) TestSumByUserID() {
	s.NoError(s.repo.Create(&models.FixedExpense{UserID: s.user.ID, Label: "Rent", Amount: decimal.NewFromInt(1400)}))
	s.NoError(s.repo.Create(&models.FixedExpense{UserID: s.user.ID, Label: "Internet", Amount: decimal.NewFromInt(60)}))

	total, err := s.repo.SumByUserID(s.user.ID)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromInt(1460)))
}

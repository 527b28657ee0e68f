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

type CategoryServiceTestSuite struct {
	suite.Suite
	db           *database.DB
	categoryRepo repositories.CategoryRepositoryInterface
	monthRepo    repositories.MonthRepositoryInterface
	budgetRepo   repositories.MonthlyBudgetRepositoryInterface
	itemRepo     repositories.ItemRepositoryInterface
	service      CategoryServiceInterface
	user         *models.User
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.categoryRepo = repositories.NewCategoryRepository(s.db.DB)
	s.monthRepo = repositories.NewMonthRepository(s.db.DB)
	s.budgetRepo = repositories.NewMonthlyBudgetRepository(s.db.DB)
	s.itemRepo = repositories.NewItemRepository(s.db.DB)
	s.service = NewCategoryService(s.categoryRepo, s.monthRepo, s.budgetRepo)
	s.user = database.CreateTestUser(s.T(), s.db, "categoryuser")
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreate() {
	category, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{
		Label:         "Groceries",
		DefaultAmount: decimal.NewFromInt(450),
	})
	s.NoError(err)
	s.Require().NotNil(category)
	s.NotEqual(uuid.Nil, category.ID)
	s.Equal("Groceries", category.Label)
}

func (s *CategoryServiceTestSuite) TestCreate_DuplicateLabel() {
	_, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.Require().NoError(err)

	_, err = s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.ErrorIs(err, ErrCategoryExists)
}

func (s *CategoryServiceTestSuite) TestCreate_SameLabelDifferentUsers() {
	other := database.CreateTestUser(s.T(), s.db, "othercatuser")

	_, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.Require().NoError(err)

	_, err = s.service.Create(other.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestCreate_PropagatesIntoOpenMonths() {
	open := database.CreateTestMonth(s.T(), s.db, s.user, 2026, 1)
	closed := database.CreateTestMonth(s.T(), s.db, s.user, 2025, 12)
	closed.Close()
	s.Require().NoError(s.monthRepo.Update(closed))

	category, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{
		Label:         "Transport",
		DefaultAmount: decimal.NewFromInt(120),
	})
	s.Require().NoError(err)

	openLines, err := s.budgetRepo.GetLinesByMonthID(open.ID)
	s.NoError(err)
	s.Require().Len(openLines, 1)
	s.Equal(category.ID, openLines[0].CategoryID)
	s.True(openLines[0].AllocatedAmount.Equal(decimal.NewFromInt(120)))

	closedLines, err := s.budgetRepo.GetLinesByMonthID(closed.ID)
	s.NoError(err)
	s.Empty(closedLines, "closed months must not gain budget lines")
}

func (s *CategoryServiceTestSuite) TestList_OrderedByLabel() {
	for _, label := range []string{"Transport", "Groceries", "Health"} {
		_, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: label})
		s.Require().NoError(err)
	}

	categories, err := s.service.List(s.user.ID)
	s.NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Groceries", categories[0].Label)
	s.Equal("Health", categories[1].Label)
	s.Equal("Transport", categories[2].Label)
}

func (s *CategoryServiceTestSuite) TestUpdate() {
	category, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{
		Label:         "Groceries",
		DefaultAmount: decimal.NewFromInt(450),
	})
	s.Require().NoError(err)

	newDefault := decimal.NewFromInt(500)
	updated, err := s.service.Update(s.user.ID, category.ID, &dto.UpdateCategoryRequest{
		Label:         "Food",
		DefaultAmount: &newDefault,
	})
	s.NoError(err)
	s.Equal("Food", updated.Label)
	s.True(updated.DefaultAmount.Equal(newDefault))
}

func (s *CategoryServiceTestSuite) TestUpdate_DoesNotTouchExistingAllocations() {
	month := database.CreateTestMonth(s.T(), s.db, s.user, 2026, 1)
	category, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{
		Label:         "Groceries",
		DefaultAmount: decimal.NewFromInt(450),
	})
	s.Require().NoError(err)

	newDefault := decimal.NewFromInt(999)
	_, err = s.service.Update(s.user.ID, category.ID, &dto.UpdateCategoryRequest{DefaultAmount: &newDefault})
	s.Require().NoError(err)

	lines, err := s.budgetRepo.GetLinesByMonthID(month.ID)
	s.NoError(err)
	s.Require().Len(lines, 1)
	s.True(lines[0].AllocatedAmount.Equal(decimal.NewFromInt(450)))
}

func (s *CategoryServiceTestSuite) TestUpdate_LabelCollision() {
	_, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.Require().NoError(err)
	transport, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Transport"})
	s.Require().NoError(err)

	_, err = s.service.Update(s.user.ID, transport.ID, &dto.UpdateCategoryRequest{Label: "Groceries"})
	s.ErrorIs(err, ErrCategoryExists)
}

func (s *CategoryServiceTestSuite) TestUpdate_NotFound() {
	_, err := s.service.Update(s.user.ID, uuid.New(), &dto.UpdateCategoryRequest{Label: "Nope"})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestUpdate_OtherUsersCategory() {
	other := database.CreateTestUser(s.T(), s.db, "othercatuser")
	category, err := s.service.Create(other.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.Require().NoError(err)

	_, err = s.service.Update(s.user.ID, category.ID, &dto.UpdateCategoryRequest{Label: "Hijack"})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestDelete() {
	category, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.Require().NoError(err)

	s.NoError(s.service.Delete(s.user.ID, category.ID))

	categories, err := s.service.List(s.user.ID)
	s.NoError(err)
	s.Empty(categories)
}

func (s *CategoryServiceTestSuite) TestDelete_InUse() {
	month := database.CreateTestMonth(s.T(), s.db, s.user, 2026, 1)
	category, err := s.service.Create(s.user.ID, &dto.CreateCategoryRequest{Label: "Groceries"})
	s.Require().NoError(err)

	s.Require().NoError(s.itemRepo.Create(&models.Item{
		MonthID:     month.ID,
		CategoryID:  category.ID,
		Description: "Weekly shop",
		Amount:      decimal.NewFromInt(50),
		SpentOn:     month.CreatedAt,
	}))

	err = s.service.Delete(s.user.ID, category.ID)
	s.ErrorIs(err, ErrCategoryInUse)
}

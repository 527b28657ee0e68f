package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payme/internal/models"
	"payme/internal/services"
	"payme/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

type BudgetHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	budgetService *service_mocks.MockBudgetServiceInterface
	handler       *BudgetHandler
	e             *echo.Echo
	userID        uuid.UUID
}

func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.budgetService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerSuite) newContext(method, path string, body interface{}, paramID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(paramID.String())
	return c, rec
}

func (s *BudgetHandlerSuite) TestCreate() {
	monthID := uuid.New()
	categoryID := uuid.New()

	s.Run("successful creation", func() {
		budget := &models.MonthlyBudget{
			ID:              uuid.New(),
			MonthID:         monthID,
			CategoryID:      categoryID,
			AllocatedAmount: decimal.NewFromInt(500),
		}

		s.budgetService.EXPECT().
			Create(s.userID, monthID, gomock.Any()).
			Return(budget, nil)

		c, rec := s.newContext(http.MethodPost, "/months/:id/budgets", map[string]interface{}{
			"categoryId":      categoryID.String(),
			"allocatedAmount": "500",
		}, monthID)

		s.NoError(s.handler.Create(c))
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("duplicate category line", func() {
		s.budgetService.EXPECT().
			Create(s.userID, monthID, gomock.Any()).
			Return(nil, services.ErrBudgetExists)

		c, rec := s.newContext(http.MethodPost, "/months/:id/budgets", map[string]interface{}{
			"categoryId":      categoryID.String(),
			"allocatedAmount": "500",
		}, monthID)

		s.NoError(s.handler.Create(c))
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("closed month", func() {
		s.budgetService.EXPECT().
			Create(s.userID, monthID, gomock.Any()).
			Return(nil, models.ErrMonthClosed)

		c, rec := s.newContext(http.MethodPost, "/months/:id/budgets", map[string]interface{}{
			"categoryId":      categoryID.String(),
			"allocatedAmount": "500",
		}, monthID)

		s.NoError(s.handler.Create(c))
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("malformed category id rejected by validation", func() {
		c, _ := s.newContext(http.MethodPost, "/months/:id/budgets", map[string]interface{}{
			"categoryId": "not-a-uuid",
		}, monthID)

		s.Error(s.handler.Create(c))
	})
}

func (s *BudgetHandlerSuite) TestList() {
	monthID := uuid.New()
	lines := []models.BudgetLine{
		{CategoryLabel: "Groceries", AllocatedAmount: decimal.NewFromInt(450), SpentAmount: decimal.NewFromInt(120)},
	}

	s.budgetService.EXPECT().
		ListLines(s.userID, monthID).
		Return(lines, nil)

	c, rec := s.newContext(http.MethodGet, "/months/:id/budgets", nil, monthID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerSuite) TestUpdate() {
	budgetID := uuid.New()

	s.Run("successful update", func() {
		budget := &models.MonthlyBudget{ID: budgetID, AllocatedAmount: decimal.NewFromInt(520)}

		s.budgetService.EXPECT().
			Update(s.userID, budgetID, gomock.Any()).
			Return(budget, nil)

		c, rec := s.newContext(http.MethodPut, "/budgets/:id", map[string]interface{}{
			"allocatedAmount": "520",
		}, budgetID)

		s.NoError(s.handler.Update(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("not found", func() {
		s.budgetService.EXPECT().
			Update(s.userID, budgetID, gomock.Any()).
			Return(nil, services.ErrBudgetNotFound)

		c, rec := s.newContext(http.MethodPut, "/budgets/:id", map[string]interface{}{
			"allocatedAmount": "520",
		}, budgetID)

		s.NoError(s.handler.Update(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BudgetHandlerSuite) TestDelete() {
	budgetID := uuid.New()

	s.budgetService.EXPECT().
		Delete(s.userID, budgetID).
		Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/budgets/:id", nil, budgetID)

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payme/internal/dto"
	"payme/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerSuite))
}

type CurrencyHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	currencyService *service_mocks.MockCurrencyServiceInterface
	handler         *CurrencyHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *CurrencyHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.currencyService = service_mocks.NewMockCurrencyServiceInterface(s.ctrl)
	s.handler = NewCurrencyHandler(s.currencyService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *CurrencyHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CurrencyHandlerSuite) newContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *CurrencyHandlerSuite) TestList() {
	catalog := []dto.CurrencyResponse{
		{Code: "USD", Symbol: "$", SymbolPosition: "before", FractionDigits: 2},
		{Code: "EUR", Symbol: "€", SymbolPosition: "after", FractionDigits: 2},
	}

	s.currencyService.EXPECT().
		ListCurrencies().
		Return(catalog)

	c, rec := s.newContext(http.MethodGet, "/currencies", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CurrencyHandlerSuite) TestActive() {
	active := &dto.ActiveCurrencyResponse{
		Currency: dto.CurrencyResponse{Code: "USD", Symbol: "$"},
		Sample:   "$1,234.56",
	}

	s.currencyService.EXPECT().
		ActiveCurrency(s.userID).
		Return(active, nil)

	c, rec := s.newContext(http.MethodGet, "/currencies/active", nil)

	s.NoError(s.handler.Active(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CurrencyHandlerSuite) TestSelect() {
	s.Run("successful selection", func() {
		active := &dto.ActiveCurrencyResponse{
			Currency: dto.CurrencyResponse{Code: "EUR", Symbol: "€"},
			Sample:   "1.234,56 €",
		}

		s.currencyService.EXPECT().
			SelectCurrency(s.userID, "EUR").
			Return(active, nil)

		c, rec := s.newContext(http.MethodPut, "/currencies/active", map[string]string{
			"code": "EUR",
		})

		s.NoError(s.handler.Select(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unsupported code rejected by validation", func() {
		c, _ := s.newContext(http.MethodPut, "/currencies/active", map[string]string{
			"code": "XYZ",
		})

		s.Error(s.handler.Select(c))
	})

	s.Run("missing user context", func() {
		c, rec := s.newContext(http.MethodPut, "/currencies/active", map[string]string{
			"code": "EUR",
		})
		c.Set("user_id", nil)

		s.NoError(s.handler.Select(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

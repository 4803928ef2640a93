//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"safestore/internal/domain/sale"
	"safestore/internal/handler/api"
	resdto "safestore/internal/handler/dto/response"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"
	"safestore/tests/common/httptest"
	"safestore/tests/common/testutil"
	usecasemock "safestore/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SaleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockSaleUseCase
	handler     *api.SaleHandler
	sellerID    uuid.UUID
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockSaleUseCase(s.mockCtrl)
	s.handler = api.NewSaleHandler(s.mockUseCase)
	s.sellerID = uuid.New()

	withSeller := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.sellerID)
			h(c)
		}
	}

	s.router.POST("/sales", withSeller(s.handler.CreateSale))
	s.router.GET("/sales", withSeller(s.handler.ListSales))
	s.router.GET("/sales/:id", withSeller(s.handler.GetSale))
}

func (s *SaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func (s *SaleHandlerTestSuite) saleRM() *readmodel.SaleRM {
	buyer := "customer-42"
	return &readmodel.SaleRM{
		ID:        10,
		SellerID:  s.sellerID,
		BuyerID:   &buyer,
		Total:     decimal.NewFromFloat(99.80),
		CreatedAt: time.Now(),
		Lines: []readmodel.SaleLineRM{
			{ProductID: 1, ProductName: "Keyboard", Quantity: 2, UnitPrice: decimal.NewFromFloat(49.90), Subtotal: decimal.NewFromFloat(99.80)},
		},
	}
}

func validSaleBody() map[string]any {
	return map[string]any{
		"buyerId": "customer-42",
		"lines": []map[string]any{
			{"productId": 1, "quantity": 2},
		},
	}
}

func (s *SaleHandlerTestSuite) TestCreateSale() {
	url := "/sales"

	s.Run("success: returns 201 with the recorded sale", func() {
		s.mockUseCase.EXPECT().CreateSale(gomock.Any(), s.sellerID, gomock.Any()).
			Return(s.saleRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validSaleBody(), "")

		var resp resdto.SaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(10), resp.ID)
		s.Require().NotNil(resp.BuyerID)
		s.Equal("customer-42", *resp.BuyerID)
		s.Len(resp.Lines, 1)
	})

	s.Run("error: 400 Bad Request on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing lines", mutate: testutil.Field("lines", nil)},
			{name: "empty lines", mutate: testutil.Field("lines", []map[string]any{})},
			{name: "zero quantity", mutate: testutil.Field("lines", []map[string]any{{"productId": 1, "quantity": 0}})},
			{name: "missing product", mutate: testutil.Field("lines", []map[string]any{{"quantity": 2}})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), validSaleBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, "response: %s", rec.Body.String())
			})
		}
	})

	s.Run("error: 422 with field detail on stock violations", func() {
		available := 3
		s.mockUseCase.EXPECT().CreateSale(gomock.Any(), s.sellerID, gomock.Any()).
			Return(nil, &sale.ValidationError{
				Field:     sale.FieldQuantity,
				Message:   "insufficient stock",
				Available: &available,
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validSaleBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "insufficient stock")

		var body struct {
			Detail map[string]any `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("quantity", body.Detail["field"])
		s.Equal(float64(3), body.Detail["available"])
	})

	s.Run("error: 404 when a referenced product does not exist", func() {
		s.mockUseCase.EXPECT().CreateSale(gomock.Any(), s.sellerID, gomock.Any()).
			Return(nil, usecase.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validSaleBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 409 when stock changed concurrently", func() {
		s.mockUseCase.EXPECT().CreateSale(gomock.Any(), s.sellerID, gomock.Any()).
			Return(nil, usecase.ErrStockConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validSaleBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Stock changed")
	})
}

func (s *SaleHandlerTestSuite) TestListSales() {
	buyer := "customer-42"
	s.mockUseCase.EXPECT().ListSales(gomock.Any()).
		Return([]*readmodel.SaleListRM{
			{ID: 10, SellerID: s.sellerID, BuyerID: &buyer, Total: decimal.NewFromFloat(99.80), LineCount: 1, CreatedAt: time.Now()},
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales", nil, "")

	var resp []resdto.SaleListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal(int64(10), resp[0].ID)
	s.Equal(1, resp[0].LineCount)
}

func (s *SaleHandlerTestSuite) TestGetSale() {
	s.Run("success: returns the sale with its lines", func() {
		s.mockUseCase.EXPECT().GetSale(gomock.Any(), int64(10)).
			Return(s.saleRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales/10", nil, "")

		var resp resdto.SaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(10), resp.ID)
		s.Len(resp.Lines, 1)
	})

	s.Run("error: 404 for an unknown sale", func() {
		s.mockUseCase.EXPECT().GetSale(gomock.Any(), int64(11)).
			Return(nil, usecase.ErrSaleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales/11", nil, "")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

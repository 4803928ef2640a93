//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"safestore/internal/domain/sale"
	"safestore/internal/infra"
	"safestore/internal/pkg/clock"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"
	"safestore/tests/common/builder"
	usecasemock "safestore/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SaleUseCaseTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSaleRepo    *usecasemock.MockSaleRepository
	mockProductRepo *usecasemock.MockProductRepository
	useCase         usecase.SaleUseCase
	sellerID        uuid.UUID
}

func (s *SaleUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSaleRepo = usecasemock.NewMockSaleRepository(s.mockCtrl)
	s.mockProductRepo = usecasemock.NewMockProductRepository(s.mockCtrl)
	s.sellerID = uuid.New()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	// The pool stays nil: these cases never reach the transaction.
	s.useCase = usecase.NewSaleUseCase(nil, s.mockSaleRepo, s.mockProductRepo, clk)
}

func (s *SaleUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SaleUseCaseTestSuite))
}

func (s *SaleUseCaseTestSuite) TestCreateSaleValidation() {
	ctx := context.Background()

	s.Run("unknown product is rejected", func() {
		s.mockProductRepo.EXPECT().FindByIDs(gomock.Any(), []int64{99}).
			Return(nil, nil).Times(1)

		_, err := s.useCase.CreateSale(ctx, s.sellerID, usecase.CreateSaleParams{
			Lines: []sale.RequestLine{{ProductID: 99, Quantity: 1}},
		})

		s.ErrorIs(err, usecase.ErrProductNotFound)
	})

	s.Run("inactive product is rejected", func() {
		inactive := builder.NewProductBuilder().WithID(7).AsInactive().BuildReadModel()
		s.mockProductRepo.EXPECT().FindByIDs(gomock.Any(), []int64{7}).
			Return([]*readmodel.ProductRM{inactive}, nil).Times(1)

		_, err := s.useCase.CreateSale(ctx, s.sellerID, usecase.CreateSaleParams{
			Lines: []sale.RequestLine{{ProductID: 7, Quantity: 1}},
		})

		s.ErrorIs(err, usecase.ErrProductNotAvailable)
	})

	s.Run("non-positive quantity fails before persistence", func() {
		item := builder.NewProductBuilder().WithID(1).BuildReadModel()
		s.mockProductRepo.EXPECT().FindByIDs(gomock.Any(), []int64{1}).
			Return([]*readmodel.ProductRM{item}, nil).Times(1)

		_, err := s.useCase.CreateSale(ctx, s.sellerID, usecase.CreateSaleParams{
			Lines: []sale.RequestLine{{ProductID: 1, Quantity: 0}},
		})

		ve, ok := sale.AsValidation(err)
		s.True(ok)
		s.Equal(sale.FieldQuantity, ve.Field)
	})

	s.Run("duplicate lines merge and are checked against stock", func() {
		item := builder.NewProductBuilder().WithID(1).WithStock(5).BuildReadModel()
		s.mockProductRepo.EXPECT().FindByIDs(gomock.Any(), []int64{1}).
			Return([]*readmodel.ProductRM{item}, nil).Times(1)

		_, err := s.useCase.CreateSale(ctx, s.sellerID, usecase.CreateSaleParams{
			Lines: []sale.RequestLine{
				{ProductID: 1, Quantity: 3},
				{ProductID: 1, Quantity: 3},
			},
		})

		ve, ok := sale.AsValidation(err)
		s.True(ok)
		s.Equal(sale.FieldQuantity, ve.Field)
		s.Require().NotNil(ve.Available)
		s.Equal(5, *ve.Available)
	})

	s.Run("empty request fails draft validation", func() {
		s.mockProductRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		_, err := s.useCase.CreateSale(ctx, s.sellerID, usecase.CreateSaleParams{})

		ve, ok := sale.AsValidation(err)
		s.True(ok)
		s.Equal(sale.FieldItems, ve.Field)
	})
}

func (s *SaleUseCaseTestSuite) TestGetSale() {
	ctx := context.Background()

	s.Run("maps missing rows to not found", func() {
		s.mockSaleRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(nil, infra.WrapRepoErr("failed to find sale by id", pgx.ErrNoRows)).Times(1)

		_, err := s.useCase.GetSale(ctx, 42)

		s.ErrorIs(err, usecase.ErrSaleNotFound)
	})
}

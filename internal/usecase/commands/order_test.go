//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/patch"
	"bakery-orders/internal/usecase/commands"
	"bakery-orders/tests/common/builder"
	commandsmock "bakery-orders/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	store    *commandsmock.MockOrderStore
	clock    *clock.MockClock
	commands commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = commandsmock.NewMockOrderStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewOrderCommands(s.store, s.clock, true, logger)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestCreateOrder() {
	draft := builder.NewCakeBuilder().BuildDraft()

	s.Run("success", func() {
		created := builder.NewCakeBuilder().MustBuildDomain()
		s.store.EXPECT().Add(gomock.Any(), draft).Return(created, nil)
		s.store.EXPECT().Revision().Return(uint64(7))

		res, err := s.commands.CreateOrder(s.ctx, draft)
		s.Require().NoError(err)
		s.Equal(created.ID(), res.Order.ID())
		s.Equal(uint64(7), res.Revision)
	})

	s.Run("error: validation is marked as domain validation", func() {
		invalid := errs.Mark(order.ErrInvalidQuantity, order.ErrInvalidOrder)
		s.store.EXPECT().Add(gomock.Any(), draft).Return(nil, invalid)

		_, err := s.commands.CreateOrder(s.ctx, draft)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.ErrorIs(err, order.ErrInvalidQuantity)
	})

	s.Run("error: persistence failure propagates", func() {
		failure := errs.Mark(errors.New("unreachable"), errs.ErrPersistence)
		s.store.EXPECT().Add(gomock.Any(), draft).Return(nil, failure)

		_, err := s.commands.CreateOrder(s.ctx, draft)
		s.True(errs.Is(err, errs.ErrPersistence))
		s.False(errs.Is(err, errs.ErrDomainValidation))
	})
}

func (s *OrderCommandsTestSuite) TestUpdateOrder() {
	p := order.Patch{Customer: patch.Ptr("Débora")}

	s.Run("success", func() {
		updated := builder.NewCakeBuilder().With(func(b *builder.OrderBuilder) { b.Customer = "Débora" }).MustBuildDomain()
		s.store.EXPECT().Update(gomock.Any(), updated.ID(), p).Return(updated, nil)
		s.store.EXPECT().Revision().Return(uint64(3))

		res, err := s.commands.UpdateOrder(s.ctx, updated.ID(), p)
		s.Require().NoError(err)
		s.Equal("Débora", res.Order.Customer())
	})

	s.Run("error: not found", func() {
		s.store.EXPECT().Update(gomock.Any(), "missing", p).Return(nil, errs.ErrOrderNotFound)

		_, err := s.commands.UpdateOrder(s.ctx, "missing", p)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}

func (s *OrderCommandsTestSuite) TestDeleteOrder() {
	s.store.EXPECT().Delete(gomock.Any(), "abc").Return(nil)
	s.store.EXPECT().Revision().Return(uint64(9))

	rev, err := s.commands.DeleteOrder(s.ctx, "abc")
	s.Require().NoError(err)
	s.Equal(uint64(9), rev)
}

func (s *OrderCommandsTestSuite) TestRefreshOrders() {
	s.store.EXPECT().Load(gomock.Any()).Return(nil)
	s.store.EXPECT().Revision().Return(uint64(2))

	rev, err := s.commands.RefreshOrders(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), rev)
}

func (s *OrderCommandsTestSuite) TestResetAndSeed() {
	s.Run("success: seed inserts sample orders dated around today", func() {
		s.store.EXPECT().Import(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, drafts []order.Draft) ([]order.Order, error) {
				out := make([]order.Order, 0, len(drafts))
				for _, d := range drafts {
					o, err := d.Build()
					s.Require().NoError(err)
					out = append(out, o)
				}
				s.Equal("2025-06-05", string(drafts[0].Date))
				return out, nil
			})
		s.store.EXPECT().Revision().Return(uint64(1))

		n, _, err := s.commands.SeedOrders(s.ctx)
		s.Require().NoError(err)
		s.Equal(len(commands.SampleOrders(s.clock.Now())), n)
	})

	s.Run("success: reset", func() {
		s.store.EXPECT().Reset(gomock.Any()).Return(nil)
		s.store.EXPECT().Revision().Return(uint64(5))

		_, err := s.commands.ResetOrders(s.ctx)
		s.NoError(err)
	})

	s.Run("error: disabled outside development", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		locked := commands.NewOrderCommands(s.store, s.clock, false, logger)

		_, err := locked.ResetOrders(s.ctx)
		s.ErrorIs(err, errs.ErrFeatureDisabled)

		_, _, err = locked.SeedOrders(s.ctx)
		s.ErrorIs(err, errs.ErrFeatureDisabled)
	})
}

package keeper

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/testutil"
	"github.com/lrpchain/lrp/x/payment/types"
)

type fakeCurrencies struct {
	accepted map[string]bool
}

func newFakeCurrencies() *fakeCurrencies {
	return &fakeCurrencies{accepted: make(map[string]bool)}
}

func (f *fakeCurrencies) IsCurrencyAccepted(_ sdk.Context, merchant sdk.AccAddress, id types.CurrencyID) bool {
	if id.Native {
		return true
	}
	return f.accepted[merchant.String()]
}

type PaymentTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    Keeper
	ledger    *testutil.FakeLedger
	currency  *fakeCurrencies
	alice     sdk.AccAddress
	bob       sdk.AccAddress
}

func (s *PaymentTestSuite) SetupTest() {
	skey := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.NewStoreContext(s.T(), skey)
	s.ledger = testutil.NewFakeLedger()
	s.currency = newFakeCurrencies()
	s.keeper = NewKeeper(skey, s.ledger, s.currency, nil)
	s.Require().NoError(s.keeper.SetParams(s.ctx, types.DefaultParams()))

	s.alice = sdk.AccAddress("alice-account-address1")
	s.bob = sdk.AccAddress("bob-account-address111")
	s.ledger.Fund(ledger.NativeCurrency, s.alice, sdkmath.NewInt(1000))
	s.ledger.Fund(ledger.NativeCurrency, s.bob, sdkmath.NewInt(1000))
}

func TestPaymentTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentTestSuite))
}

func (s *PaymentTestSuite) TestHappyPathRoundTrip() {
	hash, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(100), ledger.NativeCurrency, "invoice #1", nil)
	s.Require().NoError(err)
	s.Require().Equal(sdkmath.NewInt(900), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, s.alice))

	s.Require().NoError(s.keeper.AcceptPayment(s.ctx, s.bob, hash))
	s.Require().NoError(s.keeper.FulfillPayment(s.ctx, s.bob, hash))
	s.Require().NoError(s.keeper.CompletePayment(s.ctx, s.alice, hash))

	s.Require().Equal(sdkmath.NewInt(900), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, s.alice))
	s.Require().Equal(sdkmath.NewInt(1100), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, s.bob))

	p, found := s.keeper.GetPaymentRecord(s.ctx, hash)
	s.Require().True(found)
	s.Require().Equal(types.StatusCompleted, p.Status)
}

func (s *PaymentTestSuite) TestCreatePaymentRequiresAcceptedCurrency() {
	unregistered := ledger.CurrencyID{Hash: [32]byte{9}}
	_, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(10), unregistered, "", nil)
	s.Require().ErrorIs(err, types.ErrUnacceptedCurrency)
}

func (s *PaymentTestSuite) TestAutoExpiry() {
	hash, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(100), ledger.NativeCurrency, "", nil)
	s.Require().NoError(err)

	ctxLater := s.ctx.WithBlockTime(s.ctx.BlockTime().Add(8 * 24 * time.Hour))
	s.keeper.SweepExpiredPending(ctxLater)

	p, found := s.keeper.GetPaymentRecord(ctxLater, hash)
	s.Require().True(found)
	s.Require().Equal(types.StatusExpired, p.Status)
	s.Require().Equal(sdkmath.NewInt(1000), s.ledger.FreeBalance(ctxLater, ledger.NativeCurrency, s.alice))
}

func (s *PaymentTestSuite) TestAutoCompletion() {
	hash, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(100), ledger.NativeCurrency, "", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.keeper.AcceptPayment(s.ctx, s.bob, hash))
	s.Require().NoError(s.keeper.FulfillPayment(s.ctx, s.bob, hash))

	ctxLater := s.ctx.WithBlockTime(s.ctx.BlockTime().Add(4 * 24 * time.Hour))
	s.keeper.SweepFulfilledCompletion(ctxLater)

	p, found := s.keeper.GetPaymentRecord(ctxLater, hash)
	s.Require().True(found)
	s.Require().Equal(types.StatusCompleted, p.Status)
	s.Require().Equal(sdkmath.NewInt(1100), s.ledger.FreeBalance(ctxLater, ledger.NativeCurrency, s.bob))
}

func (s *PaymentTestSuite) TestCancelFromPendingAndAccepted() {
	hash, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(50), ledger.NativeCurrency, "", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.keeper.CancelPayment(s.ctx, s.alice, hash))
	s.Require().Equal(sdkmath.NewInt(1000), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, s.alice))

	hash2, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(50), ledger.NativeCurrency, "", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.keeper.AcceptPayment(s.ctx, s.bob, hash2))
	s.Require().NoError(s.keeper.CancelPayment(s.ctx, s.bob, hash2))
	s.Require().Equal(sdkmath.NewInt(1000), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, s.alice))
}

func (s *PaymentTestSuite) TestCanDisputeAndDisputePayment() {
	hash, err := s.keeper.CreatePayment(s.ctx, s.alice, s.bob, sdkmath.NewInt(50), ledger.NativeCurrency, "", nil)
	s.Require().NoError(err)
	s.Require().False(s.keeper.CanDispute(s.ctx, hash))

	s.Require().NoError(s.keeper.AcceptPayment(s.ctx, s.bob, hash))
	s.Require().True(s.keeper.CanDispute(s.ctx, hash))

	s.Require().NoError(s.keeper.DisputePayment(s.ctx, hash))
	p, _ := s.keeper.GetPaymentRecord(s.ctx, hash)
	s.Require().Equal(types.StatusDisputed, p.Status)
	s.Require().False(s.keeper.CanDispute(s.ctx, hash))
}

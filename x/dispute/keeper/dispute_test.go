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
	"github.com/lrpchain/lrp/x/dispute/types"
)

// fakePayments is a minimal types.PaymentKeeper stand-in backing a single
// in-memory payment record, enough to exercise the dispute engine without
// pulling in the full payment keeper.
type fakePayments struct {
	payer, payee string
	amount       sdkmath.Int
	currency     ledger.CurrencyID
	disputable   bool
	disputed     bool
}

func (f *fakePayments) CanDispute(_ sdk.Context, _ [32]byte) bool { return f.disputable && !f.disputed }

func (f *fakePayments) GetPayment(_ sdk.Context, _ [32]byte) (string, string, sdkmath.Int, ledger.CurrencyID, bool) {
	return f.payer, f.payee, f.amount, f.currency, true
}

func (f *fakePayments) DisputePayment(_ sdk.Context, _ [32]byte) error {
	f.disputed = true
	return nil
}

// fakeResolvers is a minimal types.ResolverKeeper stand-in that draws
// resolvers round-robin from a fixed pool and records credibility deltas.
type fakeResolvers struct {
	pool        []string
	next        int
	credibility map[string]int64
}

func newFakeResolvers(pool ...string) *fakeResolvers {
	return &fakeResolvers{pool: pool, credibility: make(map[string]int64)}
}

func (f *fakeResolvers) GetResolver(_ sdk.Context, _ [32]byte, excluded []string) (string, error) {
	excludedSet := make(map[string]bool, len(excluded))
	for _, e := range excluded {
		excludedSet[e] = true
	}
	for i := 0; i < len(f.pool); i++ {
		candidate := f.pool[(f.next+i)%len(f.pool)]
		if !excludedSet[candidate] {
			f.next = (f.next + i + 1) % len(f.pool)
			return candidate, nil
		}
	}
	return "", types.ErrDisputeNotFound.Wrap("no resolver available")
}

func (f *fakeResolvers) IncreaseCredibility(_ sdk.Context, owner string, delta uint32) error {
	f.credibility[owner] += int64(delta)
	return nil
}

func (f *fakeResolvers) DecreaseCredibility(_ sdk.Context, owner string, delta uint32) error {
	f.credibility[owner] -= int64(delta)
	return nil
}

type DisputeTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    Keeper
	ledgr     *testutil.FakeLedger
	payments  *fakePayments
	resolvers *fakeResolvers
	payer     sdk.AccAddress
	payee     sdk.AccAddress
}

func (s *DisputeTestSuite) SetupTest() {
	skey := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.NewStoreContext(s.T(), skey)
	s.ledgr = testutil.NewFakeLedger()
	s.payer = sdk.AccAddress("payer-account-address1")
	s.payee = sdk.AccAddress("payee-account-address1")
	s.payments = &fakePayments{
		payer:      s.payer.String(),
		payee:      s.payee.String(),
		amount:     sdkmath.NewInt(500),
		currency:   ledger.NativeCurrency,
		disputable: true,
	}
	s.resolvers = newFakeResolvers(
		sdk.AccAddress("resolver-one0000000001").String(),
		sdk.AccAddress("resolver-two0000000002").String(),
		sdk.AccAddress("resolver-three00000003").String(),
	)
	s.keeper = NewKeeper(skey, s.ledgr, s.payments, s.resolvers, nil)
	s.Require().NoError(s.keeper.SetParams(s.ctx, types.DefaultParams()))

	s.ledgr.Fund(ledger.NativeCurrency, s.payer, sdkmath.NewInt(500))
	// The escrowed amount itself (500) is reserved elsewhere by the payment
	// engine; reserve it here directly to model that pre-existing state.
	s.Require().NoError(s.ledgr.Reserve(s.ctx, ledger.NativeCurrency, s.payer, sdkmath.NewInt(500)))
	s.ledgr.Fund(ledger.NativeCurrency, s.payer, sdkmath.NewInt(100_000))
	s.ledgr.Fund(ledger.NativeCurrency, s.payee, sdkmath.NewInt(100_000))
}

func TestDisputeTestSuite(t *testing.T) {
	suite.Run(t, new(DisputeTestSuite))
}

var testPaymentHash = [32]byte{1, 2, 3}

func (s *DisputeTestSuite) TestResolvedForPayerOnTimeoutWithoutFight() {
	s.Require().NoError(s.keeper.CreateDispute(s.ctx, s.payer, testPaymentHash, []byte("evidence")))
	d, found := s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	s.Require().True(found)
	s.Require().Equal(types.StatusFinalizing, d.Status)
	s.Require().Equal(types.JudgmentReleaseFundToPayer, d.Outcome)

	later := s.ctx.WithBlockTime(s.ctx.BlockTime().Add(4 * 24 * time.Hour))
	s.keeper.SweepFinalizingDisputes(later)

	d, found = s.keeper.GetDisputeRecord(later, testPaymentHash)
	s.Require().True(found)
	s.Require().Equal(types.StatusResolved, d.Status)
	s.Require().True(s.payments.disputed)
}

func (s *DisputeTestSuite) TestFightDrawsResolversAndPayeeCanWin() {
	s.Require().NoError(s.keeper.CreateDispute(s.ctx, s.payer, testPaymentHash, []byte("evidence")))
	s.Require().NoError(s.keeper.FightDispute(s.ctx, s.payee, testPaymentHash, []byte("rebuttal")))

	d, found := s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	s.Require().True(found)
	s.Require().Equal(types.StatusEvaluating, d.Status)
	s.Require().Len(d.Resolvers, 1)

	// The fake resolver pool already stores bech32-encoded owner strings, the
	// same shape the real resolver network hands back.
	resolverAcc, err := sdk.AccAddressFromBech32(d.Resolvers[0])
	s.Require().NoError(err)
	s.Require().NoError(s.keeper.ProposeOutcome(s.ctx, resolverAcc, testPaymentHash, types.JudgmentReleaseFundToPayee))

	d, found = s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	s.Require().True(found)
	s.Require().Equal(types.StatusFinalizing, d.Status)
	s.Require().Equal(types.JudgmentReleaseFundToPayee, d.Outcome)

	later := s.ctx.WithBlockTime(s.ctx.BlockTime().Add(4 * 24 * time.Hour))
	s.keeper.SweepFinalizingDisputes(later)

	d, found = s.keeper.GetDisputeRecord(later, testPaymentHash)
	s.Require().True(found)
	s.Require().Equal(types.StatusResolved, d.Status)
	s.Require().Equal(int64(5), s.resolvers.credibility[resolverAcc.String()])
}

func (s *DisputeTestSuite) TestEscalateFlipsDefaultOutcomeAndGrowsFee() {
	s.Require().NoError(s.keeper.CreateDispute(s.ctx, s.payer, testPaymentHash, nil))
	d, _ := s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	originalFee := d.Fee

	s.Require().NoError(s.keeper.EscalateDispute(s.ctx, s.payee, testPaymentHash))
	d, found := s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	s.Require().True(found)
	s.Require().Equal(types.JudgmentReleaseFundToPayee, d.Outcome)
	s.Require().True(d.Fee.GT(originalFee))
	s.Require().Equal(types.StatusFinalizing, d.Status)
}

func (s *DisputeTestSuite) TestProposeOutcomeRejectsDuplicateJudgment() {
	s.Require().NoError(s.keeper.CreateDispute(s.ctx, s.payer, testPaymentHash, nil))
	s.Require().NoError(s.keeper.FightDispute(s.ctx, s.payee, testPaymentHash, nil))
	d, _ := s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	resolverAcc, err := sdk.AccAddressFromBech32(d.Resolvers[0])
	s.Require().NoError(err)

	s.Require().NoError(s.keeper.ProposeOutcome(s.ctx, resolverAcc, testPaymentHash, types.JudgmentReleaseFundToPayer))
	err = s.keeper.ProposeOutcome(s.ctx, resolverAcc, testPaymentHash, types.JudgmentReleaseFundToPayee)
	s.Require().ErrorIs(err, types.ErrAlreadyJudged)

	d, _ = s.keeper.GetDisputeRecord(s.ctx, testPaymentHash)
	s.Require().Len(d.Judgments, 1)
}

func (s *DisputeTestSuite) TestFightRejectsNonAggrievedCaller() {
	s.Require().NoError(s.keeper.CreateDispute(s.ctx, s.payer, testPaymentHash, nil))
	// Outcome defaults to ReleaseFundToPayer; only the payee is aggrieved.
	err := s.keeper.FightDispute(s.ctx, s.payer, testPaymentHash, nil)
	s.Require().ErrorIs(err, types.ErrAccessDenied)
}

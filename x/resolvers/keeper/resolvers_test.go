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
	"github.com/lrpchain/lrp/x/resolvers/types"
)

type fakeIdentities struct {
	credibility map[string]uint32
}

func newFakeIdentities() *fakeIdentities {
	return &fakeIdentities{credibility: make(map[string]uint32)}
}

func (f *fakeIdentities) HasIdentity(ctx sdk.Context, owner string) bool {
	_, ok := f.credibility[owner]
	return ok
}

func (f *fakeIdentities) GetCredibility(ctx sdk.Context, owner string) (uint32, bool) {
	v, ok := f.credibility[owner]
	return v, ok
}

func (f *fakeIdentities) IncreaseCredibility(ctx sdk.Context, owner string, delta uint32) error {
	f.credibility[owner] += delta
	return nil
}

func (f *fakeIdentities) DecreaseCredibility(ctx sdk.Context, owner string, delta uint32) error {
	if delta >= f.credibility[owner] {
		f.credibility[owner] = 0
	} else {
		f.credibility[owner] -= delta
	}
	return nil
}

type fakeRandom struct{}

func (fakeRandom) Random(seed []byte) ([]byte, int64) { return seed, 1 }

type ResolversTestSuite struct {
	suite.Suite
	ctx        sdk.Context
	keeper     Keeper
	ledger     *testutil.FakeLedger
	identities *fakeIdentities
}

func (s *ResolversTestSuite) SetupTest() {
	skey := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.NewStoreContext(s.T(), skey)
	s.ledger = testutil.NewFakeLedger()
	s.identities = newFakeIdentities()
	s.keeper = NewKeeper(skey, s.ledger, s.identities, fakeRandom{}, nil)
	s.Require().NoError(s.keeper.SetParams(s.ctx, types.DefaultParams()))
}

func TestResolversTestSuite(t *testing.T) {
	suite.Run(t, new(ResolversTestSuite))
}

func (s *ResolversTestSuite) TestJoinRequiresIdentityAndCredibility() {
	applicant := sdk.AccAddress("applicant-account-addr")
	s.ledger.Fund(ledger.NativeCurrency, applicant, sdkmath.NewInt(10_000_000))

	err := s.keeper.Join(s.ctx, applicant, []byte("app"), sdkmath.NewInt(1_000_000))
	s.Require().ErrorIs(err, types.ErrIdentityRequired)

	s.identities.credibility[applicant.String()] = 10
	err = s.keeper.Join(s.ctx, applicant, []byte("app"), sdkmath.NewInt(1_000_000))
	s.Require().ErrorIs(err, types.ErrCredibilityTooLow)

	s.identities.credibility[applicant.String()] = 80
	err = s.keeper.Join(s.ctx, applicant, []byte("app"), sdkmath.NewInt(50_000))
	s.Require().ErrorIs(err, types.ErrNotMeetMinimumSelfStake)

	err = s.keeper.Join(s.ctx, applicant, []byte("app"), sdkmath.NewInt(1_000_000))
	s.Require().NoError(err)

	r, found := s.keeper.GetResolverRecord(s.ctx, applicant.String())
	s.Require().True(found)
	s.Require().Equal(types.StatusActive, r.Status)
}

func (s *ResolversTestSuite) TestDelegateAndUndelegateSchedulesPendingFund() {
	resolver := sdk.AccAddress("resolver-account-address")
	delegator := sdk.AccAddress("delegator-account-addr")
	s.ledger.Fund(ledger.NativeCurrency, resolver, sdkmath.NewInt(10_000_000))
	s.ledger.Fund(ledger.NativeCurrency, delegator, sdkmath.NewInt(10_000_000))
	s.identities.credibility[resolver.String()] = 80

	s.Require().NoError(s.keeper.Join(s.ctx, resolver, []byte("app"), sdkmath.NewInt(100_000)))
	r, _ := s.keeper.GetResolverRecord(s.ctx, resolver.String())
	s.Require().Equal(types.StatusCandidacy, r.Status)

	s.Require().NoError(s.keeper.Delegate(s.ctx, delegator, resolver, sdkmath.NewInt(1_000_000)))
	r, _ = s.keeper.GetResolverRecord(s.ctx, resolver.String())
	s.Require().Equal(types.StatusActive, r.Status)
	s.Require().Equal(sdkmath.NewInt(1_100_000), r.TotalStake)

	s.Require().NoError(s.keeper.Undelegate(s.ctx, delegator, resolver, sdkmath.NewInt(1_000_000)))
	r, _ = s.keeper.GetResolverRecord(s.ctx, resolver.String())
	s.Require().Equal(types.StatusCandidacy, r.Status)

	s.Require().Equal(sdkmath.NewInt(9_000_000), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, delegator))

	ctxLater := s.ctx.WithBlockTime(s.ctx.BlockTime().Add(8 * 24 * time.Hour))
	s.keeper.ReleasePendingFunds(ctxLater)
	s.Require().Equal(sdkmath.NewInt(10_000_000), s.ledger.FreeBalance(ctxLater, ledger.NativeCurrency, delegator))
}

func (s *ResolversTestSuite) TestGetResolverExcludesAndFailsWhenEmpty() {
	_, err := s.keeper.GetResolver(s.ctx, [32]byte{1}, nil)
	s.Require().ErrorIs(err, types.ErrNoAnyActiveResolver)

	resolver := sdk.AccAddress("resolver-account-address")
	s.ledger.Fund(ledger.NativeCurrency, resolver, sdkmath.NewInt(10_000_000))
	s.identities.credibility[resolver.String()] = 80
	s.Require().NoError(s.keeper.Join(s.ctx, resolver, []byte("app"), sdkmath.NewInt(1_000_000)))

	chosen, err := s.keeper.GetResolver(s.ctx, [32]byte{1}, nil)
	s.Require().NoError(err)
	s.Require().Equal(resolver.String(), chosen)

	_, err = s.keeper.GetResolver(s.ctx, [32]byte{1}, []string{resolver.String()})
	s.Require().ErrorIs(err, types.ErrNoAnyActiveResolver)
}

func (s *ResolversTestSuite) TestDecreaseCredibilityTerminatesBelowThreshold() {
	resolver := sdk.AccAddress("resolver-account-address")
	s.ledger.Fund(ledger.NativeCurrency, resolver, sdkmath.NewInt(10_000_000))
	s.identities.credibility[resolver.String()] = 40
	s.Require().NoError(s.keeper.Join(s.ctx, resolver, []byte("app"), sdkmath.NewInt(1_000_000)))

	s.Require().NoError(s.keeper.DecreaseCredibility(s.ctx, resolver.String(), 20))

	r, _ := s.keeper.GetResolverRecord(s.ctx, resolver.String())
	s.Require().Equal(types.StatusTerminated, r.Status)
	s.Require().True(r.TotalStake.IsZero())
}

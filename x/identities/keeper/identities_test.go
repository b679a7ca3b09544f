package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/testutil"
	"github.com/lrpchain/lrp/x/identities/types"
)

type fakeOffchain struct {
	blobs map[string][]byte
}

func (f *fakeOffchain) Set(key, value []byte) {
	if f.blobs == nil {
		f.blobs = make(map[string][]byte)
	}
	f.blobs[string(key)] = value
}

type IdentitiesTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper Keeper
	ledger *testutil.FakeLedger
}

func (s *IdentitiesTestSuite) SetupTest() {
	skey := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.NewStoreContext(s.T(), skey)
	s.ledger = testutil.NewFakeLedger()
	s.keeper = NewKeeper(skey, s.ledger, &fakeOffchain{})
	s.Require().NoError(s.keeper.SetParams(s.ctx, types.DefaultParams()))
}

func TestIdentitiesTestSuite(t *testing.T) {
	suite.Run(t, new(IdentitiesTestSuite))
}

func (s *IdentitiesTestSuite) TestCreateIdentityStartsAtInitialCredibility() {
	err := s.keeper.CreateIdentity(s.ctx, "alice", "Alice", types.KindIndividual)
	s.Require().NoError(err)

	id, found := s.keeper.GetIdentity(s.ctx, "alice")
	s.Require().True(found)
	s.Require().Equal(types.DefaultParams().InitialCredibility, id.Credibility)

	err = s.keeper.CreateIdentity(s.ctx, "alice", "Alice2", types.KindIndividual)
	s.Require().ErrorIs(err, types.ErrIdentityExisted)
}

func (s *IdentitiesTestSuite) TestRemoveIdentityClearsFieldsKeepsReviews() {
	s.Require().NoError(s.keeper.CreateIdentity(s.ctx, "alice", "Alice", types.KindIndividual))
	s.Require().NoError(s.keeper.AddField(s.ctx, "alice", types.IdentityField{Name: "site", Value: "example.com", VerifyMethod: types.VerifyDomain}))
	s.Require().NoError(s.keeper.CreateIdentity(s.ctx, "bob", "Bob", types.KindIndividual))
	s.Require().NoError(s.keeper.ReviewIdentity(s.ctx, "bob", "alice", []byte("good trader")))

	s.Require().NoError(s.keeper.RemoveIdentity(s.ctx, "alice"))

	id, found := s.keeper.GetIdentity(s.ctx, "alice")
	s.Require().True(found)
	s.Require().Empty(id.Name)
	s.Require().Empty(id.Data)
	s.Require().Len(id.Reviews, 1)
}

func (s *IdentitiesTestSuite) TestReviewIdentityOncePerReviewer() {
	s.Require().NoError(s.keeper.CreateIdentity(s.ctx, "alice", "Alice", types.KindIndividual))
	s.Require().NoError(s.keeper.ReviewIdentity(s.ctx, "bob", "alice", []byte("ok")))
	err := s.keeper.ReviewIdentity(s.ctx, "bob", "alice", []byte("again"))
	s.Require().ErrorIs(err, types.ErrCanOnlyReviewOnce)
}

func (s *IdentitiesTestSuite) TestAddFieldValidatesDomainAndEmail() {
	s.Require().NoError(s.keeper.CreateIdentity(s.ctx, "alice", "Alice", types.KindIndividual))

	err := s.keeper.AddField(s.ctx, "alice", types.IdentityField{Name: "site", Value: "bad", VerifyMethod: types.VerifyDomain})
	s.Require().ErrorIs(err, types.ErrInvalidDomain)

	err = s.keeper.AddField(s.ctx, "alice", types.IdentityField{Name: "mail", Value: "not-an-email", VerifyMethod: types.VerifyEmail})
	s.Require().ErrorIs(err, types.ErrInvalidEmail)

	err = s.keeper.AddField(s.ctx, "alice", types.IdentityField{Name: "mail", Value: "a@example.com", VerifyMethod: types.VerifyEmail})
	s.Require().NoError(err)
}

func (s *IdentitiesTestSuite) TestCredibilitySaturatesAndClampsAtZero() {
	s.Require().NoError(s.keeper.CreateIdentity(s.ctx, "alice", "Alice", types.KindIndividual))

	s.Require().NoError(s.keeper.IncreaseCredibility(s.ctx, "alice", 1000))
	cred, _ := s.keeper.GetCredibility(s.ctx, "alice")
	s.Require().Equal(types.DefaultParams().MaxCredibility, cred)

	s.Require().NoError(s.keeper.DecreaseCredibility(s.ctx, "alice", 1000))
	cred, _ = s.keeper.GetCredibility(s.ctx, "alice")
	s.Require().Zero(cred)
}

func (s *IdentitiesTestSuite) TestEvaluatorWorkflow() {
	evaluator := sdk.AccAddress("evaluator-account-address")
	requestor := sdk.AccAddress("requestor-account-addr")

	s.ledger.Fund(ledger.NativeCurrency, evaluator, types.DefaultParams().EvaluatorBonding)
	s.ledger.Fund(ledger.NativeCurrency, requestor, sdkmath.NewInt(1000))

	s.Require().NoError(s.keeper.CreateEvaluator(s.ctx, evaluator, "Eval", "about", sdkmath.NewInt(10)))
	_, found := s.keeper.GetEvaluator(s.ctx, evaluator.String())
	s.Require().True(found)

	err := s.keeper.CreateEvaluator(s.ctx, evaluator, "Eval2", "about", sdkmath.NewInt(10))
	s.Require().ErrorIs(err, types.ErrEvaluatorExisted)

	s.Require().NoError(s.keeper.CreateIdentity(s.ctx, requestor.String(), "Requestor", types.KindIndividual))
	s.Require().NoError(s.keeper.AddField(s.ctx, requestor.String(), types.IdentityField{Name: "site", Value: "example.com", VerifyMethod: types.VerifyDomain}))

	s.Require().NoError(s.keeper.RequestToVerify(s.ctx, requestor, []uint32{0}, evaluator))
	s.Require().Equal(sdkmath.NewInt(990), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, requestor))
	s.Require().Equal(sdkmath.NewInt(10), s.ledger.FreeBalance(s.ctx, ledger.NativeCurrency, evaluator))

	err = s.keeper.VerifyData(s.ctx, evaluator, requestor.String(), []types.TranscriptEntry{{Position: 1, IsValid: true}})
	s.Require().ErrorIs(err, types.ErrInvalidTranscript)

	s.Require().NoError(s.keeper.VerifyData(s.ctx, evaluator, requestor.String(), []types.TranscriptEntry{{Position: 0, IsValid: true}}))

	id, _ := s.keeper.GetIdentity(s.ctx, requestor.String())
	s.Require().True(id.Data[0].IsVerified)
	s.Require().Equal(evaluator.String(), id.Data[0].VerifiedBy)
}

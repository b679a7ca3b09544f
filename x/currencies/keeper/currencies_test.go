package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/lrpchain/lrp/testutil"
	"github.com/lrpchain/lrp/x/currencies/types"
)

type CurrenciesTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper Keeper
	ledger *testutil.FakeLedger
}

func (s *CurrenciesTestSuite) SetupTest() {
	skey := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.NewStoreContext(s.T(), skey)
	s.ledger = testutil.NewFakeLedger()
	s.keeper = NewKeeper(skey, s.ledger)
	s.Require().NoError(s.keeper.SetParams(s.ctx, types.DefaultParams()))
}

func TestCurrenciesTestSuite(t *testing.T) {
	suite.Run(t, new(CurrenciesTestSuite))
}

func (s *CurrenciesTestSuite) issuer() sdk.AccAddress {
	return sdk.AccAddress("issuer-account-address")
}

func (s *CurrenciesTestSuite) fundIssuer(addr sdk.AccAddress) {
	params := s.keeper.GetParams(s.ctx)
	s.ledger.Fund(types.NativeCurrencyID, addr, params.BondingAmount)
}

func (s *CurrenciesTestSuite) TestCreateCurrencyReservesBonding() {
	issuer := s.issuer()
	s.fundIssuer(issuer)

	id, err := s.keeper.CreateCurrency(s.ctx, issuer, types.CurrencyMetadata{
		Name: "US Dollar", Symbol: "USD", Decimals: 2,
	})
	s.Require().NoError(err)
	s.Require().False(id.Native)

	meta, found := s.keeper.GetCurrency(s.ctx, id)
	s.Require().True(found)
	s.Require().Equal(issuer.String(), meta.Issuer)

	params := s.keeper.GetParams(s.ctx)
	s.Require().True(s.ledger.FreeBalance(s.ctx, types.NativeCurrencyID, issuer).IsZero())
	_ = params
}

func (s *CurrenciesTestSuite) TestCreateCurrencyInsufficientBondingFails() {
	issuer := s.issuer()
	_, err := s.keeper.CreateCurrency(s.ctx, issuer, types.CurrencyMetadata{
		Name: "Euro", Symbol: "EUR", Decimals: 2,
	})
	s.Require().ErrorIs(err, types.ErrInsufficientBalance)
}

func (s *CurrenciesTestSuite) TestCreateCurrencyDuplicateMetadataCollides() {
	issuer := s.issuer()
	s.fundIssuer(issuer)
	s.fundIssuer(issuer)

	meta := types.CurrencyMetadata{Name: "Peso", Symbol: "PES", Decimals: 2}
	_, err := s.keeper.CreateCurrency(s.ctx, issuer, meta)
	s.Require().NoError(err)

	_, err = s.keeper.CreateCurrency(s.ctx, issuer, meta)
	s.Require().ErrorIs(err, types.ErrCurrencyExisted)
}

func (s *CurrenciesTestSuite) TestRemoveCurrencyReturnsBondAndOnlyIssuerMayRemove() {
	issuer := s.issuer()
	s.fundIssuer(issuer)

	id, err := s.keeper.CreateCurrency(s.ctx, issuer, types.CurrencyMetadata{
		Name: "Yen", Symbol: "YEN", Decimals: 0,
	})
	s.Require().NoError(err)

	other := sdk.AccAddress("someone-else-address")
	err = s.keeper.RemoveCurrency(s.ctx, other, id)
	s.Require().ErrorIs(err, types.ErrNotCurrencyIssuer)

	err = s.keeper.RemoveCurrency(s.ctx, issuer, id)
	s.Require().NoError(err)

	params := s.keeper.GetParams(s.ctx)
	s.Require().Equal(params.BondingAmount, s.ledger.FreeBalance(s.ctx, types.NativeCurrencyID, issuer))

	_, found := s.keeper.GetCurrency(s.ctx, id)
	s.Require().False(found)
}

func (s *CurrenciesTestSuite) TestAcceptCurrencyAllowsDuplicatesAndNativeIsImplicit() {
	issuer := s.issuer()
	s.fundIssuer(issuer)
	merchant := sdk.AccAddress("merchant-account-address")

	id, err := s.keeper.CreateCurrency(s.ctx, issuer, types.CurrencyMetadata{
		Name: "Franc", Symbol: "CHF", Decimals: 2,
	})
	s.Require().NoError(err)

	s.Require().True(s.keeper.IsCurrencyAccepted(s.ctx, merchant, types.NativeCurrencyID))
	s.Require().False(s.keeper.IsCurrencyAccepted(s.ctx, merchant, id))

	s.Require().NoError(s.keeper.AcceptCurrency(s.ctx, merchant, id))
	s.Require().NoError(s.keeper.AcceptCurrency(s.ctx, merchant, id))
	s.Require().True(s.keeper.IsCurrencyAccepted(s.ctx, merchant, id))
}

func (s *CurrenciesTestSuite) TestAcceptUnknownCurrencyFails() {
	merchant := sdk.AccAddress("merchant-account-address")
	unknown := types.CurrencyID{Hash: [32]byte{0xFF}}
	err := s.keeper.AcceptCurrency(s.ctx, merchant, unknown)
	s.Require().ErrorIs(err, types.ErrCurrencyNotFound)
}

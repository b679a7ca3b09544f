// Package app wires every LRP module keeper together into a runnable
// Cosmos SDK application, the composition root Design Notes §9 calls for:
// explicit interfaces handed to each keeper at construction time rather
// than threaded as package globals. Grounded on
// virtengine-virtengine/app/app.go's NewApp/BeginBlocker/EndBlocker shape,
// trimmed to the modules this chain actually needs.
package app

import (
	"fmt"
	"io"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	abci "github.com/cometbft/cometbft/abci/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lrpchain/lrp/app/bankledger"
	"github.com/lrpchain/lrp/app/beacon"
	"github.com/lrpchain/lrp/app/offchainstore"
	"github.com/lrpchain/lrp/platform"
	"github.com/lrpchain/lrp/x/currencies"
	currencieskeeper "github.com/lrpchain/lrp/x/currencies/keeper"
	currenciestypes "github.com/lrpchain/lrp/x/currencies/types"
	"github.com/lrpchain/lrp/x/dispute"
	disputekeeper "github.com/lrpchain/lrp/x/dispute/keeper"
	disputetypes "github.com/lrpchain/lrp/x/dispute/types"
	"github.com/lrpchain/lrp/x/identities"
	identitieskeeper "github.com/lrpchain/lrp/x/identities/keeper"
	identitiestypes "github.com/lrpchain/lrp/x/identities/types"
	"github.com/lrpchain/lrp/x/payment"
	paymentkeeper "github.com/lrpchain/lrp/x/payment/keeper"
	paymenttypes "github.com/lrpchain/lrp/x/payment/types"
	"github.com/lrpchain/lrp/x/resolvers"
	resolverskeeper "github.com/lrpchain/lrp/x/resolvers/keeper"
	resolverstypes "github.com/lrpchain/lrp/x/resolvers/types"
)

// Name is the binary/chain name.
const Name = "lrpchain"

// Bech32Prefix is this chain's account address prefix.
const Bech32Prefix = "lrp"

// ModuleAccountPerms lists every module account and the bank permissions it
// holds. The shared escrow account is a plain holding account: it neither
// mints nor burns, it only custodies reserved balances on other modules'
// behalf (see app/bankledger.Adapter).
func ModuleAccountPerms() map[string][]string {
	return map[string][]string{
		authtypes.FeeCollectorName: nil,
		bankledger.ModuleName:      nil,
	}
}

// App is the LRP chain application.
type App struct {
	*baseapp.BaseApp

	cdc               codec.Codec
	interfaceRegistry cdctypes.InterfaceRegistry

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper

	CurrenciesKeeper currencieskeeper.Keeper
	IdentitiesKeeper identitieskeeper.Keeper
	ResolversKeeper  resolverskeeper.Keeper
	PaymentKeeper    paymentkeeper.Keeper
	DisputeKeeper    disputekeeper.Keeper

	beacon *beacon.Beacon

	mm *module.Manager
}

// NewApp constructs the LRP application: mounts every module's store key,
// wires the bank-backed ledger adapter, builds each domain keeper against
// its narrow expected-keeper interfaces, and fixes the cross-module
// InitGenesis/EndBlock order.
func NewApp(logger log.Logger, db dbm.DB, traceStore io.Writer, loadLatest bool, options ...func(*baseapp.BaseApp)) *App {
	interfaceRegistry := cdctypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	currenciestypes.RegisterInterfaces(interfaceRegistry)
	identitiestypes.RegisterInterfaces(interfaceRegistry)
	resolverstypes.RegisterInterfaces(interfaceRegistry)
	paymenttypes.RegisterInterfaces(interfaceRegistry)
	disputetypes.RegisterInterfaces(interfaceRegistry)

	bapp := baseapp.NewBaseApp(Name, logger, db, nil, options...)
	bapp.SetCommitMultiStoreTracer(traceStore)
	bapp.SetInterfaceRegistry(interfaceRegistry)

	keys := storetypes.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		currenciestypes.StoreKey,
		identitiestypes.StoreKey,
		resolverstypes.StoreKey,
		paymenttypes.StoreKey,
		disputetypes.StoreKey,
	)

	app := &App{
		BaseApp:           bapp,
		cdc:               cdc,
		interfaceRegistry: interfaceRegistry,
		beacon:            beacon.New(),
	}

	addressCodec := address.NewBech32Codec(Bech32Prefix)

	app.AccountKeeper = authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		ModuleAccountPerms(),
		addressCodec,
		Bech32Prefix,
		authtypes.NewModuleAddress(authtypes.ModuleName).String(),
	)

	app.BankKeeper = bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		app.AccountKeeper,
		map[string]bool{},
		authtypes.NewModuleAddress(authtypes.ModuleName).String(),
		logger,
	)

	app.CurrenciesKeeper = currencieskeeper.NewKeeper(keys[currenciestypes.StoreKey], nil)

	ledgerAdapter := bankledger.New(app.BankKeeper, app.CurrenciesKeeper)
	offchain := offchainstore.New(db)

	// Every domain keeper is rebuilt now that ledgerAdapter exists; the
	// currencies keeper above only needed the store key to resolve its own
	// denoms and is re-wired here with the real ledger.
	app.CurrenciesKeeper = currencieskeeper.NewKeeper(keys[currenciestypes.StoreKey], ledgerAdapter)
	app.IdentitiesKeeper = identitieskeeper.NewKeeper(keys[identitiestypes.StoreKey], ledgerAdapter, offchain)
	app.ResolversKeeper = resolverskeeper.NewKeeper(keys[resolverstypes.StoreKey], ledgerAdapter, app.IdentitiesKeeper, app.beacon, offchain)
	app.PaymentKeeper = paymentkeeper.NewKeeper(keys[paymenttypes.StoreKey], ledgerAdapter, app.CurrenciesKeeper, offchain)
	app.DisputeKeeper = disputekeeper.NewKeeper(keys[disputetypes.StoreKey], ledgerAdapter, app.PaymentKeeper, app.ResolversKeeper, offchain)

	sweepMetrics := prometheus.DefaultRegisterer
	app.ResolversKeeper = app.ResolversKeeper.WithMetrics(platform.NewSweepMetrics(sweepMetrics, "resolvers"))
	app.DisputeKeeper = app.DisputeKeeper.WithMetrics(platform.NewSweepMetrics(sweepMetrics, "dispute"))

	currenciesModule := currencies.NewAppModule(cdc, app.CurrenciesKeeper)
	identitiesModule := identities.NewAppModule(cdc, app.IdentitiesKeeper)
	resolversModule := resolvers.NewAppModule(cdc, app.ResolversKeeper)
	paymentModule := payment.NewAppModule(cdc, app.PaymentKeeper)
	disputeModule := dispute.NewAppModule(cdc, app.DisputeKeeper)

	app.mm = module.NewManager(
		currenciesModule,
		identitiesModule,
		resolversModule,
		paymentModule,
		disputeModule,
	)

	// InitGenesis order: currencies and identities have no cross-module
	// reads during genesis; resolvers reads identities; payment reads
	// currencies; dispute reads both payment and resolvers. Each module
	// must already exist in store before a later one's genesis payments/
	// disputes can reference it.
	app.mm.SetOrderInitGenesis(
		currenciestypes.ModuleName,
		identitiestypes.ModuleName,
		resolverstypes.ModuleName,
		paymenttypes.ModuleName,
		disputetypes.ModuleName,
	)

	// EndBlock order: settle payments before resolving disputes over them,
	// and only release a resolver's unbonded stake after both sweeps have
	// had a chance to draw on it. Concretely: payment's auto-expiry/
	// auto-completion sweep first (it can hand a payment off to the
	// dispute engine or finalize it outright), then the dispute
	// finalization sweep (which settles against payment/resolver state),
	// then the resolver pending-fund release last.
	app.mm.SetOrderEndBlockers(
		paymenttypes.ModuleName,
		disputetypes.ModuleName,
		resolverstypes.ModuleName,
		currenciestypes.ModuleName,
		identitiestypes.ModuleName,
	)

	app.mm.RegisterInvariants(nil)

	configurator := module.NewConfigurator(cdc, bapp.MsgServiceRouter(), bapp.GRPCQueryRouter())
	if err := app.mm.RegisterServices(configurator); err != nil {
		panic(fmt.Errorf("failed to register module services: %w", err))
	}

	app.MountKVStores(keys)

	app.SetInitChainer(app.InitChainer)
	app.SetBeginBlocker(app.BeginBlocker)
	app.SetEndBlocker(app.EndBlocker)

	if loadLatest {
		if err := app.LoadLatestVersion(); err != nil {
			panic(fmt.Errorf("failed to load latest version: %w", err))
		}
	}

	return app
}

// InitChainer runs every module's genesis in the fixed order above.
func (app *App) InitChainer(ctx sdk.Context, _ *abci.RequestInitChain) (*abci.ResponseInitChain, error) {
	currencies.InitGenesis(ctx, app.CurrenciesKeeper, currenciestypes.DefaultGenesisState())
	identities.InitGenesis(ctx, app.IdentitiesKeeper, identitiestypes.DefaultGenesisState())
	resolvers.InitGenesis(ctx, app.ResolversKeeper, resolverstypes.DefaultGenesisState())
	payment.InitGenesis(ctx, app.PaymentKeeper, paymenttypes.DefaultGenesisState())
	dispute.InitGenesis(ctx, app.DisputeKeeper, disputetypes.DefaultGenesisState())
	return &abci.ResponseInitChain{}, nil
}

// BeginBlocker refreshes the randomness beacon from the current block
// header before any module's BeginBlock runs, so x/resolvers' GetResolver
// draws against this block's entropy rather than a stale one.
func (app *App) BeginBlocker(ctx sdk.Context) (sdk.BeginBlock, error) {
	app.beacon.SetHeader(ctx.HeaderHash(), ctx.BlockHeight())
	return app.mm.BeginBlock(ctx)
}

// EndBlocker runs every module's per-block deferred-work sweep in the
// fixed order above.
func (app *App) EndBlocker(ctx sdk.Context) (sdk.EndBlock, error) {
	return app.mm.EndBlock(ctx)
}

// AppCodec returns the application-wide codec.
func (app *App) AppCodec() codec.Codec { return app.cdc }

// InterfaceRegistry returns the application-wide interface registry.
func (app *App) InterfaceRegistry() cdctypes.InterfaceRegistry { return app.interfaceRegistry }

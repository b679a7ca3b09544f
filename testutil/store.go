// Package testutil provides shared in-memory store and ledger fixtures for
// keeper test suites across the LRP modules, grounded on the teacher's own
// delegation keeper test harness (x/delegation/keeper/delegation_test.go).
package testutil

import (
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// TestingT is the subset of *testing.T required to report store setup
// failures, satisfied by testify's require.TestingT.
type TestingT interface {
	require.TestingT
}

// NewStoreContext mounts one KVStore per key in a fresh in-memory
// CommitMultiStore and returns a ready-to-use sdk.Context over it.
func NewStoreContext(t TestingT, keys ...*storetypes.KVStoreKey) sdk.Context {
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, cms.LoadLatestVersion())

	return sdk.NewContext(cms, cmtproto.Header{
		Height: 1,
		Time:   time.Now().UTC(),
	}, false, log.NewNopLogger())
}

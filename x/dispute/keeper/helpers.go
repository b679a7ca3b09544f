package keeper

import "encoding/hex"

func hashHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

package mural

import "github.com/tidwall/gjson"

// walletAddressPaths are the locations the wallet address has been
// observed at in account responses. Which shape is authoritative is not
// documented upstream, so all of them are probed in order and the first
// hit wins.
var walletAddressPaths = []string{
	"accountDetails.walletDetails.walletAddress",
	"address",
	"walletAddress",
	"accountDetails.address",
}

// ExtractWalletAddress normalizes the ambiguous account response shapes
// into one optional address. It returns "" while the account is still
// provisioning server-side.
func ExtractWalletAddress(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	for _, path := range walletAddressPaths {
		if v := gjson.GetBytes(raw, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

package mural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWalletAddress(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "nested wallet details",
			raw:  `{"id":"a1","accountDetails":{"walletDetails":{"walletAddress":"0xabc"}}}`,
			want: "0xabc",
		},
		{
			name: "top-level address",
			raw:  `{"id":"a1","address":"0xdef"}`,
			want: "0xdef",
		},
		{
			name: "top-level walletAddress",
			raw:  `{"id":"a1","walletAddress":"0x123"}`,
			want: "0x123",
		},
		{
			name: "address under accountDetails",
			raw:  `{"id":"a1","accountDetails":{"address":"0x456"}}`,
			want: "0x456",
		},
		{
			name: "nested shape wins over top-level",
			raw:  `{"accountDetails":{"walletDetails":{"walletAddress":"0xnested"}},"address":"0xtop"}`,
			want: "0xnested",
		},
		{
			name: "still provisioning",
			raw:  `{"id":"a1","status":"INITIALIZING"}`,
			want: "",
		},
		{
			name: "empty string does not count",
			raw:  `{"address":"","walletAddress":"0x789"}`,
			want: "0x789",
		},
		{
			name: "empty body",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractWalletAddress([]byte(tt.raw)))
		})
	}
}

package abit

import (
	"encoding/hex"
	"testing"
)

func TestSigHash(t *testing.T) {
	transfer := Tuple(
		Field{Name: "from", Type: Address},
		Field{Name: "to", Type: Address},
		Field{Name: "value", Type: Uint(256)},
	)
	sig := "Transfer" + transfer.Signature()
	const want = "ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	h := SigHash(sig)
	if got := hex.EncodeToString(h[:]); got != want {
		t.Errorf("got: %s want: %s", got, want)
	}
}

func TestSelector(t *testing.T) {
	cases := []struct {
		sig  string
		want string
	}{
		{
			sig:  "transfer(address,uint256)",
			want: "a9059cbb",
		},
		{
			sig:  "balanceOf(address)",
			want: "70a08231",
		},
	}
	for _, tc := range cases {
		s := Selector(tc.sig)
		if got := hex.EncodeToString(s[:]); got != tc.want {
			t.Errorf("%s got: %s want: %s", tc.sig, got, tc.want)
		}
	}
}

package sfex

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCanonical(t *testing.T) {
	var tests = []struct {
		params []param
		result string
	}{
		{nil, ""},
		{[]param{{"symbol", "BTCUSDT"}}, "symbol=BTCUSDT"},
		{[]param{{"symbol", "BTCUSDT"}, {"side", "1"}, {"type", "1"}}, "symbol=BTCUSDT&side=1&type=1"},
	}
	for i, tt := range tests {
		if got := canonical(tt.params); got != tt.result {
			t.Errorf("%d: canonical = %q, want %q", i, got, tt.result)
		}
	}
}

func TestEncode(t *testing.T) {
	params := []param{{"symbol", "BTC USDT"}, {"note", "a&b=c"}}
	assert.Equal(t, "symbol=BTC+USDT&note=a%26b%3Dc", encode(params))
}

func TestSign(t *testing.T) {
	c := New("key", "secret-0", "")
	params := []param{
		{"symbol", "BTCUSDT"},
		{"side", "1"},
		{"type", "1"},
		{"price", "100.0"},
		{"amount", "1.0"},
		{"nonce", "1620000000"},
	}

	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte("symbol=BTCUSDT&side=1&type=1&price=100.0&amount=1.0&nonce=1620000000"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	require.Equal(t, want, c.sign(params))

	// same input, same signature
	assert.Equal(t, c.sign(params), c.sign(params))

	// swapping two fields changes the signature
	swapped := append([]param{}, params...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	assert.NotEqual(t, c.sign(params), c.sign(swapped))

	// changing one character changes the signature
	changed := append([]param{}, params...)
	changed[3] = param{"price", "100.1"}
	assert.NotEqual(t, c.sign(params), c.sign(changed))

	// different secret, different signature
	c2 := New("key", "secret-1", "")
	assert.NotEqual(t, c.sign(params), c2.sign(params))
}

package sfex

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// param is one request field. Request parameters are ordered, the
// server verifies the signature over them in the order they are sent.
type param struct {
	key   string
	value string
}

// canonical joins params as k=v&k=v without escaping. This is the
// string the signature covers.
func canonical(params []param) string {
	var kvs []string
	for _, p := range params {
		kvs = append(kvs, fmt.Sprintf("%s=%s", p.key, p.value))
	}
	return strings.Join(kvs, "&")
}

// encode renders params as an x-www-form-urlencoded body, keeping
// their order.
func encode(params []param) string {
	var kvs []string
	for _, p := range params {
		kvs = append(kvs, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(kvs, "&")
}

// sign computes the request signature: HMAC-SHA256 over the canonical
// parameter string, keyed by the API secret, base64 encoded.
func (c *Client) sign(params []param) string {
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte(canonical(params)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

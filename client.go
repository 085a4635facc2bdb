package sfex

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/net/proxy"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Client calls the SFEX REST API.
//
// All fields are plain data, a zero Key/Secret client can still use the
// public quote endpoints. Methods are safe for concurrent use.
type Client struct {
	APIHost   string // order and balance namespaces
	QuoteHost string // public market data
	Key       string
	Secret    string

	// HTTPClient carries the request timeout. Replace it to change
	// timeout or transport settings.
	HTTPClient *http.Client
}

func New(key, secret, host string) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		APIHost:    host,
		QuoteHost:  DefaultQuoteHost,
		Key:        key,
		Secret:     secret,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithProxy routes all requests through a SOCKS5 proxy, for hosts
// unreachable from the local network.
func NewWithProxy(key, secret, host, proxyAddr string) (*Client, error) {
	dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, errors.Wrap(err, "sfex: bad proxy address")
	}
	c := New(key, secret, host)
	c.HTTPClient = &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			Dial: dialer.Dial,
		},
	}
	return c, nil
}

// uri joins host, namespace prefix and path for the given api type.
func (c *Client) uri(path string, api apiType) string {
	switch api {
	case apiOrder:
		return fmt.Sprintf("%s/%s/%s", c.APIHost, orderPrefix, path)
	case apiUser:
		return fmt.Sprintf("%s/%s/%s", c.APIHost, userPrefix, path)
	default:
		return fmt.Sprintf("%s/%s", c.QuoteHost, path)
	}
}

// request sends one API call and decodes the JSON answer into result.
// For signed calls a nonce is appended after the caller's fields and
// the signature covers it. The caller's slice stays untouched.
func (c *Client) request(method, path string, api apiType, signed bool, query url.Values, data []param, result interface{}) error {
	uri := c.uri(path, api)
	if len(query) > 0 {
		uri = uri + "?" + query.Encode()
	}
	if signed {
		data = append(data[:len(data):len(data)], param{"nonce", strconv.FormatInt(time.Now().Unix(), 10)})
	}
	req, err := http.NewRequest(method, uri, strings.NewReader(encode(data)))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("version", Version)
	if signed {
		req.Header.Set("key", c.Key)
		req.Header.Set("sign", c.sign(data))
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	if err = json.Unmarshal(body, result); err != nil {
		log.Printf("raw response: %s", string(body))
		return errors.Wrap(err, "sfex: decode response")
	}
	return nil
}

// 获取ticker
func (c *Client) Ticker(symbol string) (*ResponseTicker, error) {
	var resp ResponseTicker
	if err := c.request(GET, pathTicker+"/"+symbol, apiQuote, false, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// 获取深度行情
func (c *Client) Depth(symbol string) (*ResponseDepth, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(depthOffset))
	query.Set("accuracy", strconv.Itoa(depthAccuracy))
	query.Set("size", strconv.Itoa(depthSize))
	var resp ResponseDepth
	if err := c.request(GET, pathOrderbook+"/"+symbol, apiQuote, false, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// 获取用户资产
func (c *Client) Balances() (*ResponseBalances, error) {
	var resp ResponseBalances
	if err := c.request(POST, pathList, apiUser, true, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// 限价买单
func (c *Client) Buy(symbol string, price, amount decimal.Decimal) (*ResponseCreateOrder, error) {
	return c.createOrder(symbol, SideBuy, price, amount)
}

// 限价卖单
func (c *Client) Sell(symbol string, price, amount decimal.Decimal) (*ResponseCreateOrder, error) {
	return c.createOrder(symbol, SideSell, price, amount)
}

// fixed renders d with its original scale. decimal's String trims
// trailing zeros, "100.0" becomes "100".
func fixed(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// createOrder places a limit order. Field order matters here, the
// server signs symbol, side, type, price, amount in this order.
func (c *Client) createOrder(symbol string, side int, price, amount decimal.Decimal) (*ResponseCreateOrder, error) {
	data := []param{
		{"symbol", symbol},
		{"side", strconv.Itoa(side)},
		{"type", strconv.Itoa(OrderTypeLimit)},
		{"price", fixed(price)},
		{"amount", fixed(amount)},
	}
	var resp ResponseCreateOrder
	if err := c.request(POST, pathCreate, apiOrder, true, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// 撤销订单
func (c *Client) CancelOrder(symbol string, orderID uint64) (*ResponseCancel, error) {
	data := []param{
		{"symbol", symbol},
		{"order_id", strconv.FormatUint(orderID, 10)},
	}
	var resp ResponseCancel
	if err := c.request(POST, pathRemove, apiOrder, true, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// 获取挂单
func (c *Client) OpenOrders(symbol string, page, size int) (*ResponseOrders, error) {
	data := []param{
		{"symbol", symbol},
		{"page", strconv.Itoa(page)},
		{"size", strconv.Itoa(size)},
	}
	var resp ResponseOrders
	if err := c.request(POST, pathActive, apiOrder, true, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// 获取历史订单
func (c *Client) HistoryOrders(page, size int) (*ResponseOrders, error) {
	data := []param{
		{"page", strconv.Itoa(page)},
		{"size", strconv.Itoa(size)},
	}
	var resp ResponseOrders
	if err := c.request(POST, pathHistory, apiOrder, true, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

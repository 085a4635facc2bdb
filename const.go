package sfex

const (
	// DefaultHost serves the signed order and balance namespaces.
	DefaultHost = "https://api.sfex.net"
	// DefaultQuoteHost serves the public market data endpoints.
	// It is a separate domain from the trading host.
	DefaultQuoteHost = "https://q.sfex.net/v1"
)

const (
	GET  = "GET"
	POST = "POST"
)

// Version goes into the `version` header of every request.
const Version = "2.4"

// apiType selects the namespace a path belongs to. Order and user
// requests share the trading host under different prefixes, quote
// requests go to the quote host directly.
type apiType int

const (
	apiOrder apiType = iota + 1
	apiUser
	apiQuote
)

const (
	orderPrefix = "order"
	userPrefix  = "balance"
)

const (
	pathTicker    = "ticker"
	pathOrderbook = "orderbook"
	pathCreate    = "create"
	pathHistory   = "history"
	pathRemove    = "remove"
	pathActive    = "active"
	pathList      = "list"
)

const (
	SideBuy  = 1
	SideSell = 2

	OrderTypeLimit = 1
)

// orderbook query, fixed by the server
const (
	depthOffset   = 10
	depthAccuracy = 5
	depthSize     = 5
)

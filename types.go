package sfex

// Ticker is the 24h market summary of one symbol.
type Ticker struct {
	Symbol string `json:"symbol"`
	High   string `json:"high"` // 24小时最高价
	Low    string `json:"low"`  // 24小时最低价
	Last   string `json:"last"` // 最新成交价
	Buy    string `json:"buy"`  // 买一价
	Sell   string `json:"sell"` // 卖一价
	Volume string `json:"vol"`  // 24小时成交量
	Time   int64  `json:"time"`
}

type ResponseTicker struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    Ticker `json:"data"`
}

// Depth holds both sides of the order book, best price first.
// Each level is [price, amount].
type Depth struct {
	Asks [][]string `json:"asks"` // 卖盘
	Bids [][]string `json:"bids"` // 买盘
	Time int64      `json:"time"`
}

type ResponseDepth struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    Depth  `json:"data"`
}

type Balance struct {
	Coin      string `json:"coin"`
	Available string `json:"available"` // 可用
	Frozen    string `json:"frozen"`    // 冻结
}

type ResponseBalances struct {
	Code    int       `json:"code"`
	Message string    `json:"msg"`
	Data    []Balance `json:"data"`
}

// Order is one order record as the exchange reports it. Price and
// amounts come back as strings, status codes are passed through
// untouched.
type Order struct {
	OrderID    uint64 `json:"order_id"`
	Symbol     string `json:"symbol"`
	Side       int    `json:"side"` // 1 buy, 2 sell
	Type       int    `json:"type"` // 1 limit
	Price      string `json:"price"`
	Amount     string `json:"amount"`
	DealAmount string `json:"deal_amount"` // 已成交数量
	Status     int    `json:"status"`
	CreatedAt  int64  `json:"ctime"`
}

type ResponseOrders struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    struct {
		Count  int     `json:"count"`
		Orders []Order `json:"orders"`
	} `json:"data"`
}

type ResponseCreateOrder struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    struct {
		OrderID uint64 `json:"order_id"`
	} `json:"data"`
}

type ResponseCancel struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

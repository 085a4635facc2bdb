package types

import "time"

// for mongo and mysql
//	orderId: 订单id
//	symbol: 交易对
//	side: 买卖方向
//	price: 下单价格
//	amount: 下单数量
//	dealAmount: 已成交数量
//	time: 下单时间
type Order struct {
	OrderID    uint64    `bson:"_id" gorm:"column:order_id;primary_key"`
	Label      string    `bson:"label" gorm:"column:label"`
	Symbol     string    `bson:"symbol" gorm:"column:symbol"`
	Side       int       `bson:"side" gorm:"column:side"`
	Type       int       `bson:"type" gorm:"column:type"`
	Price      float64   `bson:"price" gorm:"column:price"`
	Amount     float64   `bson:"amount" gorm:"column:amount"`
	DealAmount float64   `bson:"dealAmount" gorm:"column:deal_amount"` //已成交数量
	Status     int       `bson:"status" gorm:"column:status"`
	Time       time.Time `bson:"time" gorm:"column:time"`
	TimeUnix   int64     `bson:"timeUnix" gorm:"column:time_unix"`
}

// Balance is one coin of one account at snapshot time. Value is the
// USDT value at the snapshot price.
type Balance struct {
	Label    string  `bson:"label" json:"label"`
	Currency string  `bson:"currency" json:"currency"`
	Amount   float64 `bson:"amount" json:"amount"`
	Price    float64 `bson:"price" json:"price"`
	Value    float64 `bson:"value" json:"value"`
	Time     string  `bson:"time" json:"time"`
}

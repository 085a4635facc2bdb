package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/xyths/hs"
	"github.com/xyths/hs/convert"
	. "github.com/xyths/hs/logger"
	"github.com/xyths/sfex"
	"github.com/xyths/sfex/cmd/utils"
	"github.com/xyths/sfex/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"log"
	"os"
	"strconv"
	"time"
)

type MySQLConf struct {
	URI string `json:"uri"`
}

type Config struct {
	Exchange hs.ExchangeConf
	Mongo    hs.MongoConf
	MySQL    MySQLConf
	History  hs.HistoryConf
}

// History pulls finished orders from the exchange into MongoDB, and
// optionally mirrors them into MySQL for reporting.
type History struct {
	config Config

	db     *mongo.Database
	gormDB *gorm.DB
	ex     *sfex.Client

	interval time.Duration
	pageSize int
}

const (
	collNameOrders  = "orders"
	defaultPageSize = 100
)

func New(configFilename string) *History {
	cfg := Config{}
	if err := hs.ParseJsonConfig(configFilename, &cfg); err != nil {
		Sugar.Fatal(err)
	}
	d, err := time.ParseDuration(cfg.History.Interval)
	if err != nil {
		log.Fatalf("parse duration error: %s", err)
	}
	return &History{
		config:   cfg,
		interval: d,
		pageSize: defaultPageSize,
	}
}

func (h *History) Init(ctx context.Context) {
	db, err := hs.ConnectMongo(ctx, h.config.Mongo)
	if err != nil {
		Sugar.Fatal(err)
	}
	h.db = db
	h.ex = sfex.New(h.config.Exchange.Key, h.config.Exchange.Secret, h.config.Exchange.Host)
	if h.config.MySQL.URI != "" {
		gormDB, err := gorm.Open("mysql", h.config.MySQL.URI)
		if err != nil {
			Sugar.Fatal(err)
		}
		gormDB.AutoMigrate(&types.Order{})
		h.gormDB = gormDB
	}
}

func (h *History) Close(ctx context.Context) {
	if h.db != nil {
		_ = h.db.Client().Disconnect(ctx)
	}
	if h.gormDB != nil {
		if err := h.gormDB.Close(); err != nil {
			Sugar.Errorf("error when gorm close: %s", err)
		}
	}
}

func (h *History) Pull(ctx context.Context) error {
	if err := h.pullOnce(ctx); err != nil {
		Sugar.Errorf("error when pull orders: %s", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Println(ctx.Err())
			return nil
		case <-time.After(h.interval):
			if err := h.pullOnce(ctx); err != nil {
				Sugar.Errorf("error when pull orders: %s", err)
			}
		}
	}
}

// pullOnce walks the history pages until a short page, inserting
// orders it has not seen before.
func (h *History) pullOnce(ctx context.Context) error {
	all, success, duplicate, fail := 0, 0, 0, 0
	coll := h.db.Collection(collNameOrders)
	for page := 1; ; page++ {
		resp, err := h.ex.HistoryOrders(page, h.pageSize)
		if err != nil {
			return err
		}
		orders := resp.Data.Orders
		if len(orders) == 0 {
			break
		}
		all += len(orders)
		for _, raw := range orders {
			o := convertOrder(h.config.Exchange.Label, raw)
			c, err1 := coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: o.OrderID}})
			if err1 != nil {
				Sugar.Errorw("count order error", "orderId", o.OrderID, "error", err1)
				fail++
				continue
			}
			if c > 0 {
				duplicate++
				continue
			}
			if _, err1 = coll.InsertOne(ctx, &o); err1 != nil {
				Sugar.Errorw("insert order error", "orderId", o.OrderID, "error", err1)
				fail++
				continue
			}
			success++
			if h.gormDB != nil {
				h.gormDB.Where(types.Order{OrderID: o.OrderID}).FirstOrCreate(&o)
			}
		}
		if len(orders) < h.pageSize {
			break
		}
	}
	Sugar.Infof("pull orders for %s-%s finish now, all: %d, success: %d, duplicate: %d, fail: %d",
		h.config.Exchange.Name, h.config.Exchange.Label, all, success, duplicate, fail)
	return nil
}

func convertOrder(label string, o sfex.Order) types.Order {
	return types.Order{
		OrderID:    o.OrderID,
		Label:      label,
		Symbol:     o.Symbol,
		Side:       o.Side,
		Type:       o.Type,
		Price:      convert.StrToFloat64(o.Price),
		Amount:     convert.StrToFloat64(o.Amount),
		DealAmount: convert.StrToFloat64(o.DealAmount),
		Status:     o.Status,
		Time:       time.Unix(o.CreatedAt, 0),
		TimeUnix:   o.CreatedAt,
	}
}

func (h *History) Export(ctx context.Context, start, end, csvfile string) error {
	startTime, endTime, err := utils.ParseStartEndTime(start, end)
	if err != nil {
		Sugar.Error(err)
		return err
	}
	orders, err := h.getOrders(ctx, startTime, endTime)
	if err != nil {
		Sugar.Errorf("error when get orders: %s", err)
		return err
	}
	f, err := os.Create(csvfile)
	if err != nil {
		Sugar.Error(err)
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	header := []string{"label", "time", "symbol", "side", "price", "amount", "dealAmount", "status", "orderId"}
	if err = w.Write(header); err != nil {
		Sugar.Errorf("error when write csv header: %s", err)
	}
	for _, o := range orders {
		record := []string{
			o.Label,
			o.Time.Format(utils.TimeLayout),
			o.Symbol,
			strconv.Itoa(o.Side),
			fmt.Sprintf("%f", o.Price),
			fmt.Sprintf("%f", o.Amount),
			fmt.Sprintf("%f", o.DealAmount),
			strconv.Itoa(o.Status),
			strconv.FormatUint(o.OrderID, 10),
		}
		if err1 := w.Write(record); err1 != nil {
			Sugar.Errorf("error when write record: %s", err1)
		}
	}
	w.Flush()

	return nil
}

func (h *History) getOrders(ctx context.Context, start, end time.Time) (orders []types.Order, err error) {
	coll := h.db.Collection(collNameOrders)
	cursor, err := coll.Find(ctx, bson.D{
		{Key: "time", Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lte", Value: end},
		}},
	})
	if err != nil {
		return
	}
	err = cursor.All(ctx, &orders)
	return
}

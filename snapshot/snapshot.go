package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/martian/log"
	"github.com/pkg/errors"
	"github.com/xyths/hs"
	"github.com/xyths/hs/convert"
	. "github.com/xyths/hs/logger"
	"github.com/xyths/sfex"
	"github.com/xyths/sfex/types"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"os"
	"strings"
	"time"
)

type Config struct {
	Accounts []hs.ExchangeConf
	Mongo    hs.MongoConf
	Log      hs.LogConf
	Output   string
}

// Snapshot records the balances of all configured accounts, valued in
// USDT at the current ticker price.
type Snapshot struct {
	config Config
	Sugar  *zap.SugaredLogger

	db *mongo.Database
}

func New(configFilename string) *Snapshot {
	cfg := Config{}
	if err := hs.ParseJsonConfig(configFilename, &cfg); err != nil {
		Sugar.Fatal(err)
	}
	l, err := hs.NewZapLogger(cfg.Log)
	if err != nil {
		Sugar.Fatal(err)
	}
	return &Snapshot{
		config: cfg,
		Sugar:  l.Sugar(),
	}
}

const collNameBalance = "balance"

func (s *Snapshot) Snapshot(ctx context.Context) error {
	var all []types.Balance
	for _, a := range s.config.Accounts {
		balances, err := s.balance(a)
		if err != nil {
			log.Errorf("balance error: %s", err)
			continue
		}
		all = append(all, balances...)
	}
	if len(all) == 0 {
		return errors.New("no balance to snapshot")
	}
	if s.config.Output != "" {
		if err := s.writeFile(all); err != nil {
			s.Sugar.Errorf("write snapshot file error: %s", err)
			return err
		}
	}
	if s.config.Mongo.URI != "" {
		if err := s.writeMongo(ctx, all); err != nil {
			s.Sugar.Errorf("write snapshot to mongo error: %s", err)
			return err
		}
	}
	s.Sugar.Infof("snapshot %d balances from %d accounts", len(all), len(s.config.Accounts))
	return nil
}

func (s *Snapshot) balance(conf hs.ExchangeConf) ([]types.Balance, error) {
	ex := sfex.New(conf.Key, conf.Secret, conf.Host)
	resp, err := ex.Balances()
	if err != nil {
		return nil, err
	}
	now := time.Now().String()
	var balances []types.Balance
	for _, raw := range resp.Data {
		amount := convert.StrToFloat64(raw.Available) + convert.StrToFloat64(raw.Frozen)
		// ignore
		if amount == 0 {
			continue
		}
		cur := types.Balance{
			Label:    conf.Label,
			Currency: strings.ToUpper(raw.Coin),
			Amount:   amount,
			Time:     now,
		}
		if cur.Currency == "USDT" {
			cur.Value = amount
		} else {
			ticker, err1 := ex.Ticker(cur.Currency + "USDT")
			if err1 != nil {
				continue
			}
			cur.Price = convert.StrToFloat64(ticker.Data.Last)
			cur.Value = cur.Price * amount
		}
		balances = append(balances, cur)
	}
	return balances, nil
}

func (s *Snapshot) writeFile(balances []types.Balance) error {
	f, err := os.OpenFile(s.config.Output, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	for _, b := range balances {
		data, err1 := json.Marshal(b)
		if err1 != nil {
			s.Sugar.Error(err1)
			continue
		}
		if _, err1 = fmt.Fprintf(f, "%s\n", string(data)); err1 != nil {
			s.Sugar.Error(err1)
		}
	}
	return nil
}

func (s *Snapshot) writeMongo(ctx context.Context, balances []types.Balance) error {
	if s.db == nil {
		db, err := hs.ConnectMongo(ctx, s.config.Mongo)
		if err != nil {
			return err
		}
		s.db = db
	}
	coll := s.db.Collection(collNameBalance)
	for _, b := range balances {
		if _, err := coll.InsertOne(ctx, &b); err != nil {
			s.Sugar.Errorw("insert balance error", "currency", b.Currency, "error", err)
		}
	}
	return nil
}

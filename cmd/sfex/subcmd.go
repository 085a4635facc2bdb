package main

import (
	"encoding/json"
	"fmt"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"github.com/xyths/hs"
	"github.com/xyths/sfex"
	"github.com/xyths/sfex/cmd/utils"
	"github.com/xyths/sfex/history"
	"github.com/xyths/sfex/snapshot"
	"log"
	"os"
)

var (
	tickerCommand = &cli.Command{
		Action: ticker,
		Name:   "ticker",
		Usage:  "Get the latest ticker",
		Flags: []cli.Flag{
			utils.SymbolFlag,
		},
	}
	depthCommand = &cli.Command{
		Action: depth,
		Name:   "depth",
		Usage:  "Get the order book",
		Flags: []cli.Flag{
			utils.SymbolFlag,
		},
	}
	balanceCommand = &cli.Command{
		Action: balance,
		Name:   "balance",
		Usage:  "Get the account balances",
	}
	buyCommand = &cli.Command{
		Action: buy,
		Name:   "buy",
		Usage:  "Place a limit buy order",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.PriceFlag,
			utils.AmountFlag,
		},
	}
	sellCommand = &cli.Command{
		Action: sell,
		Name:   "sell",
		Usage:  "Place a limit sell order",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.PriceFlag,
			utils.AmountFlag,
		},
	}
	cancelCommand = &cli.Command{
		Action: cancel,
		Name:   "cancel",
		Usage:  "Cancel an open order",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.OrderIdFlag,
		},
	}
	openCommand = &cli.Command{
		Action: open,
		Name:   "open",
		Usage:  "List open orders",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.PageFlag,
			utils.SizeFlag,
		},
	}
	historyCommand = &cli.Command{
		Name:  "history",
		Usage: "Manage order history",
		Subcommands: []*cli.Command{
			{
				Action: pull,
				Name:   "pull",
				Usage:  "Pull order history from exchange",
			},
			{
				Action: export,
				Name:   "export",
				Usage:  "Export order history to csv",
				Flags: []cli.Flag{
					utils.StartTimeFlag,
					utils.EndTimeFlag,
					utils.CsvFlag,
				},
			},
		},
	}
	snapshotCommand = &cli.Command{
		Action: snap,
		Name:   "snapshot",
		Usage:  "Snapshot the account balances",
	}
)

type config struct {
	Exchange hs.ExchangeConf
}

func parseConfig(filename string) (c config) {
	configFile, err := os.Open(filename)
	defer func() {
		_ = configFile.Close()
	}()
	if err != nil {
		log.Fatal(err)
	}
	err = json.NewDecoder(configFile).Decode(&c)
	if err != nil {
		log.Fatal(err)
	}
	return
}

func getClient(ctx *cli.Context) *sfex.Client {
	c := parseConfig(ctx.String(utils.ConfigFlag.Name))
	return sfex.New(c.Exchange.Key, c.Exchange.Secret, c.Exchange.Host)
}

func ticker(ctx *cli.Context) error {
	symbol := ctx.String(utils.SymbolFlag.Name)
	resp, err := getClient(ctx).Ticker(symbol)
	if err != nil {
		return err
	}
	t := resp.Data
	fmt.Printf("%s last: %s, buy: %s, sell: %s, high: %s, low: %s, vol: %s\n",
		symbol, t.Last, t.Buy, t.Sell, t.High, t.Low, t.Volume)
	return nil
}

func depth(ctx *cli.Context) error {
	symbol := ctx.String(utils.SymbolFlag.Name)
	resp, err := getClient(ctx).Depth(symbol)
	if err != nil {
		return err
	}
	for i := len(resp.Data.Asks) - 1; i >= 0; i-- {
		a := resp.Data.Asks[i]
		fmt.Printf("ask %s\t%s\n", a[0], a[1])
	}
	for _, b := range resp.Data.Bids {
		fmt.Printf("bid %s\t%s\n", b[0], b[1])
	}
	return nil
}

func balance(ctx *cli.Context) error {
	resp, err := getClient(ctx).Balances()
	if err != nil {
		return err
	}
	for _, b := range resp.Data {
		fmt.Printf("%s available: %s, frozen: %s\n", b.Coin, b.Available, b.Frozen)
	}
	return nil
}

func buy(ctx *cli.Context) error {
	return placeOrder(ctx, sfex.SideBuy)
}

func sell(ctx *cli.Context) error {
	return placeOrder(ctx, sfex.SideSell)
}

func placeOrder(ctx *cli.Context, side int) error {
	symbol := ctx.String(utils.SymbolFlag.Name)
	price, err := decimal.NewFromString(ctx.String(utils.PriceFlag.Name))
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(ctx.String(utils.AmountFlag.Name))
	if err != nil {
		return err
	}
	c := getClient(ctx)
	var resp *sfex.ResponseCreateOrder
	if side == sfex.SideBuy {
		resp, err = c.Buy(symbol, price, amount)
	} else {
		resp, err = c.Sell(symbol, price, amount)
	}
	if err != nil {
		return err
	}
	fmt.Printf("order placed, id: %d, code: %d, msg: %s\n", resp.Data.OrderID, resp.Code, resp.Message)
	return nil
}

func cancel(ctx *cli.Context) error {
	symbol := ctx.String(utils.SymbolFlag.Name)
	orderID := ctx.Uint64(utils.OrderIdFlag.Name)
	resp, err := getClient(ctx).CancelOrder(symbol, orderID)
	if err != nil {
		return err
	}
	fmt.Printf("cancel order %d, code: %d, msg: %s\n", orderID, resp.Code, resp.Message)
	return nil
}

func open(ctx *cli.Context) error {
	symbol := ctx.String(utils.SymbolFlag.Name)
	page := ctx.Int(utils.PageFlag.Name)
	size := ctx.Int(utils.SizeFlag.Name)
	resp, err := getClient(ctx).OpenOrders(symbol, page, size)
	if err != nil {
		return err
	}
	fmt.Printf("%d open orders\n", resp.Data.Count)
	for _, o := range resp.Data.Orders {
		fmt.Printf("%d %s side: %d, price: %s, amount: %s, deal: %s, status: %d\n",
			o.OrderID, o.Symbol, o.Side, o.Price, o.Amount, o.DealAmount, o.Status)
	}
	return nil
}

func pull(ctx *cli.Context) error {
	h := history.New(ctx.String(utils.ConfigFlag.Name))
	h.Init(ctx.Context)
	defer h.Close(ctx.Context)
	return h.Pull(ctx.Context)
}

func export(ctx *cli.Context) error {
	start := ctx.String(utils.StartTimeFlag.Name)
	end := ctx.String(utils.EndTimeFlag.Name)
	csv := ctx.String(utils.CsvFlag.Name)
	h := history.New(ctx.String(utils.ConfigFlag.Name))
	h.Init(ctx.Context)
	defer h.Close(ctx.Context)
	return h.Export(ctx.Context, start, end, csv)
}

func snap(ctx *cli.Context) error {
	s := snapshot.New(ctx.String(utils.ConfigFlag.Name))
	return s.Snapshot(ctx.Context)
}

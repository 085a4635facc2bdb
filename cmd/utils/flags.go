package utils

import "github.com/urfave/cli/v2"

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.json",
		Usage:   "load configuration from `file`",
	}

	SymbolFlag = &cli.StringFlag{
		Name:  "symbol",
		Value: "",
		Usage: "trading pair, eg. BTCUSDT",
	}
	PriceFlag = &cli.StringFlag{
		Name:  "price",
		Value: "",
		Usage: "order `price`",
	}
	AmountFlag = &cli.StringFlag{
		Name:  "amount",
		Value: "",
		Usage: "order `amount`",
	}
	OrderIdFlag = &cli.Uint64Flag{
		Name:  "order",
		Usage: "order `id`",
	}
	PageFlag = &cli.IntFlag{
		Name:  "page",
		Value: 1,
		Usage: "page number, starts from 1",
	}
	SizeFlag = &cli.IntFlag{
		Name:  "size",
		Value: 20,
		Usage: "page size",
	}

	StartTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Value:   "",
		Usage:   "start `time`",
	}
	EndTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Value:   "",
		Usage:   "end `time`",
	}
	CsvFlag = &cli.StringFlag{
		Name:  "csv",
		Value: "orders.csv",
		Usage: "export to csv `file`",
	}
)

package main

import (
	"github.com/urfave/cli/v2"
	"github.com/xyths/sfex/cmd/utils"
	"github.com/xyths/sfex/snapshot"
)

var snapCommand = &cli.Command{
	Action: snap,
	Name:   "snap",
	Usage:  "Snapshot the balances of all accounts once",
	Flags: []cli.Flag{
		utils.ConfigFlag,
	},
}

func snap(ctx *cli.Context) error {
	s := snapshot.New(ctx.String(utils.ConfigFlag.Name))
	return s.Snapshot(ctx.Context)
}

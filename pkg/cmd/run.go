package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ukimsanov/Crypto-List/pkg/config"
	"github.com/ukimsanov/Crypto-List/pkg/exchange"
	"github.com/ukimsanov/Crypto-List/pkg/server"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "start the chart API server",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}

		exchangeName := cfg.Exchange.Name
		if flag := viper.GetString("exchange"); flag != "" {
			exchangeName = types.ExchangeName(flag)
		}

		ex, err := exchange.New(exchangeName)
		if err != nil {
			return err
		}

		if bind := viper.GetString("bind"); bind != "" {
			cfg.Server.Address = bind
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv := server.New(cfg.Server.Address, ex)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Run(gctx)
		})

		return g.Wait()
	},
}

func init() {
	RunCmd.Flags().String("bind", "", "server bind address, overrides the config file")

	if err := viper.BindPFlags(RunCmd.Flags()); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(RunCmd)
}

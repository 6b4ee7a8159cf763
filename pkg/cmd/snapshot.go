package cmd

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukimsanov/Crypto-List/pkg/chart"
	"github.com/ukimsanov/Crypto-List/pkg/exchange"
	"github.com/ukimsanov/Crypto-List/pkg/render"
	"github.com/ukimsanov/Crypto-List/pkg/types"
)

// SnapshotCmd renders a one-off chart PNG, with optional horizontal level
// lines. Handy for sharing a chart without the web UI.
var SnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "render a candlestick chart to a PNG file",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		intervalStr, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}
		interval := types.Interval(intervalStr)
		if interval.Minutes() == 0 {
			return errors.Errorf("interval %q is not supported", intervalStr)
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		levels, err := cmd.Flags().GetFloat64Slice("hline")
		if err != nil {
			return err
		}

		ex, err := exchange.New(types.ExchangeName(viper.GetString("exchange")))
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		rows, err := ex.QueryOHLC(ctx, symbol, interval)
		if err != nil {
			return errors.Wrap(err, "history fetch")
		}

		series, err := chart.BuildSeries(rows, interval)
		if err != nil {
			return err
		}

		var annotations []types.Annotation
		for i, level := range levels {
			annotations = append(annotations,
				types.NewHorizontalLine(types.AnnotationID(i+1), level, "#2962ff"))
		}

		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()

		snapshot := &render.Snapshot{
			Points:      series.Points,
			Annotations: annotations,
		}
		if err := snapshot.Render(f); err != nil {
			return err
		}

		log.Infof("wrote %s candles for %s to %s", intervalStr, symbol, output)
		return nil
	},
}

func init() {
	SnapshotCmd.Flags().String("symbol", "BTC", "currency symbol")
	SnapshotCmd.Flags().String("interval", "1h", "candle interval")
	SnapshotCmd.Flags().String("output", "chart.png", "output PNG path")
	SnapshotCmd.Flags().Float64Slice("hline", nil, "horizontal level lines to draw")

	RootCmd.AddCommand(SnapshotCmd)
}

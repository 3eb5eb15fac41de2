// Command irdpricer prices fixed-for-floating interest rate swaps against a
// SwapRates curve file, from the command line or as an HTTP service.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicholasMeacoe/irdpricer/config"
	"github.com/NicholasMeacoe/irdpricer/logger"
	"github.com/NicholasMeacoe/irdpricer/service"
	"github.com/NicholasMeacoe/irdpricer/web"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "irdpricer",
		Short:         "Price interest rate swaps and solve par fixed rates",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override curve data directory")

	buildServices := func() *service.Services {
		cfg := config.Load()
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		logger.Init(cfg.LogLevel, cfg.LogFormat)
		return service.New(cfg)
	}

	root.AddCommand(newPriceCmd(buildServices))
	root.AddCommand(newParCmd(buildServices))
	root.AddCommand(newServeCmd(buildServices))
	root.AddCommand(newConfigCmd(buildServices))
	return root
}

func newPriceCmd(buildServices func() *service.Services) *cobra.Command {
	var (
		notionalStr string
		maturityStr string
		fixedPct    float64
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a payer-of-fixed swap and print its NPV",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildServices()

			notional, err := service.ParseNotional(notionalStr, svc.Config.NotionalMax)
			if err != nil {
				return err
			}
			maturity, err := service.ParseMaturity(maturityStr, time.Now(), svc.Config.MaturityMaxYears)
			if err != nil {
				return err
			}

			crv, path, err := svc.LoadCurve()
			if err != nil {
				return err
			}

			npv, _, err := svc.PriceSwap(notional, fixedPct/100.0, maturity, crv)
			if err != nil {
				return err
			}

			fmt.Printf("Curve: %s\n", path)
			fmt.Printf("Swap NPV: %.2f\n", npv)
			fmt.Printf("Notional: %.0f\n", notional)
			fmt.Printf("Fixed Rate: %.2f%%\n", fixedPct)
			fmt.Printf("Maturity: %s\n", maturityStr)
			return nil
		},
	}

	cmd.Flags().StringVar(&notionalStr, "notional", "", "notional amount (e.g. 10m, 1000000)")
	cmd.Flags().StringVar(&maturityStr, "maturity", "", "maturity (e.g. 5y, 2028-12-31)")
	cmd.Flags().Float64Var(&fixedPct, "fixed", 0, "fixed rate in percent")
	cmd.MarkFlagRequired("notional")
	cmd.MarkFlagRequired("maturity")
	cmd.MarkFlagRequired("fixed")
	return cmd
}

func newParCmd(buildServices func() *service.Services) *cobra.Command {
	var (
		notionalStr string
		maturityStr string
	)

	cmd := &cobra.Command{
		Use:   "par",
		Short: "Solve the par fixed rate for a swap",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildServices()

			notional, err := service.ParseNotional(notionalStr, svc.Config.NotionalMax)
			if err != nil {
				return err
			}
			maturity, err := service.ParseMaturity(maturityStr, time.Now(), svc.Config.MaturityMaxYears)
			if err != nil {
				return err
			}

			crv, path, err := svc.LoadCurve()
			if err != nil {
				return err
			}

			parRate, err := svc.SolveParRate(notional, maturity, crv)
			if err != nil {
				return err
			}

			fmt.Printf("Curve: %s\n", path)
			fmt.Printf("Par Rate: %.4f%%\n", parRate*100.0)
			fmt.Printf("Notional: %.0f\n", notional)
			fmt.Printf("Maturity: %s\n", maturityStr)
			return nil
		},
	}

	cmd.Flags().StringVar(&notionalStr, "notional", "", "notional amount (e.g. 10m, 1000000)")
	cmd.Flags().StringVar(&maturityStr, "maturity", "", "maturity (e.g. 5y, 2028-12-31)")
	cmd.MarkFlagRequired("notional")
	cmd.MarkFlagRequired("maturity")
	return cmd
}

func newServeCmd(buildServices func() *service.Services) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pricing HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildServices()
			if addr == "" {
				addr = ":" + svc.Config.Port
			}
			logger.L.Info("irdpricer listening", "addr", addr, "env", svc.Config.Env)
			return web.NewServer(svc).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT)")
	return cmd
}

func newConfigCmd(buildServices func() *service.Services) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildServices()
			out, err := json.MarshalIndent(svc.Config, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shantanu-hashcash/soroban-tools/internal/app"
)

type checkOptions struct {
	Spec        string
	Compose     string
	Workflow    string
	CargoHome   string
	HTTPTimeout int
	HTTPRetries int
	HTTPRetryMs int
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run all pin reconciliation checks and fail on the first drift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Check spec path (defaults built in)")
	cmd.Flags().StringVar(&opts.Compose, "compose", "", "Compose descriptor path override")
	cmd.Flags().StringVar(&opts.Workflow, "workflow", "", "CI workflow descriptor path override")
	cmd.Flags().StringVar(&opts.CargoHome, "cargo-home", "", "Cargo home for registry cache reads")
	cmd.Flags().IntVar(&opts.HTTPTimeout, "http-timeout", 0, "HTTP timeout in seconds")
	cmd.Flags().IntVar(&opts.HTTPRetries, "http-retries", 0, "HTTP retry attempts")
	cmd.Flags().IntVar(&opts.HTTPRetryMs, "http-retry-delay-ms", 0, "HTTP retry base delay in milliseconds")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("compose", cmd.Flags().Lookup("compose"))
	_ = viper.BindPFlag("workflow", cmd.Flags().Lookup("workflow"))
	_ = viper.BindPFlag("cargo_home", cmd.Flags().Lookup("cargo-home"))
	_ = viper.BindPFlag("http_timeout", cmd.Flags().Lookup("http-timeout"))
	_ = viper.BindPFlag("http_retries", cmd.Flags().Lookup("http-retries"))
	_ = viper.BindPFlag("http_retry_delay_ms", cmd.Flags().Lookup("http-retry-delay-ms"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := app.NewService(app.ServiceOptions{
		HTTPTimeoutSec:   resolveInt(cmd, opts.HTTPTimeout, "http_timeout", "http-timeout"),
		HTTPRetries:      resolveInt(cmd, opts.HTTPRetries, "http_retries", "http-retries"),
		HTTPRetryDelayMs: resolveInt(cmd, opts.HTTPRetryMs, "http_retry_delay_ms", "http-retry-delay-ms"),
	})
	result, err := service.Check(ctx, app.CheckRequest{
		SpecPath:     resolveString(cmd, opts.Spec, "spec", "spec"),
		ComposeFile:  resolveString(cmd, opts.Compose, "compose", "compose"),
		WorkflowFile: resolveString(cmd, opts.Workflow, "workflow", "workflow"),
		CargoHome:    resolveString(cmd, opts.CargoHome, "cargo_home", "cargo-home"),
	})
	if err != nil {
		return err
	}
	if mismatch := result.Report.Mismatch; mismatch != nil {
		fmt.Printf("%s:\n  left:  %s\n  right: %s\n", mismatch.Dimension, mismatch.Left, mismatch.Right)
		if mismatch.Hint != "" {
			fmt.Printf("  hint:  %s\n", mismatch.Hint)
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("revision drift: %s (%s != %s)", mismatch.Dimension, mismatch.Left, mismatch.Right))
	}
	fmt.Printf("consistent: schema %s, core %s\n", result.Report.CargoSchemaRev, result.Report.ContainerRevision)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shantanu-hashcash/soroban-tools/internal/app"
)

type pinsOptions struct {
	Spec     string
	Compose  string
	Workflow string
}

func newPinsCommand() *cobra.Command {
	opts := pinsOptions{}
	cmd := &cobra.Command{
		Use:   "pins",
		Short: "Print every independently-pinned revision without comparing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPins(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Check spec path (defaults built in)")
	cmd.Flags().StringVar(&opts.Compose, "compose", "", "Compose descriptor path override")
	cmd.Flags().StringVar(&opts.Workflow, "workflow", "", "CI workflow descriptor path override")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("compose", cmd.Flags().Lookup("compose"))
	_ = viper.BindPFlag("workflow", cmd.Flags().Lookup("workflow"))
	return cmd
}

func runPins(ctx context.Context, cmd *cobra.Command, opts pinsOptions) error {
	service := app.NewService(app.ServiceOptions{})
	result, err := service.Pins(ctx, app.PinsRequest{
		SpecPath:     resolveString(cmd, opts.Spec, "spec", "spec"),
		ComposeFile:  resolveString(cmd, opts.Compose, "compose", "compose"),
		WorkflowFile: resolveString(cmd, opts.Workflow, "workflow", "workflow"),
	})
	if err != nil {
		return err
	}
	for _, pin := range result.Pins {
		fmt.Printf("%-40s %s\n", pin.Source, pin.Value)
	}
	return nil
}

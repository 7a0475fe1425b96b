package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/itemdeck/internal/export"
	"github.com/Makepad-fr/itemdeck/internal/script"
	"github.com/Makepad-fr/itemdeck/internal/ui"
)

func newApplyCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "apply <script.yaml|->",
		Short: "Replay add/update/delete steps against an empty list and print it",
		Example: `  itemdeck apply steps.yaml
  itemdeck apply --json - < steps.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usage("usage: itemdeck apply <script.yaml|->")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			s := a.newStore()
			res, err := script.Apply(s, steps, a.logger)
			if err != nil {
				return usage("apply: %w", err)
			}
			a.logger.Info("script applied", zap.String("script", args[0]), zap.Int("items", s.Len()))

			out := cmd.OutOrStdout()
			if asJSON {
				return export.WriteJSON(out, s.Items())
			}
			fmt.Fprintln(out, ui.ItemsPanel(s.Items(), a.cfg.DateLayout))
			ui.OK(out, fmt.Sprintf("added %d, updated %d, deleted %d, skipped %d",
				res.Added, res.Updated, res.Deleted, res.Skipped))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resulting items as JSON")
	return cmd
}

func readScript(stdin io.Reader, name string) ([]script.Step, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	steps, err := script.Parse(r)
	if err != nil {
		return nil, usage("%s: %w", name, err)
	}
	return steps, nil
}

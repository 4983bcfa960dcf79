package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/plotspec/plotspec/pkg/config"
	"github.com/plotspec/plotspec/pkg/errors"
	"github.com/plotspec/plotspec/pkg/render"
	"github.com/plotspec/plotspec/pkg/store"
)

// storeCommand creates the store management command.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the figure store",
	}

	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeShowCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	cmd.AddCommand(c.storeClearCommand())
	cmd.AddCommand(c.storePathCommand())

	return cmd
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all saved figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, cfg, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			figs, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(figs) == 0 {
				printInfo("Store is empty (%s backend)", cfg.Store.Backend)
				return nil
			}

			rows := make([][]string, 0, len(figs))
			for _, fig := range figs {
				rows = append(rows, []string{
					fig.Name,
					fig.SavedAt.Local().Format("2006-01-02 15:04"),
					fmt.Sprintf("%d B", len(fig.Doc)),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Figure", "Saved", "Size").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleHighlight
					}
					return StyleValue
				})

			fmt.Println(t.Render())
			return nil
		},
	}
}

// storeShowCommand creates the "store show" subcommand.
func (c *CLI) storeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print a saved figure's JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, _, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			fig, err := s.Get(ctx, args[0])
			if stderrors.Is(err, store.ErrNotFound) {
				return errors.New(errors.ErrCodeFigureNotFound, "no saved figure named %q", args[0])
			}
			if err != nil {
				return err
			}
			return render.WriteJSONDoc(fig.Doc, os.Stdout)
		},
	}
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, _, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(ctx, args[0]); stderrors.Is(err, store.ErrNotFound) {
				return errors.New(errors.ErrCodeFigureNotFound, "no saved figure named %q", args[0])
			} else if err != nil {
				return err
			}

			printSuccess("Deleted figure %s", StyleHighlight.Render(args[0]))
			return nil
		},
	}
}

// storeClearCommand creates the "store clear" subcommand.
func (c *CLI) storeClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, _, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			figs, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(figs) == 0 {
				printInfo("Store is empty")
				return nil
			}

			count := 0
			for _, fig := range figs {
				if err := s.Delete(ctx, fig.Name); err == nil {
					count++
				}
			}

			printSuccess("Cleared %d saved figures", count)
			return nil
		},
	}
}

// storePathCommand creates the "store path" subcommand.
func (c *CLI) storePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the store location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			switch cfg.Store.Backend {
			case config.BackendFile:
				dir := cfg.Store.Dir
				if dir == "" {
					if dir, err = store.DefaultDir(); err != nil {
						return err
					}
				}
				fmt.Println(dir)
			case config.BackendRedis:
				fmt.Printf("redis://%s/%d\n", cfg.Store.Redis.Addr, cfg.Store.Redis.DB)
			case config.BackendMongo:
				fmt.Printf("%s (%s.%s)\n", cfg.Store.Mongo.URI, cfg.Store.Mongo.Database, cfg.Store.Mongo.Collection)
			default:
				fmt.Println(cfg.Store.Backend)
			}
			return nil
		},
	}
}

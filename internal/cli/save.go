package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plotspec/plotspec/pkg/errors"
	"github.com/plotspec/plotspec/pkg/examples"
	"github.com/plotspec/plotspec/pkg/render"
	"github.com/plotspec/plotspec/pkg/store"
)

// saveCommand creates the save command for persisting figures in the store.
func (c *CLI) saveCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:               "save [example]",
		Short:             "Save an example figure in the configured store",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: exampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSave(cmd.Context(), args[0], name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name to store the figure under (default: example name)")
	return cmd
}

func (c *CLI) runSave(ctx context.Context, exampleName, name string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	ex, err := examples.Find(exampleName)
	if err != nil {
		return err
	}

	if name == "" {
		name = ex.Name
	}
	if err := errors.ValidateFigureName(name); err != nil {
		return err
	}

	s, cfg, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	p := render.EnsureID(applyFigureDefaults(ex.Build(), cfg.Figure))
	doc, err := p.JSON()
	if err != nil {
		return err
	}
	logger.Debugf("Encoded figure %q: %d bytes", name, len(doc))

	fig := store.Figure{Name: name, SavedAt: time.Now().UTC(), Doc: doc}
	if err := s.Put(ctx, fig); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to save %q", name)
	}

	prog.done(fmt.Sprintf("Saved %s to %s backend", name, cfg.Store.Backend))
	printSuccess("Saved figure %s", StyleHighlight.Render(name))
	printDetail("serve it with: plotspec serve")
	return nil
}

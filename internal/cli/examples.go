package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/plotspec/plotspec/pkg/examples"
	"github.com/plotspec/plotspec/pkg/render"
)

// examplesCommand creates the examples command for listing bundled figures.
func (c *CLI) examplesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the bundled example figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runExamplePicker()
			}
			printExampleTable(examples.All())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick an example and print its JSON document")
	return cmd
}

// printExampleTable renders the example listing as a bordered table.
func printExampleTable(exs []examples.Example) {
	rows := make([][]string, 0, len(exs))
	for _, ex := range exs {
		p := ex.Build()
		rows = append(rows, []string{ex.Name, fmt.Sprintf("%d", len(p.Data)), ex.Description})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Example", "Traces", "Description").
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
	printDetail("render with: plotspec render <example>")
}

// runExamplePicker starts the interactive example picker and prints the
// selected figure's JSON document to stdout.
func runExamplePicker() error {
	p := tea.NewProgram(NewExampleListModel(examples.All()))
	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(ExampleListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	return render.WriteJSON(m.Selected.Build(), os.Stdout)
}

// exampleNames returns the bundled example names, for shell completion.
func exampleNames(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(examples.All()))
	for _, ex := range examples.All() {
		names = append(names, ex.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

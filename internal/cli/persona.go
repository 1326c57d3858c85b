package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List available personas",
		RunE:  runPersonasCmd,
	}
}

func runPersonasCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	list, err := app.registry().List()
	if err != nil {
		return fmt.Errorf("list personas: %w", err)
	}

	t := newTable("NAME", "DISPLAY NAME", "SYSTEM", "KNOWLEDGE", "SOURCE")
	for _, s := range list {
		source := app.registry().PersonasDir
		if s.Builtin {
			source = styleDim.Render("built-in")
		}

		name := s.Name
		if s.Name == app.Config.Persona {
			name = styleSuccess.Render(name + " *")
		}

		t.Row(name, s.DisplayName, check(s.HasSystem), fmt.Sprintf("%d", s.Knowledge), source)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func newPersonaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "persona [name]",
		Short: "Show a persona",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPersonaCmd,
	}
}

func runPersonaCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	p, err := app.loadPersona(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleTitle.Render(p.Name))
	fmt.Fprintln(out)

	printSection(out, "Bio", p.Bio)
	printSection(out, "Topics", p.Topics)
	printSection(out, "Style", p.Style.All)
	printSection(out, "Chat style", p.Style.Chat)

	fmt.Fprintln(out, styleName.Render("Knowledge"))
	for _, k := range p.Knowledge {
		first, _, _ := strings.Cut(k, "\n")
		fmt.Fprintln(out, "  "+first)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, styleName.Render("Examples"))
	for i, conv := range p.Examples {
		if len(conv) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %d. %s: %s %s\n", i+1, conv[0].Speaker, conv[0].Text,
			styleDim.Render(fmt.Sprintf("(%d messages)", len(conv))))
	}

	return nil
}

func printSection(out io.Writer, title string, lines []string) {
	fmt.Fprintln(out, styleName.Render(title))
	for _, line := range lines {
		fmt.Fprintln(out, "  - "+line)
	}
	fmt.Fprintln(out)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/erg0nix/callcoach/internal/plugin"
	"github.com/spf13/cobra"
)

func newPluginsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Show which framework plugins the environment enables",
		RunE:  runPluginsCmd,
	}

	cmd.Flags().BoolP("quiet", "q", false, "print only the resolved plugin list, one per line")

	return cmd
}

func runPluginsCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	out := cmd.OutOrStdout()

	if quiet {
		for _, c := range plugin.Resolve(app.Env) {
			fmt.Fprintln(out, c)
		}
		return nil
	}

	t := newTable("PLUGIN", "GROUP", "CONDITION", "LOADED")
	for _, d := range plugin.Explain(app.Env) {
		group := string(d.Rule.Group)
		t.Row(
			styleName.Render(string(d.Rule.Capability)),
			groupStyle(group).Render(group),
			describeCondition(d),
			check(d.Selected),
		)
	}

	fmt.Fprintln(out, t.Render())
	return nil
}

func describeCondition(d plugin.Decision) string {
	switch d.Rule.Mode {
	case plugin.Always:
		return styleDim.Render("always")
	case plugin.UnlessSet:
		cond := "unless " + strings.Join(d.Rule.Flags, ", ")
		if len(d.Missing) > 0 {
			return styleWarning.Render(cond)
		}
		return cond
	default:
		cond := strings.Join(d.Rule.Flags, " + ")
		if len(d.Missing) > 0 && len(d.Missing) < len(d.Rule.Flags) {
			cond += " " + styleWarning.Render("(missing "+strings.Join(d.Missing, ", ")+")")
		}
		return cond
	}
}

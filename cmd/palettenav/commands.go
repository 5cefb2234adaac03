package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/router"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/views"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	redirectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("PATH", "NAME", "TITLE", "TARGET")
			for _, r := range app.Navigator.Routes() {
				t.Row(r.Path, r.Name, app.Navigator.Title(router.Resolution{Route: &r}), routeTarget(r))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func routeTarget(r router.Route) string {
	switch {
	case r.Redirect != "":
		return "→ " + r.Redirect
	case r.View != nil:
		return r.View.Name()
	case r.Lazy != nil:
		return "lazy"
	default:
		return ""
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show which route a path resolves to and the title it sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			nav := app.Navigator
			res := nav.Resolve(args[0])
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s (%s)\n", labelStyle.Render("route:"), res.Name(), res.Path)
			if len(res.Params) > 0 {
				fmt.Fprintf(out, "%s %s\n", labelStyle.Render("params:"), formatParams(res.Params))
			}
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("title:"), titleStyle.Render(nav.Title(res)))
			if res.Redirected() {
				line := "redirected from " + res.RedirectedFrom
				if hint := nav.Suggest(res.RedirectedFrom); hint != "" {
					line += ", did you mean " + hint + "?"
				}
				fmt.Fprintln(out, redirectStyle.Render(line))
			}
			return nil
		},
	}
}

func navigateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <step>...",
		Short: "Replay a navigation sequence and render each view",
		Long: `Each step is a path, "back" or "forward". A step may end in @N to
scroll the page to N pixels after arriving; that offset is what back and
forward restore later.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			return replay(cmd.OutOrStdout(), app.Navigator, args)
		},
	}
}

// replay runs steps against nav, rendering each resulting view to out.
func replay(out io.Writer, nav *router.Navigator, steps []string) error {
	scroll := router.Top

	for _, step := range steps {
		target, after := parseStep(step)

		var (
			state *router.NavigationState
			err   error
		)
		switch target {
		case "back":
			state, err = nav.Back(scroll)
		case "forward":
			state, err = nav.Forward(scroll)
		default:
			state, err = nav.Push(target, scroll)
		}
		if err != nil {
			return fmt.Errorf("step %q: %w", step, err)
		}

		fmt.Fprintf(out, "%s %s [%s] %s top=%d\n",
			labelStyle.Render("→"), state.Path, state.Name(),
			titleStyle.Render(state.Title), state.Position.Top)
		if state.Redirected() {
			fmt.Fprintln(out, redirectStyle.Render("  redirected from "+state.RedirectedFrom))
		}
		if err := views.Render(indent{out}, state); err != nil {
			return fmt.Errorf("step %q: %w", step, err)
		}

		scroll = state.Position
		if after != nil {
			scroll = *after
		}
	}
	return nil
}

// parseStep splits "path@N" into the target and the offset scrolled to after
// arriving. A suffix that is not a number is part of the path.
func parseStep(step string) (string, *router.ScrollPosition) {
	idx := strings.LastIndexByte(step, '@')
	if idx < 0 {
		return step, nil
	}
	top, err := strconv.Atoi(step[idx+1:])
	if err != nil || top < 0 {
		return step, nil
	}
	return step[:idx], &router.ScrollPosition{Top: top}
}

func formatParams(params router.Params) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	return strings.Join(parts, " ")
}

// indent prefixes every write with two spaces; views write whole lines.
type indent struct {
	w io.Writer
}

func (i indent) Write(p []byte) (int, error) {
	if _, err := io.WriteString(i.w, "  "); err != nil {
		return 0, err
	}
	return i.w.Write(p)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/spf13/cobra"
)

// Route maps a view to its path and command name.
type Route struct {
	View    domain.View
	Path    string
	Command string
	Aliases []string
	Title   string
}

// Routes is the navigation table of the four views.
var Routes = []Route{
	{View: domain.ViewTimer, Path: "/", Command: "timer", Title: "Timer"},
	{View: domain.ViewHistory, Path: "/history", Command: "history", Title: "History"},
	{View: domain.ViewStatistics, Path: "/statistics", Command: "statistics", Aliases: []string{"stats"}, Title: "Statistics"},
	{View: domain.ViewSettings, Path: "/settings", Command: "settings", Title: "Settings"},
}

// ResolveRoute finds a route by path ("/history"), view or command name,
// or alias. Matching ignores case and a trailing slash.
func ResolveRoute(target string) (Route, bool) {
	t := strings.ToLower(strings.TrimSpace(target))
	if len(t) > 1 {
		t = strings.TrimSuffix(t, "/")
	}
	for _, r := range Routes {
		if t == r.Path || t == string(r.View) || t == r.Command {
			return r, true
		}
		for _, a := range r.Aliases {
			if t == a {
				return r, true
			}
		}
	}
	return Route{}, false
}

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Open a view by path (/, /history, /statistics, /settings)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, ok := ResolveRoute(args[0])
			if !ok {
				paths := make([]string, len(Routes))
				for i, r := range Routes {
					paths[i] = r.Path
				}
				return fmt.Errorf("unknown view %q (available: %s)", args[0], strings.Join(paths, ", "))
			}
			return openView(cmd, app, route.View)
		},
	}
}

func openView(cmd *cobra.Command, app *App, view domain.View) error {
	switch view {
	case domain.ViewTimer:
		return runTimerView(cmd, app)
	case domain.ViewHistory:
		return printHistory(cmd, app, 0)
	case domain.ViewStatistics:
		return printStatistics(cmd, app, 0)
	case domain.ViewSettings:
		return printSettings(cmd, app)
	}
	return fmt.Errorf("view %q has no renderer", view)
}

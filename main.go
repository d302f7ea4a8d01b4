// ABOUTME: Entry point for the billfold CLI, TUI and MCP server
// ABOUTME: Routes to session, client, project, invoice and preference commands
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"

	"github.com/harperreed/billfold/charm"
	"github.com/harperreed/billfold/cli"
	"github.com/harperreed/billfold/config"
	"github.com/harperreed/billfold/tui"
)

const version = "0.1.0"

type command func(context.Context, *cli.App, []string) error

var clientCommands = map[string]command{
	"list":   cli.ListClientsCommand,
	"add":    cli.AddClientCommand,
	"update": cli.UpdateClientCommand,
	"delete": cli.DeleteClientCommand,
}

var projectCommands = map[string]command{
	"list":   cli.ListProjectsCommand,
	"add":    cli.AddProjectCommand,
	"update": cli.UpdateProjectCommand,
	"delete": cli.DeleteProjectCommand,
}

var invoiceCommands = map[string]command{
	"list":   cli.ListInvoicesCommand,
	"add":    cli.AddInvoiceCommand,
	"update": cli.UpdateInvoiceCommand,
	"delete": cli.DeleteInvoiceCommand,
}

var topCommands = map[string]command{
	"login":     cli.LoginCommand,
	"signup":    cli.SignupCommand,
	"logout":    cli.LogoutCommand,
	"whoami":    cli.WhoamiCommand,
	"activity":  cli.ActivityCommand,
	"dashboard": cli.DashboardCommand,
	"theme":     cli.ThemeCommand,
	"profile":   cli.ProfileCommand,
	"viz":       cli.VizCommand,
}

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	cfgPath := flag.String("config", "", "Config file (default: ~/.local/share/billfold/config.json)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("billfold version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, commandArgs := args[0], args[1:]

	// The TUI owns the terminal, so its logs go to a file.
	logOut := os.Stderr
	if command == "tui" {
		f, err := openTUILog()
		if err != nil {
			fatal(err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}

	app, err := cli.NewApp(*cfgPath, logOut)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = app.Close() }()

	if err := route(ctx, app, command, commandArgs); err != nil {
		_ = app.Close()
		fatal(err)
	}
}

func route(ctx context.Context, app *cli.App, command string, args []string) error {
	switch command {
	case "clients":
		return routeSub(ctx, app, "clients", clientCommands, args)
	case "projects":
		return routeSub(ctx, app, "projects", projectCommands, args)
	case "invoices":
		return routeSub(ctx, app, "invoices", invoiceCommands, args)

	case "mcp":
		return cli.MCPCommand(ctx, app, version)

	case "tui":
		if err := app.Store.Resume(ctx); err != nil {
			app.Logger.Warn("resume failed; showing sign in", "err", err)
		}
		return tui.Run(ctx, app.Store)

	case "prefs":
		return routePrefs(app, args)
	}

	if cmd, ok := topCommands[command]; ok {
		return cmd(ctx, app, args)
	}

	printUsage()
	return fmt.Errorf("unknown command: %s", command)
}

func routeSub(ctx context.Context, app *cli.App, name string, cmds map[string]command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a subcommand (list, add, update, delete)", name)
	}
	cmd, ok := cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown %s command: %s", name, args[0])
	}
	return cmd(ctx, app, args[1:])
}

func routePrefs(app *cli.App, args []string) error {
	if len(args) == 0 {
		return charm.PrefsStatusCommand(app.Charm, os.Stdout, nil)
	}

	switch args[0] {
	case "status":
		return charm.PrefsStatusCommand(app.Charm, os.Stdout, args[1:])
	case "sync":
		return charm.PrefsSyncCommand(app.Charm, os.Stdout, args[1:])
	case "auto":
		return charm.PrefsAutoCommand(app.Charm.Config(), os.Stdout, args[1:])
	case "reset":
		return charm.PrefsResetCommand(app.Charm, os.Stdout, args[1:])
	default:
		return fmt.Errorf("unknown prefs command: %s", args[0])
	}
}

func openTUILog() (*os.File, error) {
	path, err := xdg.StateFile(filepath.Join(config.AppName, "tui.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Printf(`billfold v%s - clients, projects and invoices for freelancers

USAGE:
  billfold [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --config <path>        Config file (default: ~/.local/share/billfold/config.json)

SESSION:
  billfold login [--email <email>] [--password <pw>]   Sign in (password prompted)
  billfold signup --name <name> --email <email>        Create an account
  billfold logout                                       Forget the stored token
  billfold whoami                                       Show the signed-in user

CLIENTS:
  billfold clients list [--query <text>]
  billfold clients add --name <name> [--email <email>] [--phone <phone>]
  billfold clients update [--name] [--email] [--phone] <id>
  billfold clients delete <id>

PROJECTS:
  billfold projects list [--status active|completed|on-hold]
  billfold projects add --title <title> --client <id> [--amount <n>] [--status <s>]
  billfold projects update [--title] [--amount] [--status] <id>
  billfold projects delete <id>

INVOICES:
  billfold invoices list [--status draft|sent|paid|overdue] [--items]
  billfold invoices add --client <id> [--status <s>] --item "desc:qty:rate" [--item ...]
  billfold invoices update --status <s> <id>
  billfold invoices delete <id>

OVERVIEW:
  billfold dashboard                 Earnings, counts and recent activity
  billfold activity [--limit <n>]    Activity log, newest first
  billfold viz graph [--output <f>]  Client graph as DOT

SETTINGS:
  billfold theme [dark|light|toggle]
  billfold profile [--name] [--email]   Edit the profile for this session
  billfold prefs [status|sync|auto --enable|--disable|reset --confirm]

INTERFACES:
  billfold tui                       Interactive terminal UI
  billfold mcp                       MCP server on stdio

Note: flags must come before positional IDs.

EXAMPLES:
  billfold signup --name "Ada Lovelace" --email ada@example.com
  billfold clients add --name "Acme Corp" --email ops@acme.com --phone "650 253 0000"
  billfold invoices add --client 3 --status sent --item "Design:10:85" --item "Hosting:1:20"

`, version)
}

// ABOUTME: Commands for inspecting and syncing the preference store
// ABOUTME: status, sync, auto-sync toggle and a confirmed reset

package charm

import (
	"flag"
	"fmt"
	"io"
)

// PrefsStatusCommand shows where preferences live and what is stored.
func PrefsStatusCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("prefs status", flag.ContinueOnError)
	fs.SetOutput(w)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := c.Config()
	fmt.Fprintln(w, "Preference Store")
	fmt.Fprintln(w, "────────────────")
	if c.IsRemote() {
		fmt.Fprintf(w, "Server:    %s\n", cfg.Host)
		fmt.Fprintf(w, "Auto-sync: %v\n", cfg.AutoSync)
		if id, err := c.ID(); err == nil {
			fmt.Fprintf(w, "ID:        %s\n", id)
		} else {
			fmt.Fprintln(w, "ID:        unavailable")
		}
	} else {
		fmt.Fprintln(w, "Mode:      local only")
	}

	keys, err := c.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	fmt.Fprintf(w, "Keys:      %d\n", len(keys))

	prefs := NewPrefs(c)
	token, err := prefs.Token()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Signed in: %v\n", token != "")

	dark, ok, err := prefs.Theme()
	if err != nil {
		return err
	}
	theme := "system"
	if ok {
		theme = ThemeLight
		if dark {
			theme = ThemeDark
		}
	}
	fmt.Fprintf(w, "Theme:     %s\n", theme)

	return nil
}

// PrefsSyncCommand performs an immediate sync.
func PrefsSyncCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("prefs sync", flag.ContinueOnError)
	fs.SetOutput(w)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !c.IsRemote() {
		fmt.Fprintln(w, "Local-only store, nothing to sync")
		return nil
	}
	if err := c.Sync(); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	fmt.Fprintln(w, "✓ Synced")
	return nil
}

// PrefsAutoCommand enables or disables auto-sync.
func PrefsAutoCommand(cfg *Config, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("prefs auto", flag.ContinueOnError)
	fs.SetOutput(w)
	enable := fs.Bool("enable", false, "Enable auto-sync")
	disable := fs.Bool("disable", false, "Disable auto-sync")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *enable == *disable:
		fmt.Fprintln(w, "Usage: billfold prefs auto --enable|--disable")
		return nil
	case *enable:
		if err := cfg.SetAutoSync(true); err != nil {
			return fmt.Errorf("failed to enable auto-sync: %w", err)
		}
		fmt.Fprintln(w, "✓ Auto-sync enabled")
	default:
		if err := cfg.SetAutoSync(false); err != nil {
			return fmt.Errorf("failed to disable auto-sync: %w", err)
		}
		fmt.Fprintln(w, "✓ Auto-sync disabled")
	}
	return nil
}

// PrefsResetCommand wipes the store. Requires --confirm.
func PrefsResetCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("prefs reset", flag.ContinueOnError)
	fs.SetOutput(w)
	confirm := fs.Bool("confirm", false, "Confirm reset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*confirm {
		fmt.Fprintln(w, "WARNING: This signs you out and forgets your theme.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "To confirm, run:")
		fmt.Fprintln(w, "  billfold prefs reset --confirm")
		return nil
	}

	if err := c.Reset(); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}
	fmt.Fprintln(w, "✓ Preferences reset")
	return nil
}

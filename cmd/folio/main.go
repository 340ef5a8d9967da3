package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"folio/internal/bootstrap"
	"folio/internal/platform/config"
	"folio/internal/platform/logging"
)

type rootOptions struct {
	dir     string
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dir, "dir", ".", "data directory holding folio.yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newTierCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newSnapshotCmd(opts))
	root.AddCommand(newContactCmd(opts))
	root.AddCommand(newThemeCmd(opts))
	root.AddCommand(newLangCmd(opts))
	root.AddCommand(newCVCmd(opts))
	root.AddCommand(newProjectsCmd(opts))
	return root
}

// withApp builds the application for one command and tears it down after.
func withApp(opts *rootOptions, fn func(app *bootstrap.App) error) error {
	cfg, err := config.New(opts.dir)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogPath, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	app, err := bootstrap.New(cfg, log)
	if err != nil {
		log.Error("bootstrap failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("close", zap.Error(err))
		}
	}()
	return fn(app)
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	return withApp(opts, func(app *bootstrap.App) error {
		return app.RunTUI(ctx)
	})
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal portfolio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
}

func newTierCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tier",
		Short: "Classify this terminal's capability tier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				app.Probe(cmd.Context())
				out, err := app.CapabilityCLI.Describe(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(w, out)
				}
				s := out.Signals
				_, _ = fmt.Fprintf(w, "tier: %s\n", out.Tier)
				_, _ = fmt.Fprintf(w, "viewport: %dpx\ncores: %d\nnetwork: %s\nreduced motion: %t\nfeatures: %t\nhover pointer: %t\n",
					s.ViewportWidth, s.Cores, s.Network, s.ReducedMotion, s.FeaturesPresent, s.HoverPointer)
				_, _ = fmt.Fprintf(w, "cursor: %t\n", out.Cursor)
				if out.Ambient.Enabled {
					_, _ = fmt.Fprintf(w, "ambient: %d particles @ %dfps connections=%t\n", out.Ambient.Particles, out.Ambient.FPS, out.Ambient.Connections)
				} else {
					_, _ = fmt.Fprintln(w, "ambient: off")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the whole page without the interactive UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 {
				width = 80
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
					width = w
				}
			}
			return withApp(opts, func(app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.RenderPage(width))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "columns (defaults to the terminal width)")
	return cmd
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var width, height, frames, cores int
	var seed uint64
	var out string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render ambient frames offscreen to a PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(out) == "" {
				return fmt.Errorf("--out is required")
			}
			return withApp(opts, func(app *bootstrap.App) error {
				res, err := app.AmbientCLI.Snapshot(cmd.Context(), width, height, frames, cores, seed, out)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if res.Suppressed {
					_, _ = fmt.Fprintf(w, "ambient suppressed for %dx%d with %d cores; nothing drawn\n", width, height, cores)
					return nil
				}
				_, _ = fmt.Fprintf(w, "wrote %s: %d particles, %d links, %d frames @ %dfps\n", res.Path, res.Particles, res.Links, res.Frames, res.FPS)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&width, "width", 1280, "canvas width in px")
	cmd.Flags().IntVar(&height, "height", 720, "canvas height in px")
	cmd.Flags().IntVar(&frames, "frames", 60, "frames to simulate")
	cmd.Flags().IntVar(&cores, "cores", 0, "reported cores (0 = unknown)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "particle seed")
	cmd.Flags().StringVar(&out, "out", "", "PNG output path")
	return cmd
}

func newContactCmd(opts *rootOptions) *cobra.Command {
	contact := &cobra.Command{Use: "contact", Short: "Contact form"}

	var name, email, message string
	send := &cobra.Command{
		Use:   "send --name <name> --email <email> --message <text>",
		Short: "Send a message through the contact form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.ContactCLI.Send(cmd.Context(), name, email, message)
				if err != nil {
					return fmt.Errorf("contact %s: %w", out.Status, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "contact: %s\n", out.Status)
				return nil
			})
		},
	}
	send.Flags().StringVar(&name, "name", "", "your name")
	send.Flags().StringVar(&email, "email", "", "your email")
	send.Flags().StringVar(&message, "message", "", "message body")

	contact.AddCommand(send)
	return contact
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	themeCmd := &cobra.Command{Use: "theme", Short: "Light or dark theme"}

	themeCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the active theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.PreferenceCLI.Theme(cmd.Context()).Theme)
				return nil
			})
		},
	})
	themeCmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark>",
		Short: "Save the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.PreferenceCLI.SetTheme(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Theme)
				return nil
			})
		},
	})
	themeCmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip and save the theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.PreferenceCLI.ToggleTheme(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Theme)
				return nil
			})
		},
	})
	return themeCmd
}

func newLangCmd(opts *rootOptions) *cobra.Command {
	lang := &cobra.Command{Use: "lang", Short: "Interface language"}

	lang.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the saved language",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				saved, err := app.PreferenceCLI.Language(cmd.Context())
				if err != nil {
					return err
				}
				if saved == "" {
					saved = "(not set)"
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), saved)
				return nil
			})
		},
	})
	lang.AddCommand(&cobra.Command{
		Use:   "set <en|es>",
		Short: "Save the language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				if err := app.PreferenceCLI.SetLanguage(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), args[0])
				return nil
			})
		},
	})
	return lang
}

func newCVCmd(opts *rootOptions) *cobra.Command {
	var page int
	var open bool
	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Print a page of the CV or open it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				w := cmd.OutOrStdout()
				if open {
					out, err := app.ResumeCLI.Open(cmd.Context())
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(w, "opened %s\n", out.Path)
					return nil
				}
				out, err := app.ResumeCLI.Text(cmd.Context(), page)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "page %d/%d\n\n%s\n", out.Page, out.TotalPage, out.Text)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to print")
	cmd.Flags().BoolVar(&open, "open", false, "open the PDF with the system viewer")
	return cmd
}

func newProjectsCmd(opts *rootOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List portfolio projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.ContentCLI.Projects(category)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(out.Projects) == 0 {
					_, _ = fmt.Fprintln(w, "no projects")
					return nil
				}
				for _, p := range out.Projects {
					link := p.Demo
					if link == "" {
						link = p.GitHub
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Key, p.Category, strings.Join(p.Technologies, ","), link)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category key or label")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

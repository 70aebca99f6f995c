// Package cli is the fragments command line: it renders amenity lists and
// profile headers from declarative YAML files without a database.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cupid_fragments/internal/adapters/observability"
	"cupid_fragments/internal/amenities"
	"cupid_fragments/internal/app"
	"cupid_fragments/internal/domain"
	"cupid_fragments/internal/grid"
	"cupid_fragments/internal/profileheader"
)

var (
	// Version is set at build time
	Version = "dev"
)

// App holds the CLI application state.
type App struct {
	root     *cobra.Command
	out      io.Writer
	log      zerolog.Logger
	debug    bool
	gridMode string
}

// NewApp wires the command tree. Fragments go to out unless -o is given;
// logs go to errOut.
func NewApp(out, errOut io.Writer) *App {
	a := &App{out: out}

	a.root = &cobra.Command{
		Use:   "fragments",
		Short: "Render property page fragments to HTML",
		Long: `fragments renders the amenities list and the profile header
from YAML input files, the same way the API does.

Example:
  fragments amenities -f amenities.yaml --columns 2
  fragments header -f profile.yaml --alignment left -o header.html`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := "warn"
			if a.debug {
				level = "debug"
			}
			a.log = observability.NewLogger(errOut, "dev", "fragments", level)
		},
	}
	a.root.SetOut(out)
	a.root.SetErr(errOut)

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	a.root.PersistentFlags().StringVar(&a.gridMode, "grid-mode", string(grid.Static), "Column width unit: static or fluid")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.amenitiesCmd())
	a.root.AddCommand(a.headerCmd())
	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fragments %s\n", Version)
		},
	}
}

// SetArgs overrides os.Args, mostly for tests.
func (a *App) SetArgs(args []string) { a.root.SetArgs(args) }

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) service() (*app.FragmentService, error) {
	mode, err := grid.ParseMode(a.gridMode)
	if err != nil {
		return nil, err
	}
	// nothing is loaded from storage; only the pure render paths are used
	return app.NewFragmentService(nil, nil, 0,
		amenities.New(grid.Pin(grid.DefaultSettings(), mode)),
		profileheader.NewComposer(),
	), nil
}

func decodeFile(path string, dst any) error {
	if path == "" {
		return fmt.Errorf("an input file is required (-f)")
	}
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (a *App) write(output string, f domain.Fragment) error {
	if output == "" {
		_, err := fmt.Fprintln(a.out, f.HTML)
		return err
	}
	if err := os.WriteFile(output, []byte(f.HTML+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	a.log.Info().Str("path", output).Str("etag", f.ETag).Msg("fragment written")
	return nil
}

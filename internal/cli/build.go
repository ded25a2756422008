package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evtpages/evtpages/internal/build"
	"github.com/evtpages/evtpages/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build [target...]",
	Short: "Build derived files from the master document",
	Long: `Build output files derived from the master document.

Targets:
  all                   every derived file
  list                  print the computed tag and event lists
  help, doc             print the available targets
  <prefix><tag><ext>    one tag's test page, e.g. evt_div.html
  <script>              the shared script file, e.g. evtest.js
  manual.html           the rendered manual

With no target, the available targets are printed. A file target is skipped
when its output is already newer than the master document.

Examples:
  evtpages build all
  evtpages build evt_div.html evtest.js
  evtpages build list -f json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(args)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(targets []string) error {
	d, err := newDriver()
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		printTargets(d)
		return nil
	}

	for _, target := range targets {
		switch target {
		case "help", "doc":
			printTargets(d)
		case "all":
			if err := d.BuildAll(); err != nil {
				return err
			}
		case "list":
			f := formatter()
			if err := f.FormatNames(os.Stdout, "tags", d.Doc().Tags); err != nil {
				return err
			}
			if err := f.FormatNames(os.Stdout, "events", d.Doc().Events); err != nil {
				return err
			}
		default:
			if err := d.Build(target); err != nil {
				return err
			}
		}
	}
	return nil
}

func printTargets(d *build.Driver) {
	fmt.Println("available targets:")
	fmt.Println("  all")
	fmt.Println("  list")
	for _, target := range d.Targets() {
		fmt.Printf("  %s\n", target)
	}
}

// newDriver builds a driver over the current master document snapshot and
// the configured output naming.
func newDriver() (*build.Driver, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	cfg := config.Get()
	return build.New(build.Options{
		MasterPath: masterFile(),
		Dir:        cfg.Output.Dir,
		Prefix:     cfg.Output.Prefix,
		Ext:        cfg.Output.Ext,
		Script:     cfg.Output.Script,
		Catalog:    cat,
		Trace:      tracer(),
	})
}

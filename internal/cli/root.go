package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/evtpages/evtpages/internal/catalog"
	"github.com/evtpages/evtpages/internal/config"
	"github.com/evtpages/evtpages/internal/dbx"
	"github.com/evtpages/evtpages/internal/master"
	"github.com/evtpages/evtpages/internal/output"
	"github.com/evtpages/evtpages/internal/render"
)

var (
	cfgFile    string
	masterFlag string
	format     string
	dbxTTY     bool
	dbxHTML    bool

	flagJS         bool
	flagClose      bool
	flagListTags   bool
	flagListEvents bool
)

var rootCmd = &cobra.Command{
	Use:   "evtpages [tags...]",
	Short: "Generate DOM event-handler test pages",
	Long: `Generate static HTML pages that enumerate DOM event-handler attributes,
for manually probing browser support of event names.

Tag names given as arguments are rendered into the master document's splice
points and printed to stdout. Any string is accepted as a tag name; unknown
tags render as themselves.

Examples:
  evtpages div span         # demonstration fieldsets for div and span
  evtpages title            # head-only tags render into the document head
  evtpages frameset frame   # the frameset page replaces the body entirely
  evtpages --js             # print only the shared script region
  evtpages --list-tags      # query mode: one tag name per line
  evtpages build all        # build every derived output file`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Init(cfgFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&masterFlag, "master", "", "Path to the master document (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format for query modes (plain, json)")
	rootCmd.PersistentFlags().BoolVar(&dbxTTY, "dbx-tty", false, "Trace rendering decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&dbxHTML, "dbx-html", false, "Interleave trace lines as HTML comments in the output")

	rootCmd.Flags().BoolVar(&flagJS, "js", false, "Print only the extracted script region and exit")
	rootCmd.Flags().BoolVar(&flagClose, "close", false, "Render only the given tags that require explicit closing markup")
	rootCmd.Flags().BoolVar(&flagListTags, "list-tags", false, "Print the extracted tag names and exit")
	rootCmd.Flags().BoolVar(&flagListEvents, "list-events", false, "Print the extracted event names and exit")
}

// Execute runs the CLI application.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	// help is a distinguished usage status, not success
	if cmd != nil && cmd.Flags().Changed("help") {
		return NewExitCodeError(ExitUsage, "help requested")
	}
	return nil
}

func runRoot(tags []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	switch {
	case flagJS:
		_, err := io.WriteString(os.Stdout, doc.Script)
		return err
	case flagListTags:
		return formatter().FormatNames(os.Stdout, "tags", doc.Tags)
	case flagListEvents:
		return formatter().FormatNames(os.Stdout, "events", doc.Events)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if flagClose {
		tags = closingOnly(tags, cat)
	}
	r := render.New(doc.Events, cat, tracer())
	return r.Page(os.Stdout, doc.Markup, tags)
}

// closingOnly drops tags with no closing form.
func closingOnly(tags []string, cat *catalog.Catalog) []string {
	var out []string
	for _, tag := range tags {
		if !cat.Empty.Has(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// masterFile resolves the master document path from the flag or config.
func masterFile() string {
	if masterFlag != "" {
		return masterFlag
	}
	if cfg := config.Get(); cfg != nil && cfg.Master != "" {
		return cfg.Master
	}
	return "master.html"
}

func loadDocument() (*master.Document, error) {
	return master.Load(masterFile())
}

// loadCatalog returns the configured catalog, or the built-in one when no
// override file is configured.
func loadCatalog() (*catalog.Catalog, error) {
	cfg := config.Get()
	if cfg == nil || cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog)
}

func formatter() output.Formatter {
	f := format
	if f == "" {
		if cfg := config.Get(); cfg != nil {
			f = cfg.Defaults.Format
		}
	}
	return output.New(output.Format(f))
}

func tracer() dbx.Tracer {
	switch {
	case dbxHTML:
		return dbx.NewHTML(os.Stdout)
	case dbxTTY:
		return dbx.NewTTY()
	}
	return dbx.Nop
}

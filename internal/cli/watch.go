package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evtpages/evtpages/internal/build"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild outputs whenever the master document changes",
	Long: `Watch the master document and rebuild every derived file after each
change. Runs one full build immediately, then blocks until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch() error {
	// a fresh driver per rebuild, so every build sees the changed document
	rebuild := func() error {
		d, err := newDriver()
		if err != nil {
			return err
		}
		return d.BuildAll()
	}
	if err := rebuild(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "watching %s\n", masterFile())
	return build.Watch(masterFile(), rebuild, func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})
}

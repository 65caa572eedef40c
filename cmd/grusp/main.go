// Command grusp searches files (or stdin) for a regular expression and
// reports every matching line with its captured spans.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kc/grusp/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfg cli.Config
	exitCode := 0

	root := &cobra.Command{
		Use:   "grusp [flags] REGEX [PATTERN...]",
		Short: "Searches with regex through files",
		Long: `grusp searches the given files, directories, or globs for a regular
expression and prints every matching line with its matches highlighted.
With no PATTERN arguments it searches standard input.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Queries = args[1:]
			exitCode = cli.Run(cfg)
			return nil
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "match case insensitively")
	flags.BoolVarP(&cfg.CaseSensitive, "case-sensitive", "s", false, "match case sensitively")
	flags.BoolVarP(&cfg.PCRE, "pcre", "P", false, "use PCRE2 pattern syntax")
	flags.BoolVarP(&cfg.CountOnly, "count", "c", false, "print only match counts")
	flags.BoolVarP(&cfg.Invert, "invert-match", "v", false, "select lines not matching the pattern")
	flags.BoolVarP(&cfg.FilesWithMatches, "files-with-matches", "l", false, "print only names of files with matches")
	flags.BoolVarP(&cfg.FilesWithoutMatches, "files-without-matches", "L", false, "print only names of files without matches")
	flags.BoolVar(&cfg.Unthreaded, "unthreaded", false, "run in a single thread")
	flags.IntVar(&cfg.Workers, "workers", 0, "number of parallel workers (0 = all CPUs)")
	flags.IntVar(&cfg.MaxDepth, "max-depth", -1, "limit directory recursion depth (-1 = unlimited)")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not respect .gitignore files")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "search hidden files and directories")
	flags.BoolVar(&cfg.NoColor, "nocolor", false, "do not color output")

	// Config file flags come first so the command line overrides them.
	root.SetArgs(append(cli.LoadConfigArgs(), os.Args[1:]...))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return exitCode
}

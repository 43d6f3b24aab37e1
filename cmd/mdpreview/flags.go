package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// previewFlags holds all command-line options.
type previewFlags struct {
	owner      string
	repo       string
	endpoint   string
	emojiPath  string
	output     string
	knownUsers []string
	knownTeams []string
	plainCode  bool
	version    bool

	input string // positional markdown file
}

// parseFlags parses args (without the program name) into previewFlags.
func parseFlags(args []string) (*previewFlags, error) {
	f := &previewFlags{}

	fs := flag.NewFlagSet("mdpreview", flag.ContinueOnError)
	fs.StringVar(&f.owner, "owner", "", "repository owner for issue/mention links")
	fs.StringVar(&f.repo, "repo", "", "repository name for issue/mention links")
	fs.StringVar(&f.endpoint, "endpoint", "", "HTML base URL (default https://github.com)")
	fs.StringVar(&f.emojiPath, "emoji", "", "YAML file mapping emoji shortcodes to asset paths")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringSliceVar(&f.knownUsers, "known-user", nil, "login the mention filter should link (repeatable)")
	fs.StringSliceVar(&f.knownTeams, "known-team", nil, "org/slug the team filter should link (repeatable)")
	fs.BoolVar(&f.plainCode, "plain-code", false, "disable syntax highlighting of code blocks")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.version {
		return f, nil
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, fmt.Errorf("usage: mdpreview [flags] FILE.md")
	}
	f.input = rest[0]

	if (f.owner == "") != (f.repo == "") {
		return nil, fmt.Errorf("--owner and --repo must be set together")
	}

	return f, nil
}

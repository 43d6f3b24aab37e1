package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Gottsteinji/gitdesktop"
)

// run executes the preview: parse flags, build the renderer, write HTML.
func run(args []string, stdout io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}

	markdown, err := os.ReadFile(flags.input) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("reading %q: %w", flags.input, err)
	}

	opts, err := rendererOptions(flags)
	if err != nil {
		return err
	}

	out, err := gitdesktop.NewRenderer(opts...).Render(context.Background(), string(markdown))
	if err != nil {
		return fmt.Errorf("rendering %q: %w", flags.input, err)
	}

	if flags.output != "" {
		return os.WriteFile(flags.output, []byte(out+"\n"), 0o644)
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// rendererOptions translates flags into renderer options.
func rendererOptions(flags *previewFlags) ([]gitdesktop.RendererOption, error) {
	var opts []gitdesktop.RendererOption

	if flags.emojiPath != "" {
		set, err := gitdesktop.LoadEmojiSet(flags.emojiPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gitdesktop.WithEmojiSet(set))
	} else {
		// Unicode-only emoji still work without a mapping file.
		opts = append(opts, gitdesktop.WithEmojiSet(gitdesktop.NewEmojiSet(nil)))
	}

	if flags.owner != "" {
		repo := &gitdesktop.Repository{
			Owner:    flags.owner,
			Name:     flags.repo,
			Endpoint: flags.endpoint,
		}
		if err := repo.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, gitdesktop.WithRepository(repo))
	}

	if len(flags.knownUsers) > 0 || len(flags.knownTeams) > 0 {
		resolver := gitdesktop.NewStaticResolver(flags.knownUsers, flags.knownTeams)
		opts = append(opts, gitdesktop.WithResolver(resolver))
	}

	if flags.plainCode {
		opts = append(opts, gitdesktop.WithoutHighlighting())
	}

	return opts, nil
}

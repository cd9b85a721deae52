package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const stdinName = "<stdin>"

// source is one input to process.
type source struct {
	name string
	data []byte
}

// readSources loads the named files concurrently, or stdin when there are no
// names. The result keeps the order of names.
func readSources(ctx context.Context, stdin io.Reader, names []string, jobs int) ([]source, error) {
	if len(names) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return []source{{name: stdinName, data: data}}, nil
	}

	sources := make([]source, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, name := range names {
		i, name := i, name // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "reading %s", name)
			}
			sources[i] = source{name: name, data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

// processSources runs fn over every source concurrently and writes the
// outputs in input order. With more than one source each output gets a
// header naming its source.
func processSources(ctx context.Context, w io.Writer, sources []source, jobs int, fn func(source) (string, error)) error {
	outputs := make([]string, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, src := range sources {
		i, src := i, src // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := fn(src)
			if err != nil {
				return errors.Wrap(err, src.name)
			}
			slog.Debug("processed", "source", src.name, "bytes", len(src.data))
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if len(sources) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", sources[i].name)
		}
		fmt.Fprint(w, out)
	}
	return nil
}

// lines joins items with a trailing newline after each one.
func lines[T fmt.Stringer](items []T) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

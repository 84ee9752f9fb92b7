// Command components reads whitespace-separated label pairs, one pair per
// line, and prints each connected component on its own line. With no file
// arguments it reads stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outofforest/disjoint"
	"github.com/outofforest/logger"
	"github.com/outofforest/mass"
	"github.com/outofforest/parallel"
)

func main() {
	cmd := &cobra.Command{
		Use:           "components [files...]",
		Short:         "Group labelled pairs into connected components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithLogger(cmd.Context(), logger.New(logger.DefaultConfig))
			return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
				spawn("components", parallel.Exit, func(ctx context.Context) error {
					return run(ctx, args, cmd.OutOrStdout())
				})
				return nil
			})
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type pair struct {
	A, B string
}

func run(ctx context.Context, paths []string, out io.Writer) error {
	pairs, labels, err := load(paths)
	if err != nil {
		return err
	}

	registry := disjoint.New[string](uint64(len(labels)))
	ids := make(map[string]disjoint.ID, len(labels))
	for i, label := range labels {
		if err := registry.Append(label); err != nil {
			return err
		}
		ids[label] = disjoint.ID(i)
	}
	registry.AssignIDs()

	for i := range disjoint.ID(registry.Len()) {
		if err := registry.MakeSet(i); err != nil {
			return err
		}
	}
	for _, p := range pairs {
		if err := registry.Union(ids[p.A], ids[p.B]); err != nil {
			return err
		}
	}

	if err := registry.CompressSets(); err != nil {
		return err
	}
	registry.SortByParent()

	logger.Get(ctx).Info("partitioned",
		zap.Uint64("elements", registry.Len()),
		zap.Int("pairs", len(pairs)),
		zap.Uint64("components", registry.CountSets()),
	)

	var printErr error
	registry.Sets()(func(s disjoint.Set[string]) bool {
		members := lo.Map(s.Elements, func(e disjoint.Element[string], _ int) string {
			return e.Payload
		})
		_, printErr = fmt.Fprintln(out, strings.Join(members, " "))
		return printErr == nil
	})
	return printErr
}

// load parses all inputs, staging pair records in chunked pre-allocated
// batches, and returns the labels in first-seen order.
func load(paths []string) ([]*pair, []string, error) {
	massPair := mass.New[pair](1024)
	pairs := make([]*pair, 0, 1024)
	labels := []string{}
	seen := map[string]struct{}{}

	record := func(label string) {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	scan := func(name string, r io.Reader) error {
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			fields := strings.Fields(scanner.Text())
			switch len(fields) {
			case 0:
			case 2:
				p := massPair.New()
				p.A, p.B = fields[0], fields[1]
				pairs = append(pairs, p)
				record(p.A)
				record(p.B)
			default:
				return errors.Errorf("%s:%d: expected 2 labels, got %d", name, line, len(fields))
			}
		}
		return errors.Wrapf(scanner.Err(), "reading %s failed", name)
	}

	if len(paths) == 0 {
		if err := scan("stdin", os.Stdin); err != nil {
			return nil, nil, err
		}
		return pairs, labels, nil
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		err = scan(path, f)
		_ = f.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	return pairs, labels, nil
}

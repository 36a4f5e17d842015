package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Subcommand is the signature of a sub command that can be registered.
type Subcommand func(context.Context, *flags.Parser) error

// Register registers one or more subcommands.
func Register(ctx context.Context, parser *flags.Parser, cmds ...Subcommand) error {
	for _, fn := range cmds {
		if err := fn(ctx, parser); err != nil {
			return err
		}
	}
	return nil
}

type empty struct{}

func Main(ctx context.Context) error {
	parser := flags.NewParser(&empty{}, flags.Default)

	if err := Register(ctx, parser,
		Init,
		Node,
		GetPrice,
		Subscribe,
		BulkOrder,
		PublishPrice,
		Version,
	); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return err
	}

	if _, err := parser.Parse(); err != nil {
		return err
	}
	return nil
}

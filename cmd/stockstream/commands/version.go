package commands

import (
	"context"
	"fmt"

	"code.vegaprotocol.io/stockstream/version"

	"github.com/jessevdk/go-flags"
)

type versionCmd struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

func (cmd *versionCmd) Execute(_ []string) error {
	if cmd.Help {
		return &flags.Error{
			Type:    flags.ErrHelp,
			Message: "stockstream version subcommand help",
		}
	}
	fmt.Printf("stockstream CLI %s (%s)\n", version.Get(), version.GetCommitHash())
	return nil
}

func Version(_ context.Context, parser *flags.Parser) error {
	_, err := parser.AddCommand("version", "Show version info", "Show version info", &versionCmd{})
	return err
}

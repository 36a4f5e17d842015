package commands

import (
	"context"
	"fmt"

	"code.vegaprotocol.io/stockstream/config"
	"code.vegaprotocol.io/stockstream/logging"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type initCmd struct {
	config.RootPathFlag

	Force bool `short:"f" long:"force" description:"Erase the existing configuration at the root path"`
}

func (opts *initCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	if err := config.Save(opts.RootPath, config.NewDefaultConfig(), opts.Force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("configuration already exists at `%v` please remove it first or re-run using -f", opts.RootPath)
		}
		return err
	}

	log.Info("configuration generated successfully", logging.String("path", config.Path(opts.RootPath)))
	return nil
}

func Init(_ context.Context, parser *flags.Parser) error {
	cmd := &initCmd{
		RootPathFlag: config.NewRootPathFlag(),
	}
	_, err := parser.AddCommand("init", "Initialise a stockstream node", "Generate the default configuration of a stockstream node", cmd)
	return err
}

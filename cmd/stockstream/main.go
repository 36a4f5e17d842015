package main

import (
	"context"
	"os"

	"code.vegaprotocol.io/stockstream/cmd/stockstream/commands"

	"github.com/jessevdk/go-flags"
)

func main() {
	if err := commands.Main(context.Background()); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

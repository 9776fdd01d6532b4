// Package main is the entry point for the utune application.
package main

import (
	"github.com/samber/lo"

	"github.com/utune-cli/utune/cmd"
	"github.com/utune-cli/utune/config"
	"github.com/utune-cli/utune/internal/cache"
	"github.com/utune-cli/utune/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background cache maintenance.
	go cache.CollectGarbage()

	cmd.Execute()
}

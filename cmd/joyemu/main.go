//go:build linux

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/electronoora/joyemu/internal/app"
	"github.com/electronoora/joyemu/internal/config"
	"github.com/electronoora/joyemu/internal/logging"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := config.CandidatePaths(userCfg)

	var cli config.CLI
	kong.Parse(&cli,
		kong.Name("joyemu"),
		kong.Description("Emulates two classic 9-pin joystick ports from modern USB/Bluetooth input devices."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	log := logging.New(os.Stderr, cli.LogLevelValue())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, &cli, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("JOYEMU_CONFIG")
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/uno-online/server/client"
	"github.com/uno-online/server/render"
)

var CLI struct {
	Host string `help:"Server address." default:"localhost"`
	Port int    `help:"Server port." default:"5555"`
	Name string `help:"Display name sent to the server." default:"Henry"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("uno-client"),
		kong.Description("Terminal client for the Uno server."),
		kong.UsageOnError(),
	)

	err := client.Run(client.Config{
		Host: CLI.Host,
		Port: CLI.Port,
		Name: CLI.Name,
	}, os.Stdin, render.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

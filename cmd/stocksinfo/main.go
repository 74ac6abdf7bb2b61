package main

import (
	"fmt"
	"os"

	"stocksinfo/cmd/stocksinfo/command"

	"github.com/joho/godotenv"
)

func init() { _ = godotenv.Load() }

func main() {
	if err := command.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/jungle-app/jungle-booking/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

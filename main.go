package main

import (
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/stevemurr/kvfile/command"
)

func main() {
	if err := command.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

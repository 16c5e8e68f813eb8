package main

import (
	"os"

	"github.com/summonkit/summon-python/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

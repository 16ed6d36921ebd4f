package main

import (
	"os"

	"github.com/Benchkram/errz"

	"github.com/MaTriXy/just-bash/cmd"
	"github.com/MaTriXy/just-bash/internal/config"
)

func main() {
	errz.Fatal(config.Init(), "Failed to load just-bash's config")

	os.Exit(cmd.Execute())
}

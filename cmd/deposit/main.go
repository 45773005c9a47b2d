package main

import (
	"os"

	"github.com/warp/deposit-engine/cmd/deposit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"github.com/luckyroad/casinohub/internal/cli"
)

func main() {
	cli.Execute()
}

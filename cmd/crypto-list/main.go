package main

import (
	"github.com/ukimsanov/Crypto-List/pkg/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"os"

	"github.com/sokinpui/bulkfm"
)

func main() {
	os.Exit(bulkfm.Execute())
}

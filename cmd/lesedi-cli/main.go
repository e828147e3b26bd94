package main

import (
	"github.com/lesedi-io/lesedi/cmd/lesedi-cli/app"
)

func main() {
	app.NewApp().Run()
}

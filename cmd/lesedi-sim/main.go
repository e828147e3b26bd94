package main

import (
	"github.com/lesedi-io/lesedi/cmd/lesedi-sim/app"
)

func main() {
	app.NewApp().Run()
}

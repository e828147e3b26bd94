package main

import (
	"github.com/lesedi-io/lesedi/cmd/mookodi-pipeline/app"
)

func main() {
	app.NewApp().Run()
}

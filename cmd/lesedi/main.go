package main

import (
	"github.com/lesedi-io/lesedi/cmd/lesedi/app"
)

func main() {
	app.NewApp().Run()
}

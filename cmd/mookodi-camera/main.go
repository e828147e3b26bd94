package main

import (
	"github.com/lesedi-io/lesedi/cmd/mookodi-camera/app"
)

func main() {
	app.NewApp().Run()
}

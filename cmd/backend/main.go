package main

import (
	"musicplayer/cmd/backend/app"
)

func main() {
	app.Execute()
}

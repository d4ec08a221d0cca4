package main

import (
	"chatflow/app"
)

func main() {
	app.Run()
}

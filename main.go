package main

import "hope-backend/internal/app"

func main() {
	app.Run()
}

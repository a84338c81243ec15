package main

import "pmreport/internal/app/server"

func main() {
	server.Run()
}

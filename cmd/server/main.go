package main

import "fsadmin/internal/app/server"

func main() {
	server.Run()
}

package main

import "contact_phone_backend/internal/cli"

func main() {
	cli.Execute()
}

package main

import "gossip/internal/app"

// @title           Gossip API
// @version         1.0
// @description     Account registration, email verification and login.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func main() {
	app.Run()
}

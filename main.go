package main

import "github.com/oussama2210/intimate-essentials-shop/app"

func main() {
	app.Run()
}

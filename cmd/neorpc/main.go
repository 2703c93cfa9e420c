package main

import "github.com/LeJamon/goNeoRPC/internal/cli"

func main() {
	cli.Execute()
}

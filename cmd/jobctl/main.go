package main

import "github.com/spec-kit/job-board/cmd/jobctl/cmd"

func main() {
	cmd.Execute()
}

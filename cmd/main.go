package main

import (
	"fmt"

	"github.com/relicio/carvex/cmd/cmd"
	"github.com/relicio/carvex/internal/buildinfo"
)

func main() {
	printBanner()

	_ = cmd.Execute()
}

func printBanner() {
	fmt.Println(" _____ _   _ _____   _____ __ __")
	fmt.Println("/  __/| | | |  _  | /  __//_ /_/")
	fmt.Println("| |   | |_| | |_| | | |    / /")
	fmt.Println("| |__ |  _  |  _ <  | |__ / /")
	fmt.Println("\\___/ |_| |_|_| \\_\\ \\___//_/")
	fmt.Println()
	fmt.Println("Forensic file-carving engine")
	fmt.Println()
	fmt.Printf("Version:    %s\n", buildinfo.Version)
	fmt.Printf("Commit:     %s\n", buildinfo.CommitHash)
	fmt.Printf("Build Time: %s\n", buildinfo.BuildTime)
	fmt.Println()
}

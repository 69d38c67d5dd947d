package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nyasuto/fileguard/internal/api"
	"github.com/nyasuto/fileguard/internal/validator/file"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "check":
		if len(os.Args) < 4 {
			fmt.Println("Usage: fileguard check <dirs> <path>...")
			os.Exit(1)
		}
		rule := file.NewNotExists(file.DelimitedDirs(os.Args[2]))
		if !checkAll(rule, os.Args[3:]) {
			os.Exit(1)
		}

	case "dirs":
		if len(os.Args) != 3 {
			fmt.Println("Usage: fileguard dirs <dirs>")
			os.Exit(1)
		}
		for _, dir := range file.NewDirectoryList(file.DelimitedDirs(os.Args[2])).Slice() {
			fmt.Println(dir)
		}

	case "apikey":
		key, err := api.GenerateAPIKey()
		if err != nil {
			log.Fatalf("Error generating api key: %v", err)
		}
		fmt.Println(key)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// checkAll prints one line per path and reports whether all were free.
func checkAll(rule *file.NotExists, paths []string) bool {
	ok := true
	for _, p := range paths {
		in, err := file.ParsePath(p)
		if err != nil {
			fmt.Printf("❌ %q: %v\n", p, err)
			ok = false
			continue
		}
		if found, exists := rule.Lookup(in); exists {
			fmt.Printf("❌ %s: %s (%s)\n", p, rule.Message(file.DoesExist), found)
			ok = false
			continue
		}
		fmt.Printf("✅ %s: not found\n", p)
	}
	return ok
}

func printUsage() {
	fmt.Println("🔨 fileguard - command line usage:")
	fmt.Println("")
	fmt.Println("Checks:")
	fmt.Println("  fileguard check <dirs> <path>...  - fail if a path's file name exists in any of dirs")
	fmt.Println("  fileguard dirs <dirs>             - print the normalized directory list")
	fmt.Println("")
	fmt.Println("Admin:")
	fmt.Println("  fileguard apikey                  - generate a key for auth.api_keys")
}

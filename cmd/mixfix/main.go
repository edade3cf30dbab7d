// Command mixfix parses expressions against a mixfix grammar and prints the
// resulting application tree.
package main

import "os"

func main() {
	os.Exit(newGlobalState().execute(os.Args[1:]))
}

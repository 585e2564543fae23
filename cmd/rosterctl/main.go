// Command rosterctl runs operator tasks against the roster database.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd(openEnvironment).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// Command durcalc adds, subtracts and normalizes clock durations with the
// shared kernel's Duration engine.
//
//	durcalc add 1:59 1:02          # 03:01
//	durcalc sub 2:10 1:12          # 00:58
//	durcalc sub 1:00 2:00 --policy floor
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

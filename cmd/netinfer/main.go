// SPDX-License-Identifier: MIT

// Command netinfer reconstructs the incoming links of network units from
// observed time series.
//
//	netinfer reconstruct --data Data --model kuramoto1 --basis fourier_diff --order 6 --unit 0 --unit 3
//	netinfer list
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "netinfer:", err)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sequencer, err := InitializeSequencer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	err = sequencer.Run(ctx)
	if err != nil {
		log.Fatal(fmt.Sprintf("server stopped with error: %s", err))
	}
}

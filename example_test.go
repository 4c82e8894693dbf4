package catcard_test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/catcard"
)

// ExampleGenerate demonstrates how to embed catcard in your application.
func ExampleGenerate() {
	cfg := catcard.DefaultConfig()
	cfg.Greeting = "Happy Birthday"
	cfg.Who = "Grandma"
	cfg.Output = "birthday.png"
	cfg.HTTPTimeout = 10 * time.Second

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	res, err := catcard.Generate(context.Background(), cfg, catcard.WithLogger(logger))
	if err != nil {
		fmt.Printf("failed to generate card: %v\n", err)
		return
	}
	fmt.Printf("saved %dx%d card to %s\n", res.Canvas.Width, res.Canvas.Height, res.OutputPath)
}

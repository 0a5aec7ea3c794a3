package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/kelseyhightower/envconfig"
	"github.com/kwoodhouse93/fitness-tracker/processor"
	"github.com/kwoodhouse93/fitness-tracker/sensor"
)

type Config struct {
	// Empty means the built-in sample packages.
	PackagesFile string `envconfig:"PACKAGES_FILE"`
	OutputFormat string `default:"text" envconfig:"OUTPUT_FORMAT"`
}

func main() {
	config := Config{}
	err := envconfig.Process("", &config)
	if err != nil {
		log.Fatal(err)
	}

	packages := sensor.Samples()
	if config.PackagesFile != "" {
		packages, err = sensor.Load(config.PackagesFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		<-stop
		log.Println("sigint received")
		cancel()
	}()

	processor, err := processor.New(os.Stdout, processor.Format(config.OutputFormat))
	if err != nil {
		log.Fatal(err)
	}
	_, err = processor.Process(ctx, packages)
	if err != nil {
		log.Fatal(err)
	}
}

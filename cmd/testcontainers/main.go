package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/gamesdb/internal/testenv"
	"github.com/sirupsen/logrus"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the gamesdb testcontainers (database + service) with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		logrus.Infof("Loading environment variables from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			logrus.Fatalf("Failed to load environment variables: %v", err)
		}
	} else {
		logrus.Info("No environment file specified, using current environment variables")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	started := make(chan *testenv.TestContainers, 1)
	go func() {
		testContainers, err := testenv.CreateAllTestContainers(nil)
		if err != nil {
			logrus.Fatalf("Failed to create test containers: %v", err)
		}
		started <- testContainers
	}()

	var testContainers *testenv.TestContainers
	select {
	case testContainers = <-started:
		logrus.Infof("GamesDB available at %s, interrupt to stop", testContainers.BaseURL)
		sig := <-sigs
		logrus.Infof("Received signal: %v, terminating test containers...", sig)
	case sig := <-sigs:
		logrus.Infof("Received signal: %v before startup completed, exiting", sig)
		return
	}
	testContainers.Terminate(nil)
}

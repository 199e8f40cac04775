package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/joshuasellers/fantasy-football-tracker/controller"
	"github.com/joshuasellers/fantasy-football-tracker/sleeper"
	"github.com/joshuasellers/fantasy-football-tracker/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	notificationLimit := controller.DefaultNotificationLimit
	if limit := os.Getenv("NOTIFICATION_LIMIT"); limit != "" {
		notificationLimit, err = strconv.Atoi(limit)
		if err != nil {
			log.Fatalf("error parsing notification limit: %v", err)
		}
	}

	clock := clock.New()

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}
	// SLEEPER_URL points the client at a different host, e.g. a local fake
	// during development.
	if url := os.Getenv("SLEEPER_URL"); url != "" {
		sleeperClient = sleeper.NewForTest(url)
	}

	ctrl, err := controller.New(clock, sleeperClient, notificationLimit)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	// When a username is configured, load its data up front so the dashboard
	// has content before the first /api/load call.
	if username := os.Getenv("SLEEPER_USERNAME"); username != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if _, err := ctrl.LoadUserData(ctx, username); err != nil {
			log.Printf("error loading initial data for %s: %v", username, err)
		}
		cancel()
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the player directory from sleeper every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicDirectoryUpdates(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"pilates-studio/app/config"
	"pilates-studio/app/database"
	"pilates-studio/app/schedule"
	"pilates-studio/app/studio"
)

// addstaff creates a staff account directly against the stored state. Run it
// with the same environment as the server while the server is stopped.
func main() {
	username := flag.String("username", "", "staff username")
	password := flag.String("password", "", "staff password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewStore(config.GetDB())
	users, bookings, nextID, found, err := store.Load()
	if err != nil {
		log.Fatal("Failed to load studio state:", err)
	}
	if !found {
		log.Fatal("No stored state found; start the server once to seed it")
	}

	classes, err := schedule.Generate(time.Now(), schedule.WeeklyPlan)
	if err != nil {
		log.Fatal("Failed to generate schedule:", err)
	}

	svc := studio.New(&studio.State{Users: users, Bookings: bookings, NextUserID: nextID}, classes, store)

	user, err := svc.CreateStaff(*username, *password)
	if err != nil {
		log.Fatal("Failed to create staff account: ", err)
	}

	fmt.Printf("Staff account created: %s (id %d)\n", user.Alias, user.ID)
}

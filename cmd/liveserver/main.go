package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
	"github.com/MaoJiayang/battleship-remaster/liveserver"
)

func main() {
	if os.Getenv("STAGE") != liveserver.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("liveserver: no .env file found, continuing with process environment")
		}
	}

	stage := os.Getenv("STAGE")
	if stage != liveserver.StageDev && stage != liveserver.StageProd {
		stage = liveserver.StageDev
	}

	port := 8001
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		p, err := strconv.Atoi(portEnv)
		if err != nil {
			panic(err)
		}
		port = p
	}

	server := liveserver.NewServer(weapon.NewRegistry(), liveserver.WithPort(port), liveserver.WithStage(stage))
	log.Fatalln(server.ListenAndServe())
}

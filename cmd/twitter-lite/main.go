package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/thereayou/twitter-lite/cmd/server"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/pkg/apikey"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twitter-lite",
	Short: "Microblog backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		server.NewServer().Run()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with initial data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(".env.local"); err != nil {
			if err := godotenv.Load(); err != nil {
				log.Println(".env not found, using environment variables")
			}
		}

		db := &database.Database{}
		if err := db.Connect(); err != nil {
			return err
		}

		cipher, err := apikey.NewCipher(os.Getenv("SECRET_KEY"))
		if err != nil {
			return err
		}

		return db.CreateInitialData(cipher)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
}

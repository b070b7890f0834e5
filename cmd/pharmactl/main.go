// Command pharmactl seeds and maintains the pharmacy database and renders
// charts offline.
package main

import (
	"log"
	"os"

	"go-pharmacy-dashboard/internal/model"
	"go-pharmacy-dashboard/pkg/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pharmactl",
		Short: "Pharmacy dashboard maintenance tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				log.Println("Warning: .env file not found, relying on system env")
			}
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSeedCmd(), newResetPasswordCmd(), newRenderCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB connects and migrates, for the commands that touch the database.
func openDB() (*gorm.DB, error) {
	db, err := database.Open(database.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(model.Models()...); err != nil {
		return nil, err
	}
	return db, nil
}

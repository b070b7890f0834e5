package main

import (
	"fmt"
	"log"

	"go-pharmacy-dashboard/internal/repository"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func resetPassword(users repository.UserRepository, email, password string) error {
	user, err := users.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("user %s not found: %w", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(user.ID, string(hashed)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func newResetPasswordCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the password of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("database: %w", err)
			}
			if err := resetPassword(repository.NewUserRepo(db), email, password); err != nil {
				return err
			}
			log.Printf("✅ Success! Password for %s has been reset", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "admin@pharmacy.com", "Account email")
	cmd.Flags().StringVar(&password, "password", "admin123", "New password")
	return cmd
}

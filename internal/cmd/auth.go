package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "auth",
		Short:             "Sign in and out of the admin panel",
		PersistentPreRunE: a.init,
	}
	cmd.AddCommand(&cobra.Command{Use: "login", Short: "Sign in with email and password", RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin(a, cmd)
	}})
	cmd.AddCommand(&cobra.Command{Use: "logout", Short: "Sign out and revoke the refresh token", RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.auth.SignOut(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	}})
	cmd.AddCommand(&cobra.Command{Use: "status", Short: "Show the current session", Run: func(cmd *cobra.Command, args []string) {
		runStatus(a, cmd)
	}})
	return cmd
}

func runLogin(a *app, cmd *cobra.Command) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	fmt.Fprint(cmd.OutOrStdout(), "Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	password, err := promptPassword(cmd, reader, "Password: ")
	if err != nil {
		return err
	}
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	user, err := a.auth.SignInWithPassword(cmd.Context(), email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Email, user.Role)
	return nil
}

func runStatus(a *app, cmd *cobra.Command) {
	user := a.auth.CurrentUser()
	if user == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Email, user.Role)
	exp, err := a.auth.TokenExpiry()
	if err != nil {
		return
	}
	if time.Now().After(exp) {
		fmt.Fprintf(cmd.OutOrStdout(), "Access token expired %s; sign in again\n", exp.Format(time.RFC3339))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Access token valid until %s\n", exp.Format(time.RFC3339))
}

// validateCredentials runs before any network call; a rejected form never
// reaches the backend.
func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("enter a valid email address")
	}
	if len(password) < 5 {
		return errors.New("password must be at least 5 characters")
	}
	return nil
}

func promptPassword(cmd *cobra.Command, reader *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pass, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		return string(pass), err
	}
	// Non-interactive input (tests, pipes) falls back to a plain read.
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return strings.TrimSpace(line), nil
}

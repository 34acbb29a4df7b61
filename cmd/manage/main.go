package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - init-admin:     Create or promote a superuser
// - reset-password: Set a new password for an account
// - clear-cache:    Flush every cached user, profile and cart count
// - list-routes:    Print the HTTP routes of the storefront

func main() {
	initAdminCmd := flag.NewFlagSet("init-admin", flag.ExitOnError)
	resetPasswordCmd := flag.NewFlagSet("reset-password", flag.ExitOnError)
	clearCacheCmd := flag.NewFlagSet("clear-cache", flag.ExitOnError)
	listRoutesCmd := flag.NewFlagSet("list-routes", flag.ExitOnError)

	adminEmail := initAdminCmd.String("email", "", "E-mail of the administrator")
	adminName := initAdminCmd.String("name", "Administrador", "Display name used when the account is created")
	adminPassword := initAdminCmd.String("password", "", "Password used when the account is created")

	resetEmail := resetPasswordCmd.String("email", "", "E-mail of the account")
	resetPassword := resetPasswordCmd.String("password", "", "New password")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := manageFlags{
		InitAdmin: initAdminFlags{
			cmd:      initAdminCmd,
			email:    adminEmail,
			name:     adminName,
			password: adminPassword,
		},
		ResetPassword: resetPasswordFlags{
			cmd:      resetPasswordCmd,
			email:    resetEmail,
			password: resetPassword,
		},
		ClearCache: clearCacheCmd,
		ListRoutes: listRoutesCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type manageFlags struct {
	InitAdmin     initAdminFlags
	ResetPassword resetPasswordFlags
	ClearCache    *flag.FlagSet
	ListRoutes    *flag.FlagSet
}

type initAdminFlags struct {
	cmd      *flag.FlagSet
	email    *string
	name     *string
	password *string
}

type resetPasswordFlags struct {
	cmd      *flag.FlagSet
	email    *string
	password *string
}

func runSubcommand(ctx context.Context, flags *manageFlags) error {
	switch os.Args[1] {
	case "init-admin":
		return handleInitAdmin(ctx, flags)
	case "reset-password":
		return handleResetPassword(ctx, flags)
	case "clear-cache":
		return handleClearCache(ctx, flags)
	case "list-routes":
		return handleListRoutes(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleInitAdmin(ctx context.Context, flags *manageFlags) error {
	if err := flags.InitAdmin.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse init-admin flags")
	}

	if *flags.InitAdmin.email == "" {
		return errors.New("--email flag is required for init-admin command")
	}

	return runInitAdmin(ctx, *flags.InitAdmin.email, *flags.InitAdmin.name, *flags.InitAdmin.password)
}

func handleResetPassword(ctx context.Context, flags *manageFlags) error {
	if err := flags.ResetPassword.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse reset-password flags")
	}

	if *flags.ResetPassword.email == "" || *flags.ResetPassword.password == "" {
		return errors.New("--email and --password flags are required for reset-password command")
	}

	return runResetPassword(ctx, *flags.ResetPassword.email, *flags.ResetPassword.password)
}

func handleClearCache(ctx context.Context, flags *manageFlags) error {
	if err := flags.ClearCache.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse clear-cache flags")
	}

	return runClearCache(ctx)
}

func handleListRoutes(ctx context.Context, flags *manageFlags) error {
	if err := flags.ListRoutes.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse list-routes flags")
	}

	return runListRoutes(ctx, os.Stdout)
}

func printUsage() {
	fmt.Println("Usage: manage <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  init-admin      Create or promote a superuser")
	fmt.Println("  reset-password  Set a new password for an account")
	fmt.Println("  clear-cache     Flush cached users, profiles and cart counts")
	fmt.Println("  list-routes     Print the HTTP routes")
	fmt.Println("")
	fmt.Println("Use 'manage <command> -h' for more information about a command.")
}

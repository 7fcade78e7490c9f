package main

import (
	"fmt"

	"taste-heaven/internal/model"

	"github.com/spf13/cobra"
)

func newSignupCmd(a *app) *cobra.Command {
	var req model.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Name, err = a.valueOrPrompt(req.Name, "Name"); err != nil {
				return err
			}
			if req.Email, err = a.valueOrPrompt(req.Email, "Email"); err != nil {
				return err
			}
			if req.Password, err = a.valueOrPrompt(req.Password, "Password"); err != nil {
				return err
			}

			msg, err := a.api.Signup(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			a.Notify(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var req model.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Email, err = a.valueOrPrompt(req.Email, "Email"); err != nil {
				return err
			}
			if req.Password, err = a.valueOrPrompt(req.Password, "Password"); err != nil {
				return err
			}

			user, err := a.api.Login(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			if err := a.session.SignIn(*user); err != nil {
				return err
			}
			a.Notify(fmt.Sprintf("Welcome, %s!", user.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.SignOut(); err != nil {
				return err
			}
			a.Notify("Logged out")
			return nil
		},
	}
}

package main

import (
	"taste-heaven/internal/model"

	"github.com/spf13/cobra"
)

func newContactCmd(a *app) *cobra.Command {
	var req model.InquiryRequest

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user, err := a.session.Current(); err == nil && user != nil {
				if req.Name == "" {
					req.Name = user.Name
				}
				if req.Email == "" {
					req.Email = user.Email
				}
			}

			var err error
			if req.Name, err = a.valueOrPrompt(req.Name, "Name"); err != nil {
				return err
			}
			if req.Email, err = a.valueOrPrompt(req.Email, "Email"); err != nil {
				return err
			}
			if req.Message, err = a.valueOrPrompt(req.Message, "Message"); err != nil {
				return err
			}

			msg, err := a.api.Contact(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			a.Notify(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name (default: logged-in user)")
	cmd.Flags().StringVar(&req.Email, "email", "", "reply address (default: logged-in user)")
	cmd.Flags().StringVarP(&req.Message, "message", "m", "", "message")
	return cmd
}

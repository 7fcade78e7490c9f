package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"taste-heaven/internal/cart"
	"taste-heaven/internal/checkout"
	"taste-heaven/internal/client"
	"taste-heaven/internal/config"
	"taste-heaven/internal/localstore"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errSilent ends a command whose message was already printed. It only sets the exit code.
var errSilent = errors.New("")

// app holds the state shared by every command of one invocation.
type app struct {
	apiURL        string
	apiKey        string
	dataDir       string
	logLevel      string
	deliveryFee   float64
	persistDineIn bool

	logger  zerolog.Logger
	api     *client.Client
	store   *localstore.Store
	session *checkout.Session
	in      *bufio.Reader
	out     io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tasteheaven",
		Short:         "Taste Heaven restaurant client",
		Long:          "Browse the Taste Heaven menu, manage your cart and place orders.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api", envOr("TASTE_HEAVEN_API", client.DefaultBaseURL), "API base URL")
	flags.StringVar(&a.apiKey, "api-key", os.Getenv("TASTE_HEAVEN_API_KEY"), "value sent in X-API-Key")
	flags.StringVar(&a.dataDir, "data-dir", "", "directory holding the cart and session (default: user config dir)")
	flags.StringVar(&a.logLevel, "log-level", "error", "log level: debug, info, warn or error")
	flags.Float64Var(&a.deliveryFee, "delivery-fee", checkout.DefaultDeliveryFee, "fee added to Home Delivery orders")
	flags.BoolVar(&a.persistDineIn, "persist-dine-in", false, "submit Dine-In orders to the server")

	root.AddCommand(
		newMenuCmd(a),
		newCartCmd(a),
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newCheckoutCmd(a),
		newOrdersCmd(a),
		newContactCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = config.NewServiceLogger(config.LoggerConfig{Level: a.logLevel, Format: "console"}, cmd.ErrOrStderr(), "tasteheaven")
	a.out = cmd.OutOrStdout()
	a.in = bufio.NewReader(cmd.InOrStdin())

	dir := a.dataDir
	if dir == "" {
		var err error
		if dir, err = localstore.DefaultDir(); err != nil {
			return err
		}
	}
	store, err := localstore.Open(dir)
	if err != nil {
		return err
	}
	a.store = store
	a.session = checkout.NewSession(store)

	var opts []client.Option
	if a.apiKey != "" {
		opts = append(opts, client.WithAPIKey(a.apiKey))
	}
	a.api = client.New(a.apiURL, opts...)

	a.logger.Debug().Str("api", a.api.BaseURL()).Str("store", store.Path()).Msg("client ready")
	return nil
}

// cart opens the persisted cart.
func (a *app) cart() (*cart.Controller, error) {
	return cart.NewController(cart.NewLocalStorage(a.store, a.logger))
}

// Prompt implements checkout.Prompter on the command's stdin.
func (a *app) Prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Notify implements checkout.Notifier.
func (a *app) Notify(msg string) {
	fmt.Fprintln(a.out, msg)
}

// fail prints the user-facing message for an API error and returns errSilent.
func (a *app) fail(err error) error {
	a.logger.Debug().Err(err).Msg("request failed")
	a.Notify(client.UserMessage(err))
	return errSilent
}

// valueOrPrompt returns value, prompting for it when empty.
func (a *app) valueOrPrompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.Prompt(label)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

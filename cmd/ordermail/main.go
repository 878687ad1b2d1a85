// Command ordermail sends the store notification and customer confirmation
// emails for one normalized order read as JSON.
//
//	ordermail -order order.json
//	cat order.json | ordermail -order - -parallel
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/pesach-orders/core/config"
	"github.com/dmitrymomot/pesach-orders/core/email"
	"github.com/dmitrymomot/pesach-orders/core/logger"
	"github.com/dmitrymomot/pesach-orders/core/notifier"
	"github.com/dmitrymomot/pesach-orders/core/order"
	"github.com/dmitrymomot/pesach-orders/integration/email/postmark"
	"github.com/dmitrymomot/pesach-orders/integration/email/smtp"
)

const serviceName = "ordermail"

// Transport names accepted in MAIL_TRANSPORT.
const (
	transportSMTP     = "smtp"
	transportPostmark = "postmark"
	transportDev      = "dev"
)

type appConfig struct {
	Transport  string     `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	DevMailDir string     `env:"DEV_MAIL_DIR" envDefault:"./dev_emails"`
	AppEnv     string     `env:"APP_ENV" envDefault:"development"`
	LogLevel   slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ordermail:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	orderPath := fs.String("order", "-", "path to the order JSON file, or - for stdin")
	skipConfirmation := fs.Bool("skip-confirmation", false, "send only the store notification")
	parallel := fs.Bool("parallel", false, "send both emails concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}
	log := newLogger(app, stdout)

	var (
		notifierCfg notifier.Config
		store       order.StoreConfig
	)
	if err := config.Load(&notifierCfg); err != nil {
		return err
	}
	if err := config.Load(&store); err != nil {
		return err
	}

	sender, err := newSender(app)
	if err != nil {
		return err
	}
	n := notifier.New(email.NewLoggingSender(sender, log), notifierCfg)

	o, err := readOrder(*orderPath, stdin)
	if err != nil {
		return err
	}
	log = log.With(logger.OrderRef(o.OrderRef))

	if *parallel && !*skipConfirmation {
		res, err := n.NotifyOrder(ctx, o, store)
		log.Info("order emails processed",
			logger.Component("notifier"),
			slog.Bool("store_notified", res.StoreNotified),
			slog.Bool("customer_confirmed", res.CustomerConfirmed),
			logger.Error(err),
		)
		return err
	}

	if err := n.SendStoreOrderEmail(ctx, o, store); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	if *skipConfirmation {
		return nil
	}

	sent, err := n.SendCustomerConfirmationEmail(ctx, o, store)
	if err != nil {
		return fmt.Errorf("customer confirmation: %w", err)
	}
	if !sent {
		log.Info("customer confirmation skipped",
			logger.Component("notifier"),
			logger.Event("no_customer_email"),
			logger.Result("skipped"),
		)
	}
	return nil
}

func newLogger(app appConfig, out io.Writer) *slog.Logger {
	opts := []logger.Option{logger.WithOutput(out)}
	if app.AppEnv == "production" {
		opts = append(opts, logger.WithProduction(serviceName))
	} else {
		opts = append(opts, logger.WithDevelopment(serviceName))
	}
	opts = append(opts, logger.WithLevel(app.LogLevel))
	return logger.New(opts...)
}

// newSender builds the transport selected by MAIL_TRANSPORT. Only the chosen
// transport's configuration is loaded, so its required variables alone apply.
func newSender(app appConfig) (email.EmailSender, error) {
	switch app.Transport {
	case transportSMTP:
		var cfg smtp.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return smtp.New(cfg)
	case transportPostmark:
		var cfg postmark.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return postmark.New(cfg)
	case transportDev:
		return email.NewDevSender(app.DevMailDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown MAIL_TRANSPORT %q", email.ErrInvalidConfig, app.Transport)
	}
}

func readOrder(path string, stdin io.Reader) (order.NormalizedOrder, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return order.NormalizedOrder{}, fmt.Errorf("open order: %w", err)
		}
		defer f.Close()
		r = f
	}

	var o order.NormalizedOrder
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return order.NormalizedOrder{}, fmt.Errorf("decode order: %w", err)
	}
	if o.OrderRef == "" {
		return order.NormalizedOrder{}, errors.New("decode order: orderRef is required")
	}
	return o, nil
}

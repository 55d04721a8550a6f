// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"quickchat/app"
	"quickchat/auth"
	"quickchat/commons"
	"quickchat/crypto"
	"quickchat/db"
	"quickchat/fingerprint"
	"quickchat/handlers"
	"quickchat/models"
	"quickchat/passwordcheck"
	"quickchat/persistence"
	"quickchat/rabbitmq"
	"quickchat/routes"
	"quickchat/validation"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()
	cfg := commons.LoadConfig()

	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		commons.Logger.SetLevel(log.DEBUG)
	}

	factory, err := newFactory(cfg)
	if err != nil {
		commons.Logger.Fatal(err)
	}

	if cfg.Password == "" {
		commons.Logger.Fatal("APP_PASSWORD environment variable is required")
	}
	account, err := auth.NewAccount(cfg.Username, cfg.Password)
	if err != nil {
		commons.Logger.Fatal(err)
	}
	if err := passwordcheck.ValidatePassword(context.Background(), cfg.Password); err != nil {
		commons.Logger.Warnf("APP_PASSWORD: %v", err)
	}

	opts := sessionOptions(cfg, factory)

	switch cfg.StoreBackend {
	case "json", "":
		commons.Logger.Infof("Storing messages in %s", cfg.StorePath)
		opts.Persistence = persistence.NewJSONFile(cfg.StorePath, factory)
	case "sqlite", "postgres", "mysql":
		conn, err := db.InitDB(cfg)
		if err != nil {
			commons.Logger.Fatal(err)
		}
		if slices.Contains(os.Args[1:], "--migrate-db") {
			commons.Logger.Debug("--migrate-db flag detected, running migrations")
			if err := db.MigrateDB(conn); err != nil {
				commons.Logger.Fatal(err)
			}
		}
		opts.Persistence = db.NewSnapshotRepository(conn, factory)
		opts.Events = db.NewEventRepository(conn)
	default:
		commons.Logger.Fatalf("Unknown STORE_BACKEND %q, expected json, sqlite, postgres or mysql", cfg.StoreBackend)
	}

	if cfg.AMQPURL != "" {
		publisher, err := rabbitmq.NewPublisher(rabbitmq.RabbitMQConfig{
			AMQPURL:  cfg.AMQPURL,
			Exchange: cfg.AMQPExchange,
		})
		if err != nil {
			commons.Logger.Fatal(err)
		}
		defer publisher.Close()
		opts.Relay = publisher
	}

	if slices.Contains(os.Args[1:], "--serve") {
		serve(cfg, opts, account, debugMode)
		return
	}

	if err := runConsole(opts, account); err != nil {
		commons.Logger.Error(err)
		os.Exit(1)
	}
}

func newFactory(cfg commons.Config) (models.Factory, error) {
	rule, err := validation.RuleForProfile(cfg.RecipientProfile)
	if err != nil {
		return models.Factory{}, err
	}
	gen, err := fingerprint.ForScheme(cfg.FingerprintScheme)
	if err != nil {
		return models.Factory{}, err
	}
	commons.Logger.Debugf("Recipient profile %s, fingerprint scheme %s", cfg.RecipientProfile, cfg.FingerprintScheme)
	return models.Factory{Recipients: rule, Fingerprints: gen}, nil
}

// sessionOptions drops a configured sender that the recipient rule rejects.
func sessionOptions(cfg commons.Config, factory models.Factory) app.Options {
	opts := app.Options{Factory: factory, MaxMessages: cfg.MaxMessages}
	if cfg.Sender != "" {
		if factory.Recipients.Valid(cfg.Sender) {
			opts.Sender = cfg.Sender
		} else {
			commons.Logger.Warnf("Ignoring APP_SENDER %q: %s", cfg.Sender, factory.Recipients.Hint())
		}
	}
	return opts
}

func welcome(maxMessages int) string {
	if maxMessages > 0 {
		return fmt.Sprintf("Welcome to QuickChat. You can send up to %d messages.", maxMessages)
	}
	return "Welcome to QuickChat."
}

func runConsole(opts app.Options, account *auth.Account) error {
	commons.Logger.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console := app.NewConsole(os.Stdin, os.Stdout)
	if err := console.Login(account); err != nil {
		return err
	}

	for opts.Sender == "" {
		number, ok := console.Prompt("Enter your cellphone number (" + opts.Factory.Recipients.Hint() + ")")
		if !ok {
			return nil
		}
		if opts.Factory.Recipients.Valid(number) {
			opts.Sender = number
			break
		}
		console.Println("Cell number is incorrectly formatted.")
	}
	console.Println(welcome(opts.MaxMessages))

	return console.Run(ctx, app.NewSession(opts))
}

func serve(cfg commons.Config, opts app.Options, account *auth.Account, debugMode bool) {
	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	secret := cfg.JWTSecret
	if secret == "" {
		var err error
		secret, err = crypto.GenerateRandomString("", 32, "hex")
		if err != nil {
			e.Logger.Fatal(err)
		}
		e.Logger.Warn("JWT_SECRET is not set, tokens will not survive a restart.")
	}

	routes.RegisterRoutes(e, &handlers.Handler{
		Session: app.NewSession(opts),
		Account: account,
		Secret:  []byte(secret),
		Events:  eventLister(opts.Events),
	})

	e.Logger.Fatal(e.Start(cfg.Port))
}

func eventLister(events app.EventRecorder) handlers.EventLister {
	if lister, ok := events.(handlers.EventLister); ok {
		return lister
	}
	return nil
}

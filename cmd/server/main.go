package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/ARSiddique/haz-itexperts-sub001/pkg/config"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/email"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/httpserver"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/logger"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/requestid"
	"github.com/ARSiddique/haz-itexperts-sub001/svc/lead"
)

// devRecipient stands in for LEAD_TO_EMAIL when mail is routed to the
// filesystem dev sender and no real recipient is configured.
const devRecipient = "leads@dev.localhost.test"

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.New(logCfg, os.Stdout)

	var (
		mailCfg email.Config
		leadCfg lead.Config
		httpCfg httpserver.Config
	)
	config.MustLoad(&mailCfg)
	config.MustLoad(&leadCfg)
	config.MustLoad(&httpCfg)

	// Select the mail capability once at startup. Absent credentials do not
	// prevent boot: the pipeline degrades every submission to a
	// mail-configuration error instead.
	var (
		sender    email.Sender
		recipient string
	)
	switch {
	case mailCfg.DevDir != "":
		sender = email.NewDevSender(mailCfg.DevDir)
		recipient = mailCfg.RecipientEmail
		if recipient == "" {
			recipient = devRecipient
		}
		log.Info("mail routed to filesystem", logger.Component("mailer"))
	case mailCfg.Configured():
		sender = email.MustNewPostmarkClient(mailCfg)
		recipient = mailCfg.RecipientEmail
	default:
		log.Warn("mail unconfigured, lead notifications disabled", logger.Component("mailer"))
	}

	pipeline := lead.NewPipeline(sender, recipient, log)
	action := lead.NewAction(pipeline, leadCfg.DevFallback)

	ctx := context.Background()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	r.Handle("/api/contact", lead.NewHandler(pipeline, leadCfg, log))
	r.Handle("/api/lead", lead.NewActionHandler(action, log))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/engagement"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/launcher"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/mentorsapi"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	channelWeb = engagement.SurfaceWeb
	channelApp = engagement.SurfaceApp
)

// deps is everything a command needs, built once in Before
type deps struct {
	cfg       *config.Config
	api       *mentorsapi.Client
	presenter *engagement.Presenter
}

var app deps

func main() {
	cliApp := &cli.App{
		Name:  "mentorcard",
		Usage: "render mentor cards and contact a mentor from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "mentors API base URL",
				EnvVars: []string{"MENTORS_API_BASE_URL"},
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "your first name, used in the message templates",
			},
		},
		Before: setup,
		After: func(*cli.Context) error {
			logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "print a mentor's panel",
				ArgsUsage: "<mentor-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "card", Usage: "print only the compact card"},
				},
				Action: show,
			},
			{
				Name:      "whatsapp",
				Usage:     "open a WhatsApp conversation with a mentor",
				ArgsUsage: "<mentor-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "channel", Value: channelApp, Usage: "web or app"},
					&cli.DurationFlag{Name: "timeout", Usage: "how long to wait for the app before falling back to web"},
					&cli.BoolFlag{Name: "no-report", Usage: "do not send engagement events to the API"},
				},
				Action: whatsapp,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "mentorcard: %v\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Engagement.Validate(); err != nil {
		return err
	}
	if base := c.String("api"); base != "" {
		cfg.Client.APIBaseURL = base
	}

	if err := logger.Initialize(logger.Config{
		Level:       "warn",
		Environment: "development",
		ServiceName: "mentorcard",
	}); err != nil {
		return err
	}

	api, err := mentorsapi.New(mentorsapi.Config{
		BaseURL:      cfg.Client.APIBaseURL,
		Timeout:      cfg.Client.RequestTimeout,
		SessionToken: cfg.Client.SessionToken,
	})
	if err != nil {
		return err
	}

	presenter, err := engagement.NewPresenterFromConfig(cfg.Engagement)
	if err != nil {
		return err
	}

	app = deps{cfg: cfg, api: api, presenter: presenter}
	return nil
}

func mentorArg(c *cli.Context) (int, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one mentor id")
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid mentor id %q", c.Args().First())
	}
	return id, nil
}

func loadPanel(c *cli.Context) (*models.MentorRecord, models.PanelView, error) {
	id, err := mentorArg(c)
	if err != nil {
		return nil, models.PanelView{}, err
	}

	mentor, err := app.api.GetMentor(c.Context, id)
	if err != nil {
		return nil, models.PanelView{}, err
	}
	return mentor, app.presenter.Panel(mentor, c.String("name")), nil
}

// missing reports whether err means the mentor does not exist. Such a
// mentor renders nothing and is not a failure.
func missing(err error) bool {
	if apperrors.Is(err, apperrors.ErrNotFound) {
		logger.Debug("Mentor not found", zap.Error(err))
		return true
	}
	return false
}

func show(c *cli.Context) error {
	mentor, panel, err := loadPanel(c)
	if missing(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if c.Bool("card") {
		renderCard(c.App.Writer, app.presenter.Card(mentor))
		return nil
	}
	renderPanel(c.App.Writer, panel)
	return nil
}

func whatsapp(c *cli.Context) error {
	channel := c.String("channel")
	if channel != channelWeb && channel != channelApp {
		return fmt.Errorf("--channel must be %q or %q", channelWeb, channelApp)
	}

	mentor, panel, err := loadPanel(c)
	if missing(err) {
		return nil
	}
	if err != nil {
		return err
	}

	timeout := c.Duration("timeout")
	if timeout <= 0 {
		timeout = app.cfg.Engagement.AppOpenTimeout
	}

	var events engagement.EventSink
	if !c.Bool("no-report") {
		events = app.api
	}

	// Ctrl-C disposes of the session and abandons a pending fallback
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opener := engagement.NewLinkOpener(ctx, launcher.New(), timeout, mentor.ID, events)
	chooser := engagement.NewChannelChooser(mentor.ID, panel.Links, opener, events)
	if !chooser.Enabled() {
		return fmt.Errorf("%s has no WhatsApp number", mentor.FullName())
	}

	chooser.Toggle()
	if channel == channelWeb {
		chooser.ChooseWeb()
	} else {
		chooser.ChooseApp()
	}
	opener.Wait()

	if events != nil {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.api.Flush(flushCtx); err != nil {
			logger.Warn("Could not report engagement events", zap.Error(err))
		}
	}

	return reportOpened(c.App.Writer, opener.Opened(), channel, mentor.FullName())
}

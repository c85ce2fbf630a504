package engagement

import (
	"context"
	"sync"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// DefaultAppOpenTimeout bounds how long the native WhatsApp application gets
// to take focus before the web link is opened instead.
const DefaultAppOpenTimeout = 2 * time.Second

// ChooserState is the visibility of the WhatsApp channel menu
type ChooserState int

const (
	ChooserClosed ChooserState = iota
	ChooserOpen
)

func (s ChooserState) String() string {
	if s == ChooserOpen {
		return "open"
	}
	return "closed"
}

// Launcher hands an href to the operating system. Launch returns nil once
// the target has taken over, and an error if it failed or ctx ended first.
type Launcher interface {
	Launch(ctx context.Context, href string) error
}

// Opener performs the side effects of a channel choice
type Opener interface {
	OpenWeb(href string)
	OpenApp(appHref, webHref string)
}

// EventSink receives chooser transitions
type EventSink interface {
	Record(mentorID int, eventType string)
}

type noopSink struct{}

func (noopSink) Record(int, string) {}

// ChannelChooser is the Closed/Open menu attached to the WhatsApp affordance
// of one mentor panel.
type ChannelChooser struct {
	mu       sync.Mutex
	state    ChooserState
	mentorID int
	links    models.EngagementLinks
	opener   Opener
	events   EventSink
}

// NewChannelChooser starts Closed. A nil sink discards events.
func NewChannelChooser(mentorID int, links models.EngagementLinks, opener Opener, events EventSink) *ChannelChooser {
	if events == nil {
		events = noopSink{}
	}
	return &ChannelChooser{
		state:    ChooserClosed,
		mentorID: mentorID,
		links:    links,
		opener:   opener,
		events:   events,
	}
}

// State returns the current menu state
func (c *ChannelChooser) State() ChooserState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Enabled reports whether the WhatsApp affordance can be activated at all
func (c *ChannelChooser) Enabled() bool {
	return c.links.HasWhatsApp()
}

// Toggle handles activation of the WhatsApp affordance. Without WhatsApp
// links the affordance is disabled and the state never changes.
func (c *ChannelChooser) Toggle() ChooserState {
	if !c.Enabled() {
		return c.State()
	}

	c.mu.Lock()
	if c.state == ChooserOpen {
		c.state = ChooserClosed
	} else {
		c.state = ChooserOpen
	}
	state := c.state
	c.mu.Unlock()

	if state == ChooserOpen {
		c.events.Record(c.mentorID, models.EventChooserOpened)
	}
	return state
}

// Dismiss closes the menu without opening anything, as an outside click does
func (c *ChannelChooser) Dismiss() {
	c.mu.Lock()
	c.state = ChooserClosed
	c.mu.Unlock()
}

// ChooseWeb opens the web chat link. It reports false when the menu was not open.
func (c *ChannelChooser) ChooseWeb() bool {
	if !c.close() {
		return false
	}
	c.events.Record(c.mentorID, models.EventWebChosen)
	c.opener.OpenWeb(c.links.WhatsAppWebHref)
	return true
}

// ChooseApp attempts the native application, falling back to the web link.
// The menu closes immediately; the attempt continues in the background.
func (c *ChannelChooser) ChooseApp() bool {
	if !c.close() {
		return false
	}
	c.events.Record(c.mentorID, models.EventAppChosen)
	c.opener.OpenApp(c.links.WhatsAppAppHref, c.links.WhatsAppWebHref)
	return true
}

// close moves Open to Closed and reports whether a choice may proceed
func (c *ChannelChooser) close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != ChooserOpen {
		return false
	}
	c.state = ChooserClosed
	return true
}

// Surfaces a WhatsApp link can open on
const (
	SurfaceApp = "app"
	SurfaceWeb = "web"
)

// LinkOpener opens hrefs through a Launcher. It is bound to the lifetime of
// the view that created it: once ctx is done, pending fallbacks are abandoned.
type LinkOpener struct {
	ctx      context.Context
	launcher Launcher
	timeout  time.Duration
	mentorID int
	events   EventSink
	wg       sync.WaitGroup

	mu     sync.Mutex
	opened string
}

// NewLinkOpener creates an opener. A non-positive timeout selects DefaultAppOpenTimeout.
func NewLinkOpener(ctx context.Context, launcher Launcher, timeout time.Duration, mentorID int, events EventSink) *LinkOpener {
	if timeout <= 0 {
		timeout = DefaultAppOpenTimeout
	}
	if events == nil {
		events = noopSink{}
	}
	return &LinkOpener{
		ctx:      ctx,
		launcher: launcher,
		timeout:  timeout,
		mentorID: mentorID,
		events:   events,
	}
}

// OpenWeb launches href in the browser
func (o *LinkOpener) OpenWeb(href string) {
	if err := o.launcher.Launch(o.ctx, href); err != nil {
		logger.Warn("Failed to open web link",
			zap.Int("mentor_id", o.mentorID),
			zap.Error(err))
		metrics.WhatsAppOpens.WithLabelValues("web", "error").Inc()
		return
	}
	metrics.WhatsAppOpens.WithLabelValues("web", "success").Inc()
	o.setOpened(SurfaceWeb)
}

// OpenApp tries appHref and, if it does not take over within the timeout,
// opens webHref. Nothing is opened after the owning context is cancelled.
func (o *LinkOpener) OpenApp(appHref, webHref string) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()

		attemptCtx, cancel := context.WithTimeout(o.ctx, o.timeout)
		err := o.launcher.Launch(attemptCtx, appHref)
		cancel()
		if err == nil {
			metrics.WhatsAppOpens.WithLabelValues("app", "success").Inc()
			o.setOpened(SurfaceApp)
			return
		}
		if o.ctx.Err() != nil {
			logger.Debug("App open abandoned, view disposed",
				zap.Int("mentor_id", o.mentorID))
			return
		}

		logger.Info("WhatsApp app did not open, falling back to web",
			zap.Int("mentor_id", o.mentorID),
			zap.Duration("timeout", o.timeout),
			zap.Error(err))
		metrics.WhatsAppOpens.WithLabelValues("app", "fallback").Inc()
		o.events.Record(o.mentorID, models.EventAppFallback)
		o.OpenWeb(webHref)
	}()
}

// Wait blocks until every pending app attempt has finished
func (o *LinkOpener) Wait() {
	o.wg.Wait()
}

// Opened returns the surface that last opened successfully, SurfaceApp or
// SurfaceWeb, or "" when nothing opened. Call it after Wait.
func (o *LinkOpener) Opened() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opened
}

func (o *LinkOpener) setOpened(surface string) {
	o.mu.Lock()
	o.opened = surface
	o.mu.Unlock()
}

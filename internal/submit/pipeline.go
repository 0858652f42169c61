package submit

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/analytics"
	"folio/internal/notify"
)

// Phase is a submission lifecycle phase.
type Phase int

const (
	Idle Phase = iota
	Validating
	Pending
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case Pending:
		return "Pending"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// DefaultTimeout bounds a single send.
const DefaultTimeout = 15 * time.Second

// Request is what the sender receives.
type Request struct {
	Kind   Kind
	Fields Fields
}

// Response is a successful send.
type Response struct {
	Message string
}

// Sender delivers a validated submission.
type Sender interface {
	Send(ctx context.Context, req Request) (Response, error)
}

// Notifier shows user feedback. Failures are the notifier's own concern.
type Notifier interface {
	Show(notify.Notification)
}

// Closer closes the dialog that owns the pipeline.
type Closer interface {
	Close() bool
}

// ResultMsg carries a send outcome back to the update loop.
type ResultMsg struct {
	Pipeline uint64
	Gen      uint64
	Kind     Kind
	Response Response
	Err      error
}

// Config wires a pipeline to its collaborators.
type Config struct {
	Kind     Kind
	Schema   Schema
	Sender   Sender
	Notifier Notifier
	Tracker  analytics.Tracker
	Closer   Closer
	Timeout  time.Duration
}

var pipelineIDs atomic.Uint64

type discard struct{}

func (discard) Show(notify.Notification) {}

// Pipeline is the submission state of one form.
type Pipeline struct {
	// OnChange is called after every phase change.
	OnChange func(from, to Phase)

	cfg     Config
	profile Profile
	id      uint64
	gen     uint64

	phase  Phase
	fields Fields
	errs   map[string]string
	live   bool

	// sending is set from dispatch until the send's result is resolved,
	// whichever session it arrives in. sendGen is that send's generation.
	sending bool
	sendGen uint64
}

// New creates an idle, detached pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Tracker == nil {
		cfg.Tracker = analytics.Nop{}
	}
	if cfg.Notifier == nil {
		cfg.Notifier = discard{}
	}
	return &Pipeline{
		cfg:     cfg,
		profile: ProfileFor(cfg.Kind),
		id:      pipelineIDs.Add(1),
	}
}

// ID identifies the pipeline in ResultMsg.
func (p *Pipeline) ID() uint64 { return p.id }

// Kind returns the submission type.
func (p *Pipeline) Kind() Kind { return p.cfg.Kind }

// Phase returns the current phase.
func (p *Pipeline) Phase() Phase { return p.phase }

// Pending reports whether a send is in flight.
func (p *Pipeline) Pending() bool { return p.sending }

// Live reports whether results may be applied.
func (p *Pipeline) Live() bool { return p.live }

// Fields returns the last submitted values.
func (p *Pipeline) Fields() Fields { return p.fields }

// FieldErrors returns field → message from the last validation.
func (p *Pipeline) FieldErrors() map[string]string { return p.errs }

// Attach starts a new form session: the pipeline becomes live and results
// from earlier sessions become stale. A send still in flight from an earlier
// session keeps the pipeline Pending until its result is drained.
func (p *Pipeline) Attach() {
	p.gen++
	p.live = true
	p.errs = nil
	if !p.sending {
		p.set(Idle)
	}
}

// Detach clears liveness. In-flight sends keep running; their results
// will be discarded.
func (p *Pipeline) Detach() {
	p.live = false
}

// Submit validates fields and, if valid, returns a command that performs the
// send. It returns a nil command with ErrPending while a send is in flight,
// ErrNotLive on a detached pipeline, or a *ValidationError when fields fail
// the schema.
func (p *Pipeline) Submit(fields Fields) (tea.Cmd, error) {
	if !p.live {
		return nil, ErrNotLive
	}
	if p.sending {
		log.Printf("submit: %s ignored, already pending", p.cfg.Kind)
		return nil, ErrPending
	}
	p.fields = fields
	p.set(Validating)
	errs := p.cfg.Schema.Check(fields)
	if len(errs) > 0 {
		p.errs = errs
		p.set(Idle)
		return nil, &ValidationError{Fields: errs}
	}
	p.errs = nil
	p.sending, p.sendGen = true, p.gen
	p.set(Pending)

	req := Request{Kind: p.cfg.Kind, Fields: fields}
	id, gen, sender, timeout := p.id, p.gen, p.cfg.Sender, p.cfg.Timeout
	log.Printf("submit: %s dispatch pipeline=%d gen=%d", req.Kind, id, gen)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := sender.Send(ctx, req)
		return ResultMsg{Pipeline: id, Gen: gen, Kind: req.Kind, Response: resp, Err: err}
	}, nil
}

// Resolve applies a send outcome. It returns ErrStaleResult when the result is
// not for the current live session, a *DispatchError when the send failed,
// and nil on success. A stale result for this pipeline's own in-flight send
// releases the pending guard and is otherwise not applied.
func (p *Pipeline) Resolve(msg ResultMsg) error {
	if msg.Pipeline != p.id || !p.sending || msg.Gen != p.sendGen {
		log.Printf("submit: %s result discarded pipeline=%d gen=%d", msg.Kind, msg.Pipeline, msg.Gen)
		return ErrStaleResult
	}
	p.sending = false
	if msg.Gen != p.gen || !p.live {
		log.Printf("submit: %s result discarded pipeline=%d gen=%d live=%v", msg.Kind, msg.Pipeline, msg.Gen, p.live)
		p.set(Idle)
		return ErrStaleResult
	}
	if msg.Err != nil {
		derr := dispatchError(msg.Err)
		p.set(Failed)
		p.cfg.Notifier.Show(notify.Notification{
			Title:       p.profile.FailureTitle,
			Description: derr.Message,
			Variant:     notify.Destructive,
		})
		log.Printf("submit: %s failed: %v", msg.Kind, msg.Err)
		p.set(Idle)
		return derr
	}

	p.set(Succeeded)
	p.cfg.Notifier.Show(notify.Notification{
		Title:       p.profile.SuccessTitle,
		Description: msg.Response.Message,
	})
	p.cfg.Tracker.Track(p.profile.Event)
	p.fields = p.fields.Cleared()
	if p.cfg.Closer != nil {
		p.cfg.Closer.Close()
	}
	p.set(Idle)
	return nil
}

// IsStale reports whether err marks a discarded result.
func IsStale(err error) bool { return errors.Is(err, ErrStaleResult) }

func (p *Pipeline) set(ph Phase) {
	from := p.phase
	p.phase = ph
	if p.OnChange != nil && from != ph {
		p.OnChange(from, ph)
	}
}

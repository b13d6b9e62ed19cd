package fetch

import (
	"fmt"
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/restyutil"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"sync"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	random "github.com/mazen160/go-random"
)

// analytics cookie names the target site sets on a first visit
const (
	cookieVisitFirst = "Hm_lvt_f805f7762a9a04ccf3a8463c590e1e06"
	cookieVisitLast  = "Hm_lpvt_f805f7762a9a04ccf3a8463c590e1e06"
	cookieSessionId  = "ASP.NET_SessionId"
)

// Session is one reusable http client with its own cookie jar and identity.
// A session is only ever used by one fetch at a time.
type Session struct {
	// Identity is the user agent the session was created with.
	Identity string
	Client   *resty.Client
}

// Headers returns a copy of the headers every request of this session carries.
func (s *Session) Headers() http.Header {
	return s.Client.Header.Clone()
}

func pickUserAgent(agents []string) string {
	if len(agents) == 0 {
		return ""
	}
	return agents[rand.Intn(len(agents))]
}

func initialCookies(now time.Time) ([]*http.Cookie, error) {
	token, err := random.String(24)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	unix := strconv.FormatInt(now.Unix(), 10)
	return []*http.Cookie{
		{Name: cookieVisitFirst, Value: unix},
		{Name: cookieVisitLast, Value: unix},
		{Name: cookieSessionId, Value: token},
	}, nil
}

func newSession(opts Options, dump restyutil.Output, tel telemetry.API) (*Session, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	if !opts.DisableCloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	identity := pickUserAgent(opts.UserAgents)
	client.SetHeaders(opts.BaseHeaders)
	client.SetHeader("User-Agent", identity)

	cookies, err := initialCookies(time.Now())
	if err != nil {
		return nil, err
	}
	client.SetCookies(cookies)

	telemetry.InstrumentResty(client, tel)
	restyutil.DumpExchanges(client, dump)

	return &Session{
		Identity: identity,
		Client:   client,
	}, nil
}

// SessionPool hands out sessions and keeps at most `capacity` idle ones for reuse.
type SessionPool struct {
	mutex    sync.Mutex
	idle     []*Session
	capacity int
	factory  func() (*Session, error)
}

// NewSessionPool creates an empty pool, sessions are constructed lazily on Acquire.
func NewSessionPool(opts Options, tel telemetry.API) *SessionPool {
	opts = opts.withDefaults()

	var dump restyutil.Output
	if opts.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(opts.DumpDir)
		if err != nil {
			tel.ReportWarning(report_fetcher_session, "http exchange dumps disabled", err)
		} else {
			tel.ReportDebug("dumping http exchanges", output.Directory())
			dump = output
		}
	}

	return newSessionPool(opts.MaxSessions, func() (*Session, error) {
		return newSession(opts, dump, tel)
	})
}

func newSessionPool(capacity int, factory func() (*Session, error)) *SessionPool {
	return &SessionPool{
		capacity: capacity,
		factory:  factory,
	}
}

// Acquire pops an idle session or constructs a new one when none are idle.
func (p *SessionPool) Acquire() (*Session, error) {
	p.mutex.Lock()
	if n := len(p.idle); n > 0 {
		session := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		p.mutex.Unlock()
		return session, nil
	}
	p.mutex.Unlock()

	return p.factory()
}

// Release returns a session to the pool, or discards it when the pool is full.
func (p *SessionPool) Release(session *Session) {
	if session == nil {
		return
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.idle) >= p.capacity {
		return
	}
	for _, s := range p.idle {
		if s == session {
			return
		}
	}
	p.idle = append(p.idle, session)
}

// Len is the number of idle sessions.
func (p *SessionPool) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.idle)
}

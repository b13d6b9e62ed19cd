package fetch

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/titanous/json5"
)

// Duration is a time.Duration that reads from config files as either
// a go duration string ("20s", "500ms") or a number of seconds.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	err := json5.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	switch value := raw.(type) {
	case float64:
		*d = Duration(value * float64(time.Second))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	}
	return fmt.Errorf("invalid duration: %s", string(data))
}

// EncodingRule selects a response charset for every url whose host contains HostContains.
type EncodingRule struct {
	HostContains string `json:"host_contains"`
	Charset      string `json:"charset"`
}

type Options struct {
	MaxRetries int      `json:"max_retries"`
	Timeout    Duration `json:"timeout"`

	// upper bound of a single backoff sleep
	MaxDelay  Duration `json:"max_delay"`
	MinJitter Duration `json:"min_jitter"`
	MaxJitter Duration `json:"max_jitter"`

	MaxSessions   int `json:"max_sessions"`
	MaxConcurrent int `json:"max_concurrent"`

	// 0 means no limit besides MaxConcurrent
	RequestsPerSecond float64 `json:"requests_per_second"`

	// sessions wrap their transport with cloudflare-bp unless this is set
	DisableCloudflareBypass bool `json:"disable_cloudflare_bypass"`

	// every http exchange is written to a file in this directory when set
	DumpDir string `json:"dump_dir"`

	UserAgents     []string          `json:"user_agents"`
	BaseHeaders    map[string]string `json:"base_headers"`
	Encodings      []EncodingRule    `json:"encodings"`
	DefaultCharset string            `json:"default_charset"`
}

func DefaultOptions() Options {
	return Options{
		MaxRetries:    5,
		Timeout:       Duration(20 * time.Second),
		MaxDelay:      Duration(5 * time.Second),
		MinJitter:     0,
		MaxJitter:     Duration(500 * time.Millisecond),
		MaxSessions:   5,
		MaxConcurrent: 3,

		UserAgents: append([]string(nil), DefaultUserAgents...),
		BaseHeaders: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
			"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
			"Referer":         "https://live.500.com/",
		},
		Encodings: []EncodingRule{
			{HostContains: "live.500.com", Charset: "gbk"},
		},
		DefaultCharset: "gb18030",
	}
}

// withDefaults fills every zero value with the value from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxRetries <= 0 {
		o.MaxRetries = def.MaxRetries
	}
	if o.Timeout <= 0 {
		o.Timeout = def.Timeout
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = def.MaxDelay
	}
	if o.MaxJitter < o.MinJitter {
		o.MaxJitter = o.MinJitter
	}
	if o.MaxSessions <= 0 {
		o.MaxSessions = def.MaxSessions
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = def.MaxConcurrent
	}
	if len(o.UserAgents) == 0 {
		o.UserAgents = def.UserAgents
	}
	if o.BaseHeaders == nil {
		o.BaseHeaders = def.BaseHeaders
	}
	if o.Encodings == nil {
		o.Encodings = def.Encodings
	}
	if o.DefaultCharset == "" {
		o.DefaultCharset = def.DefaultCharset
	}
	return o
}

// CharsetFor returns the charset label configured for the host of the given url.
func (o Options) CharsetFor(host string) string {
	host = strings.ToLower(host)
	for _, rule := range o.Encodings {
		if rule.HostContains != "" && strings.Contains(host, strings.ToLower(rule.HostContains)) {
			return rule.Charset
		}
	}
	return o.DefaultCharset
}

var DefaultUserAgents = []string{
	// chrome
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 11.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36",

	// firefox
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:119.0) Gecko/20100101 Firefox/119.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14.2; rv:119.0) Gecko/20100101 Firefox/119.0",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:119.0) Gecko/20100101 Firefox/119.0",
	"Mozilla/5.0 (Windows NT 11.0; Win64; x64; rv:118.0) Gecko/20100101 Firefox/118.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:117.0) Gecko/20100101 Firefox/117.0",

	// safari
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",

	// edge
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",

	// mobile
	"Mozilla/5.0 (Android 13; Mobile; rv:119.0) Gecko/119.0 Firefox/119.0",
	"Mozilla/5.0 (Linux; Android 13; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 12; Redmi Note 10 Pro) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Mobile Safari/537.36",
}

package statsd

/*

Copyright (c) 2023 the posh-statsd authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

import (
	"context"
	"log"
	"net"
	"os"
	"time"
)

// Default settings
const (
	// DefaultPort is the standard statsd UDP port
	DefaultPort = 8125
	// DefaultMetricPrefix is empty (no prefix)
	DefaultMetricPrefix = ""
	// DefaultSampleRate means every sample is unsampled
	DefaultSampleRate = 1.0
	// DefaultCounterValue is the magnitude for Increment/Decrement
	DefaultCounterValue = 1
	// DefaultResolveTimeout bounds hostname resolution per call
	DefaultResolveTimeout = 5 * time.Second
	// DefaultLogPrefix is the prefix for the default logger
	DefaultLogPrefix = "[STATSD] "
)

// SomeLogger is anything that could be used to log dropped samples, e.g. log.Logger
type SomeLogger interface {
	Printf(fmt string, args ...interface{})
}

// HostResolver resolves a destination hostname to IP addresses.
//
// net.DefaultResolver implements it; tests substitute their own.
type HostResolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// ClientOptions are statsd client settings, fixed at client creation and
// adjustable per call
type ClientOptions struct {
	// Host is the destination to deliver to, resolved fresh on every send
	Host string

	// Port is the destination UDP port
	Port int

	// MetricPrefix is prepended verbatim to every bucket name (but not to
	// raw Send messages)
	MetricPrefix string

	// SampleRate is stamped on the wire as "|@<rate>" only when it falls
	// strictly inside (0, 1). A rate of exactly 1 means unsampled and is
	// omitted, so passing 1 explicitly and passing nothing produce the same
	// message; out-of-range rates are omitted as well.
	SampleRate float64

	// CounterValue is the magnitude sent by Increment and Decrement
	CounterValue int64

	// Tags are appended to every metric as the "|#name:value,..." suffix,
	// client-level tags first, per-call tags after, order preserved
	Tags []Tag

	// Logger is used for dropped-sample diagnostics
	Logger SomeLogger

	// Resolver performs hostname resolution
	Resolver HostResolver

	// ResolveTimeout bounds a single resolution attempt
	ResolveTimeout time.Duration
}

// Option is a function which can modify ClientOptions
type Option func(*ClientOptions)

// Port sets the destination UDP port (default: 8125)
func Port(port int) Option {
	return func(o *ClientOptions) {
		o.Port = port
	}
}

// MetricPrefix sets the string to prepend to every bucket name (default: empty)
//
// The prefix is prepended verbatim, so it usually ends with a dot:
// "myapp."
func MetricPrefix(prefix string) Option {
	return func(o *ClientOptions) {
		o.MetricPrefix = prefix
	}
}

// SampleRate sets the sample rate stamped on the metric (default: 1)
//
// Only rates strictly between 0 and 1 appear on the wire; see
// ClientOptions.SampleRate. The client stamps the rate but never drops
// samples itself, the sampling decision belongs to the caller.
func SampleRate(rate float64) Option {
	return func(o *ClientOptions) {
		o.SampleRate = rate
	}
}

// Value sets the counter magnitude for Increment and Decrement (default: 1)
//
// Decrement negates it before sending.
func Value(value int64) Option {
	return func(o *ClientOptions) {
		o.CounterValue = value
	}
}

// Tags appends tags to the metric (default: none)
//
// On a client the tags apply to every metric; on a call they extend the
// client's tags for that metric only.
func Tags(tags ...Tag) Option {
	return func(o *ClientOptions) {
		o.Tags = append(o.Tags, tags...)
	}
}

// Logger sets the logger for dropped-sample diagnostics (default: log to stderr)
func Logger(logger SomeLogger) Option {
	return func(o *ClientOptions) {
		o.Logger = logger
	}
}

// Resolver sets the hostname resolver (default: net.DefaultResolver)
func Resolver(resolver HostResolver) Option {
	return func(o *ClientOptions) {
		o.Resolver = resolver
	}
}

// ResolveTimeout bounds a single hostname resolution (default: 5s)
//
// Resolution must not hang indefinitely, or a network partition would turn
// the fail-silent contract into a blocking one.
func ResolveTimeout(timeout time.Duration) Option {
	return func(o *ClientOptions) {
		o.ResolveTimeout = timeout
	}
}

func defaultOptions(host string) ClientOptions {
	return ClientOptions{
		Host:           host,
		Port:           DefaultPort,
		MetricPrefix:   DefaultMetricPrefix,
		SampleRate:     DefaultSampleRate,
		CounterValue:   DefaultCounterValue,
		Logger:         log.New(os.Stderr, DefaultLogPrefix, log.LstdFlags),
		Resolver:       net.DefaultResolver,
		ResolveTimeout: DefaultResolveTimeout,
	}
}

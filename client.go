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
	"strconv"
	"time"
)

// Client is a statsd client bound to a destination host and a set of
// default settings.
//
// A Client holds configuration only. Every metric call resolves the
// destination and opens its own short-lived UDP socket, so a Client is safe
// for concurrent use, never needs closing and never holds a connection.
type Client struct {
	options ClientOptions
}

// New creates a statsd client delivering to host on port 8125
//
// Settings could be controlled via functions of type Option; every metric
// method accepts further options applying to that one call only.
func New(host string, options ...Option) *Client {
	c := &Client{options: defaultOptions(host)}

	for _, option := range options {
		option(&c.options)
	}

	// clamp capacity so per-call tag appends copy instead of sharing
	c.options.Tags = c.options.Tags[:len(c.options.Tags):len(c.options.Tags)]

	return c
}

// CloneWithPrefix returns a copy of the client with the metric prefix replaced
func (c *Client) CloneWithPrefix(prefix string) *Client {
	clone := *c
	clone.options.MetricPrefix = prefix

	return &clone
}

// CloneWithPrefixExtension returns a copy of the client with the given
// extension appended to the metric prefix
func (c *Client) CloneWithPrefixExtension(extension string) *Client {
	clone := *c
	clone.options.MetricPrefix = clone.options.MetricPrefix + extension

	return &clone
}

// Increment bumps a counter by the configured magnitude (1, unless Value is given)
//
// Often used to note a particular event:
//
//	client.Increment("req.count")
func (c *Client) Increment(bucket string, options ...Option) {
	o := c.call(options)

	emit(&o, bucket, "c", func(buf []byte) []byte {
		return strconv.AppendInt(buf, o.CounterValue, 10)
	})
}

// Decrement lowers a counter by the configured magnitude: the magnitude is
// negated on the wire, so Value(2) sends -2
func (c *Client) Decrement(bucket string, options ...Option) {
	o := c.call(options)

	emit(&o, bucket, "c", func(buf []byte) []byte {
		return strconv.AppendInt(buf, -o.CounterValue, 10)
	})
}

// Timing tracks a duration event, the time delta must be given in
// milliseconds and is transmitted unmodified
func (c *Client) Timing(bucket string, delta int64, options ...Option) {
	o := c.call(options)

	emit(&o, bucket, "ms", func(buf []byte) []byte {
		return strconv.AppendInt(buf, delta, 10)
	})
}

// PrecisionTiming tracks a duration event, the time delta has to be a duration;
// sub-millisecond precision survives as a fractional value
func (c *Client) PrecisionTiming(bucket string, delta time.Duration, options ...Option) {
	o := c.call(options)

	emit(&o, bucket, "ms", func(buf []byte) []byte {
		return strconv.AppendFloat(buf, float64(delta)/float64(time.Millisecond), 'f', -1, 64)
	})
}

// Gauge sets the current value for the bucket
//
// There is no default, a gauge without a value is meaningless. The value is
// transmitted exactly as given, including negative values, which statsd
// servers interpret as gauge deltas.
func (c *Client) Gauge(bucket string, value float64, options ...Option) {
	o := c.call(options)

	emit(&o, bucket, "g", func(buf []byte) []byte {
		return strconv.AppendFloat(buf, value, 'f', -1, 64)
	})
}

// Send delivers an already formatted message verbatim, one datagram
//
// The metric prefix, sample rate and tags do not apply, the message is the
// whole payload.
func (c *Client) Send(message string, options ...Option) {
	o := c.call(options)

	transmit(&o, []byte(message))
}

// call derives the effective options for a single metric call
func (c *Client) call(options []Option) ClientOptions {
	o := c.options

	for _, option := range options {
		option(&o)
	}

	return o
}

func emit(o *ClientOptions, bucket string, typ string, appendValue func([]byte) []byte) {
	buf := make([]byte, 0, 128)
	buf = appendMetric(buf, o, bucket, typ, appendValue)

	transmit(o, buf)
}

// Package-level operations for one-shot sends without a bound client; each
// accepts the same options as the Client methods.

// Send delivers a raw, already formatted message to host
func Send(host, message string, options ...Option) {
	New(host, options...).Send(message)
}

// Timing tracks a duration event on host, the delta given in milliseconds
func Timing(host, bucket string, delta int64, options ...Option) {
	New(host, options...).Timing(bucket, delta)
}

// Increment bumps a counter on host by 1, or by Value if given
func Increment(host, bucket string, options ...Option) {
	New(host, options...).Increment(bucket)
}

// Decrement lowers a counter on host by 1, or by Value if given
func Decrement(host, bucket string, options ...Option) {
	New(host, options...).Decrement(bucket)
}

// Gauge sets the current value for bucket on host
func Gauge(host, bucket string, value float64, options ...Option) {
	New(host, options...).Gauge(bucket, value)
}

/*
Package statsd implements a stateless, fire-and-forget statsd client.

The client formats counter, gauge and timing samples into the statsd line
protocol and delivers each one as a single UDP datagram, best-effort. There
is no batching, no buffering and no persistent connection: every call
resolves the destination hostname, opens its own short-lived socket, writes
one datagram and closes the socket again. With nothing shared between calls
there is nothing to race on, so concurrent use needs no coordination.

Delivery is deliberately fail-silent. Metrics are a non-critical telemetry
side channel, so a hostname that does not resolve, or a socket that cannot
be written, drops the sample with a log line instead of surfacing an error
to the application. No public operation returns an error.

Quick start:

	statsd.Increment("statsd.example.com", "deploys")
	statsd.Timing("statsd.example.com", "request.duration", 320)

or, binding the destination and defaults once:

	client := statsd.New("statsd.example.com",
		statsd.MetricPrefix("myapp."),
		statsd.Tags(statsd.StringTag("env", "prod")))

	client.Increment("deploys")
	client.Gauge("queue.depth", 85, statsd.SampleRate(0.1))

Ideas were borrowed from the following statsd clients:

  - https://github.com/smira/go-statsd
  - https://github.com/cactus/go-statsd-client
  - https://github.com/quipo/statsd
  - https://github.com/alexcesaro/statsd/
*/
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

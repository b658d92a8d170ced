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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := New("statsd.test")

	assert.Equal(t, "statsd.test", c.options.Host)
	assert.Equal(t, 8125, c.options.Port)
	assert.Equal(t, "", c.options.MetricPrefix)
	assert.Equal(t, 1.0, c.options.SampleRate)
	assert.Equal(t, int64(1), c.options.CounterValue)
	assert.Equal(t, 5*time.Second, c.options.ResolveTimeout)
	assert.Empty(t, c.options.Tags)
	assert.NotNil(t, c.options.Logger)
	assert.NotNil(t, c.options.Resolver)
}

func TestOptions(t *testing.T) {
	c := New("statsd.test",
		Port(9125),
		MetricPrefix("foo."),
		SampleRate(0.5),
		Value(3),
		Tags(StringTag("env", "prod")),
		ResolveTimeout(time.Second))

	assert.Equal(t, 9125, c.options.Port)
	assert.Equal(t, "foo.", c.options.MetricPrefix)
	assert.Equal(t, 0.5, c.options.SampleRate)
	assert.Equal(t, int64(3), c.options.CounterValue)
	assert.Equal(t, []Tag{StringTag("env", "prod")}, c.options.Tags)
	assert.Equal(t, time.Second, c.options.ResolveTimeout)
}

func TestPerCallOptionsDoNotStick(t *testing.T) {
	c := New("statsd.test", Tags(StringTag("env", "prod")))

	o := c.call([]Option{Port(9125), Tags(StringTag("az", "1")), SampleRate(0.1)})

	assert.Equal(t, 9125, o.Port)
	assert.Equal(t, 0.1, o.SampleRate)
	assert.Equal(t, []Tag{StringTag("env", "prod"), StringTag("az", "1")}, o.Tags)

	// the client keeps its own settings
	assert.Equal(t, 8125, c.options.Port)
	assert.Equal(t, 1.0, c.options.SampleRate)
	assert.Equal(t, []Tag{StringTag("env", "prod")}, c.options.Tags)
}

func TestClonesShareNothing(t *testing.T) {
	c := New("statsd.test", MetricPrefix("foo."), Tags(StringTag("env", "prod")))
	clone := c.CloneWithPrefixExtension("bar.")

	o := clone.call([]Option{Tags(StringTag("az", "1"))})

	assert.Equal(t, "foo.bar.", o.MetricPrefix)
	assert.Equal(t, "foo.", c.options.MetricPrefix)
	assert.Equal(t, []Tag{StringTag("env", "prod")}, c.options.Tags)
}

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

import "strconv"

// appendMetric builds the complete line for a single sample:
//
//	<prefix><bucket>:<value>|<type>[|@<rate>][|#<tag>,<tag>,...]
//
// Nothing is validated here: a bucket with protocol characters in it goes
// out malformed, the server is the arbiter of what it accepts.
func appendMetric(buf []byte, o *ClientOptions, bucket string, typ string, appendValue func([]byte) []byte) []byte {
	buf = append(buf, o.MetricPrefix...)
	buf = append(buf, bucket...)
	buf = append(buf, ':')
	buf = appendValue(buf)
	buf = append(buf, '|')
	buf = append(buf, typ...)
	buf = appendRate(buf, o.SampleRate)
	buf = appendTags(buf, o.Tags)

	return buf
}

// appendRate appends the "|@<rate>" segment when the rate is strictly
// inside (0, 1)
//
// Exactly 1 is the unsampled default and carries no segment, same as a
// caller passing no rate at all; rates at or outside the interval bounds
// would mislead the server's correction and are omitted too.
func appendRate(buf []byte, rate float64) []byte {
	if rate <= 0 || rate >= 1 {
		return buf
	}

	buf = append(buf, "|@"...)
	return strconv.AppendFloat(buf, rate, 'f', -1, 64)
}

// appendTags appends the "|#<tag>,<tag>" segment, comma-joined in caller
// order; an empty tag set appends nothing
func appendTags(buf []byte, tags []Tag) []byte {
	for i, tag := range tags {
		if i == 0 {
			buf = append(buf, "|#"...)
		} else {
			buf = append(buf, ',')
		}

		buf = tag.Append(buf)
	}

	return buf
}

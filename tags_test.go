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

import "testing"

func TestTags(t *testing.T) {
	compare := func(tag Tag, expected string) func(*testing.T) {
		return func(t *testing.T) {
			buf := tag.Append([]byte{})

			if string(buf) != expected {
				t.Errorf("unexpected tag format: %#v != %#v", string(buf), expected)
			}
		}
	}

	t.Run("String",
		compare(StringTag("name", "value"), "name:value"))
	t.Run("Int",
		compare(IntTag("foo", -33), "foo:-33"))
	t.Run("Int64",
		compare(Int64Tag("foo", 1024*1024*1024*1024), "foo:1099511627776"))
}

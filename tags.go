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

type tagType int

const (
	typeString tagType = iota
	typeInt64
)

// Tag is a metric tag: a name paired with a string or integer value,
// rendered on the wire as "name:value"
type Tag struct {
	name     string
	strValue string
	intValue int64
	typ      tagType
}

// Append formats the tag and appends it to buf
func (tag Tag) Append(buf []byte) []byte {
	buf = append(buf, tag.name...)
	buf = append(buf, ':')

	if tag.typ == typeString {
		return append(buf, tag.strValue...)
	}

	return strconv.AppendInt(buf, tag.intValue, 10)
}

// StringTag creates a tag with a string value
func StringTag(name, value string) Tag {
	return Tag{name: name, strValue: value, typ: typeString}
}

// IntTag creates a tag with an integer value
func IntTag(name string, value int) Tag {
	return Tag{name: name, intValue: int64(value), typ: typeInt64}
}

// Int64Tag creates a tag with an int64 value
func Int64Tag(name string, value int64) Tag {
	return Tag{name: name, intValue: value, typ: typeInt64}
}

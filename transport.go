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
	"net"
)

// transmit resolves the destination and delivers a single datagram,
// best-effort.
//
// Every failure is absorbed here. A resolution failure drops the sample
// with a log line and zero datagrams sent; a dial or write failure after
// successful resolution is dropped the same way. Nothing propagates to the
// caller: metrics delivery must never take the application down with it.
func transmit(o *ClientOptions, msg []byte) {
	addr, err := resolve(o)
	if err != nil {
		o.Logger.Printf("Error resolving %q: %s", o.Host, err)
		return
	}

	sock, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		o.Logger.Printf("Error connecting to %s: %s", addr, err)
		return
	}
	defer func() { _ = sock.Close() }()

	if _, err = sock.Write(msg); err != nil {
		o.Logger.Printf("Error writing to socket: %s", err)
	}
}

// resolve looks up the destination host; when the resolver returns several
// addresses the first one wins
func resolve(o *ClientOptions) (*net.UDPAddr, error) {
	ctx, cancel := context.WithTimeout(context.Background(), o.ResolveTimeout)
	defer cancel()

	addrs, err := o.Resolver.LookupIPAddr(ctx, o.Host)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, &net.DNSError{Err: "no addresses returned", Name: o.Host, IsNotFound: true}
	}

	return &net.UDPAddr{IP: addrs[0].IP, Zone: addrs[0].Zone, Port: o.Port}, nil
}

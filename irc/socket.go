// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"

	"github.com/gorilla/websocket"
)

const (
	// IRCv3 websocket subprotocol carrying one UTF-8 line per text message
	wsTextSubprotocol = "text.ircv3.net"
)

// isWebsocketAddress reports whether address should be dialed as a
// websocket URL rather than a host:port pair.
func isWebsocketAddress(address string) bool {
	return strings.HasPrefix(address, "ws://") || strings.HasPrefix(address, "wss://")
}

// DialIRC opens a connection to the configured server.
func DialIRC(ctx context.Context, config ServerConfig) (IRCConn, error) {
	if isWebsocketAddress(config.Address) {
		dialer := websocket.Dialer{
			Proxy:            websocket.DefaultDialer.Proxy,
			HandshakeTimeout: config.WriteTimeout,
			Subprotocols:     []string{wsTextSubprotocol},
		}
		conn, _, err := dialer.DialContext(ctx, config.Address, nil)
		if err != nil {
			return nil, fmt.Errorf("websocket dial %s: %w", config.Address, err)
		}
		return NewIRCWSConn(conn, config.ReadTimeout, config.WriteTimeout), nil
	}

	var conn net.Conn
	var err error
	if config.TLS {
		dialer := tls.Dialer{}
		conn, err = dialer.DialContext(ctx, "tcp", config.Address)
	} else {
		var dialer net.Dialer
		conn, err = dialer.DialContext(ctx, "tcp", config.Address)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", config.Address, err)
	}
	return NewIRCStreamConn(conn, config.ReadTimeout, config.WriteTimeout), nil
}

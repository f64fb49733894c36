// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// tags (which we don't model) plus a 512-byte message, with slack
	maxReadQBytes = 4096 + 512 + 1024
)

var (
	crlf = []byte{'\r', '\n'}
)

// IRCConn abstracts away the distinction between a regular
// net.Conn (which includes both raw TCP and TLS) and a websocket.
// it doesn't expose Read and Write because websockets are message-oriented,
// not stream-oriented.
type IRCConn interface {
	// ReadLine blocks until a full line is available and returns it with
	// its terminator. The returned slice is only valid until the next call.
	ReadLine() (line []byte, err error)
	// Write sends one or more complete '\n'-terminated lines.
	Write([]byte) error

	Close() error
}

// IRCStreamConn is an IRCConn over a regular stream connection.
type IRCStreamConn struct {
	conn         net.Conn
	reader       *bufio.Reader
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewIRCStreamConn wraps conn; a zero timeout means none.
func NewIRCStreamConn(conn net.Conn, readTimeout, writeTimeout time.Duration) *IRCStreamConn {
	return &IRCStreamConn{
		conn:         conn,
		reader:       bufio.NewReaderSize(conn, maxReadQBytes),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

func (cc *IRCStreamConn) Write(buf []byte) (err error) {
	if cc.writeTimeout != 0 {
		cc.conn.SetWriteDeadline(time.Now().Add(cc.writeTimeout))
	}
	_, err = cc.conn.Write(buf)
	return
}

func (cc *IRCStreamConn) ReadLine() (line []byte, err error) {
	if cc.readTimeout != 0 {
		cc.conn.SetReadDeadline(time.Now().Add(cc.readTimeout))
	}
	line, err = cc.reader.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		return nil, errReadQ
	}
	// hand back a trailing unterminated fragment; the caller will see
	// io.EOF on the next call
	if err == io.EOF && len(line) != 0 {
		return line, nil
	}
	return
}

func (cc *IRCStreamConn) Close() (err error) {
	return cc.conn.Close()
}

// IRCWSConn is an IRCConn over a websocket. Each text message carries
// exactly one IRC line without a terminator.
type IRCWSConn struct {
	conn         *websocket.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
	buf          []byte
}

func NewIRCWSConn(conn *websocket.Conn, readTimeout, writeTimeout time.Duration) *IRCWSConn {
	return &IRCWSConn{
		conn:         conn,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Write splits buf into lines and sends each as its own text message.
func (wc *IRCWSConn) Write(buf []byte) (err error) {
	if wc.writeTimeout != 0 {
		wc.conn.SetWriteDeadline(time.Now().Add(wc.writeTimeout))
	}
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		if err = wc.conn.WriteMessage(websocket.TextMessage, line); err != nil {
			return
		}
	}
	return
}

// ReadLine returns the next non-empty text message with CRLF appended,
// since the message boundary is the line terminator.
func (wc *IRCWSConn) ReadLine() (line []byte, err error) {
	for {
		if wc.readTimeout != 0 {
			wc.conn.SetReadDeadline(time.Now().Add(wc.readTimeout))
		}
		var messageType int
		messageType, line, err = wc.conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure {
				err = io.EOF
			}
			return nil, err
		}
		line = bytes.TrimRight(line, "\r\n")
		// on empty message or non-text message, try again, block if necessary
		if messageType == websocket.TextMessage && len(line) != 0 {
			if len(line) > maxReadQBytes {
				return nil, errReadQ
			}
			wc.buf = append(append(wc.buf[:0], line...), crlf...)
			return wc.buf, nil
		}
	}
}

func (wc *IRCWSConn) Close() (err error) {
	return wc.conn.Close()
}

// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line     string
		expected Command
	}{
		{"PING :public-irc.w3.org\r\n", Ping{Server: "public-irc.w3.org"}},
		{
			"anubis@public.cloak PRIVMSG #didnt :well hello there\r\n",
			PrivMsg{Sender: "anubis@public.cloak", Channel: "#didnt", Text: "well hello there"},
		},
		{
			":yancy!~root@public.cloak PRIVMSG #didnt :tomata\r\n",
			PrivMsg{Sender: ":yancy!~root@public.cloak", Channel: "#didnt", Text: "tomata"},
		},
		// empty body
		{"PING :\r\n", Ping{Server: ""}},
		{"nick PRIVMSG #c :\r\n", PrivMsg{Sender: "nick", Channel: "#c", Text: ""}},
		// a colon without a preceding space doesn't count as a separator
		{"PING :a:b\r\n", Ping{Server: "a:b"}},

		// missing terminator
		{"PING :public-irc.w3.org", nil},
		{"PING :public-irc.w3.org\n", nil},
		{"PING :public-irc.w3.org\r", nil},
		// no separator
		{"PING public-irc.w3.org\r\n", nil},
		{"\r\n", nil},
		{"", nil},
		// two separators: text containing " :" is dropped
		{"nick PRIVMSG #c :hello :)\r\n", nil},
		{"PING :a :b\r\n", nil},
		// unmodeled or malformed headers
		{":server 001 raistlin :Welcome\r\n", nil},
		{"nick NOTICE #c :hi\r\n", nil},
		{"PRIVMSG #c :hi\r\n", nil},
		{"nick PRIVMSG #c extra :hi\r\n", nil},
		{" PING :x\r\n", nil},
		{"PING  :x\r\n", nil},
		{"ping :x\r\n", nil},
	}

	for _, c := range cases {
		result := ParseCommand(c.line)
		if !reflect.DeepEqual(result, c.expected) {
			t.Errorf("ParseCommand(%q): expected %#v, got %#v", c.line, c.expected, result)
		}
	}
}

func TestPrivMsgAuthor(t *testing.T) {
	cases := []struct {
		sender   string
		expected string
	}{
		{"anubis@public.cloak", "anubis"},
		{":yancy!~root@host.example", ":yancy!~root"},
		{"nohost", "nohost"},
		{"a@b@c", "a"},
		{"", ""},
	}
	for _, c := range cases {
		msg := PrivMsg{Sender: c.sender}
		if author := msg.Author(); author != c.expected {
			t.Errorf("Author(%q): expected %q, got %q", c.sender, c.expected, author)
		}
	}
}

package main

import (
	"net"
	"strconv"
	"testing"

	"ygodeck/internal/card"
)

func testCard() card.Card {
	return card.Card{
		ID:     44508094,
		Name:   "Stardust Dragon",
		Type:   "Synchro Monster",
		Race:   "Dragon",
		Images: []card.Image{{ID: 44508094, URL: "https://img.example/44508094.jpg"}},
	}
}

// freePort finds a port nothing is listening on
func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	return portOf(l.Addr())
}

func portOf(addr net.Addr) string {
	return strconv.Itoa(addr.(*net.TCPAddr).Port)
}

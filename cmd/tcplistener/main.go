package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/Brownie44l1/arenahttpd/internal/arena"
	"github.com/Brownie44l1/arenahttpd/internal/content"
	"github.com/Brownie44l1/arenahttpd/internal/request"
	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

// tcplistener prints how the server would interpret each incoming request
// line, without serving anything back.
func main() {
	addr := flag.String("addr", ":42069", "address to listen on")
	recv := flag.Int("recv", 2047, "bytes read per connection")
	flag.Parse()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "listen:", err)
		os.Exit(1)
	}
	defer listener.Close()
	fmt.Printf("Listening on %s...\n", listener.Addr())

	temp := arena.New(*recv + 1)
	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Println("Accept error:", err)
			continue
		}

		handleConnection(conn, temp.Scratch(), *recv)
	}
}

func handleConnection(conn net.Conn, scratch *arena.Arena, recv int) {
	defer conn.Close()

	buf := scratch.Push(recv + 1)
	n, err := conn.Read(buf[:recv])
	if n <= 0 {
		fmt.Println("empty read:", err)
		return
	}
	describe(os.Stdout, buf[:n])
}

func describe(w io.Writer, raw []byte) {
	line, _, _ := strings.Cut(string(raw), "\r\n")
	fmt.Fprintf(w, "Request Line: %q\n", line)

	req, err := request.Parse(strview.Of(raw))
	if err != nil {
		fmt.Fprintf(w, "Rejected: %v\n", err)
		return
	}

	target := req.Target()
	ct := content.Classify(target)
	fmt.Fprintf(w, "Path: %s\n", req.Path.String())
	fmt.Fprintf(w, "Target: %s\n", target.String())
	fmt.Fprintf(w, "Content-Type: %s (%s)\n", ct.MIME(), ct)
}

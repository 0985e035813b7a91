// Command ctcpdemo is a minimal, flag-free demonstration of wrapping a
// loopback TCP connection with the CTCP codec. It exists to exercise
// ctcpconn.Dial/Listen end-to-end; CLI parsing, configuration loading, and
// signal handling are explicitly out of scope for this toolkit (they are
// the aggregation engine's concern), so this program takes no arguments.
package main

import (
	"log"

	"github.com/opkgmake/aggligator/ctcp"
	"github.com/opkgmake/aggligator/ctcpconn"
)

func main() {
	l, err := ctcpconn.Listen("tcp", "127.0.0.1:0", ctcp.DefaultKey)
	if err != nil {
		log.Fatalf("ctcpdemo: listen: %v", err)
	}
	defer l.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := l.Accept()
		if err != nil {
			log.Printf("ctcpdemo: accept: %v", err)
			return
		}
		defer conn.Close()

		frame, err := conn.ReadFrame()
		if err != nil {
			log.Printf("ctcpdemo: read: %v", err)
			return
		}
		log.Printf("ctcpdemo: server received %q", frame)
	}()

	client, err := ctcpconn.Dial("tcp", l.Addr().String(), ctcp.DefaultKey)
	if err != nil {
		log.Fatalf("ctcpdemo: dial: %v", err)
	}
	defer client.Close()

	if err := client.WriteFrame([]byte("hello over CTCP")); err != nil {
		log.Fatalf("ctcpdemo: write: %v", err)
	}

	<-done
}

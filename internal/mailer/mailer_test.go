package mailer_test

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nima/farsiflash/internal/mailer"
)

// fakeSMTPServer accepts one connection, answers a minimal SMTP
// conversation, and records every client command plus the DATA payload.
type fakeSMTPServer struct {
	listener net.Listener
	commands chan []string
	data     chan string
}

func newFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeSMTPServer{
		listener: l,
		commands: make(chan []string, 1),
		data:     make(chan string, 1),
	}
	go s.serve()
	t.Cleanup(func() { l.Close() })
	return s
}

func (s *fakeSMTPServer) hostPort(t *testing.T) (string, int) {
	host, portStr, err := net.SplitHostPort(s.listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, port
}

func (s *fakeSMTPServer) serve() {
	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	var commands []string
	var body strings.Builder
	r := bufio.NewReader(conn)

	write := func(line string) { conn.Write([]byte(line + "\r\n")) }
	write("220 test ready")

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		commands = append(commands, line)

		switch {
		case strings.HasPrefix(line, "DATA"):
			write("354 end with .")
			for {
				dl, err := r.ReadString('\n')
				if err != nil {
					return
				}
				dl = strings.TrimRight(dl, "\r\n")
				if dl == "." {
					break
				}
				body.WriteString(dl + "\n")
			}
			write("250 ok")
		case strings.HasPrefix(line, "QUIT"):
			write("221 bye")
			s.commands <- commands
			s.data <- body.String()
			return
		default:
			write("250 ok")
		}
	}
}

func TestSMTPSendUsesBareEnvelopeSender(t *testing.T) {
	server := newFakeSMTPServer(t)
	host, port := server.hostPort(t)

	m := mailer.NewSMTP(host, port, "", "", "FarsiFlash <no-reply@farsiflash.local>")
	err := m.Send(context.Background(), "learner@example.com", "Your sign-in link", "Salâm!")
	require.NoError(t, err)

	commands := <-server.commands
	assert.Contains(t, commands, "MAIL FROM:<no-reply@farsiflash.local>",
		"envelope sender must be the bare address, not the display-name form")
	assert.Contains(t, commands, "RCPT TO:<learner@example.com>")

	body := <-server.data
	assert.Contains(t, body, "From: FarsiFlash <no-reply@farsiflash.local>",
		"the From header keeps the display name")
	assert.Contains(t, body, "Subject: Your sign-in link")
}

func TestSMTPSendBareAddressSender(t *testing.T) {
	server := newFakeSMTPServer(t)
	host, port := server.hostPort(t)

	m := mailer.NewSMTP(host, port, "", "", "no-reply@farsiflash.local")
	err := m.Send(context.Background(), "learner@example.com", "Reminder", "hi")
	require.NoError(t, err)

	commands := <-server.commands
	assert.Contains(t, commands, "MAIL FROM:<no-reply@farsiflash.local>")
}

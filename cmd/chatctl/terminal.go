package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/realtime"

	"github.com/fatih/color"
)

const previewRunes = 40

var (
	mine   = color.New(color.FgCyan, color.Bold).SprintFunc()
	theirs = color.New(color.FgYellow, color.Bold).SprintFunc()
	faint  = color.New(color.FgHiBlack).SprintFunc()
)

func preview(s string) string {
	return normalize.Preview(strings.ReplaceAll(s, "\n", " "), previewRunes)
}

func formatMessage(me string, m data.Message) string {
	who := theirs("them")
	if m.SenderID == me {
		who = mine("me")
	}
	mark := ""
	if m.SenderID == me && m.Read {
		mark = " " + faint("✓")
	}
	return fmt.Sprintf("%s %s: %s%s", faint("["+m.CreatedAt.Local().Format(time.Kitchen)+"]"), who, m.Content, mark)
}

func formatCounts(c data.NotificationCounts) string {
	return fmt.Sprintf("unread messages: %d  unrated sales: %d  unrated purchases: %d",
		c.UnreadMessages, c.UnratedSales, c.UnratedPurchases)
}

// terminalBadge shows the unread count in the terminal title.
type terminalBadge struct {
	out io.Writer
}

func (b terminalBadge) SetBadge(n int64) {
	fmt.Fprintf(b.out, "\033]0;(%d) Messages\007", n)
}

func (b terminalBadge) ClearBadge() {
	fmt.Fprint(b.out, "\033]0;Messages\007")
}

// stdinPermission asks on the terminal whether to enable push.
type stdinPermission struct {
	in    io.Reader
	out   io.Writer
	grant realtime.Grant
}

func (p *stdinPermission) Request(ctx context.Context) (realtime.Grant, bool, error) {
	fmt.Fprint(p.out, "Enable push notifications for new messages? [y/N] ")

	type answer struct {
		text string
		err  error
	}
	got := make(chan answer, 1)
	go func() {
		text, err := bufio.NewReader(p.in).ReadString('\n')
		got <- answer{text, err}
	}()

	select {
	case <-ctx.Done():
		return realtime.Grant{}, false, ctx.Err()
	case a := <-got:
		if a.err != nil && a.err != io.EOF {
			return realtime.Grant{}, false, a.err
		}
		switch strings.ToLower(strings.TrimSpace(a.text)) {
		case "y", "yes":
			return p.grant, true, nil
		}
		return realtime.Grant{}, false, nil
	}
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/realtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <listing-id> <recipient-id> <message...>",
		Short: "Send one message",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.client.Send(cmd.Context(), args[0], args[1], strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s at %s\n", m.ID.Hex(), m.CreatedAt.Local().Format(time.Kitchen))
			return nil
		},
	}
}

func newInboxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "List conversations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			convs, err := a.client.Conversations(cmd.Context())
			if err != nil {
				return err
			}
			if len(convs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no conversations")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LISTING\tWITH\tUNREAD\tLAST")
			for _, c := range convs {
				fmt.Fprintf(w, "%s (%s)\t%s (%s)\t%d\t%s\n",
					c.GetListingTitle(), c.GetListingId(), c.GetOtherUserName(), c.GetOtherUserId(),
					c.GetUnreadCount(), preview(c.GetLastMessage().GetContent()))
			}
			return w.Flush()
		},
	}
}

// newOpenCmd opens a live thread: history first, then new messages as they
// arrive, and every stdin line is sent as a reply.
func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <listing-id> <other-user-id>",
		Short: "Open a conversation and chat live",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := interruptible(cmd)
			defer cancel()

			read := &pubsub.Signal{}
			s := realtime.NewSession(a.user, a.client, a.client, a.client, read, a.log)
			if err := s.Refresh(ctx); err != nil {
				a.log.Warn().Err(err).Msg("conversation list unavailable")
			}
			th, err := s.Open(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			defer s.CloseThread()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				err := s.Run(gctx)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			})
			g.Go(func() error {
				return printThread(gctx, cmd, a.user, th)
			})
			// stdin reads cannot be interrupted, so the reader stays outside
			// the group and ends the session on EOF
			go func() {
				defer cancel()
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					line := strings.TrimSpace(sc.Text())
					if line == "" {
						continue
					}
					if _, err := a.client.Send(gctx, args[0], args[1], line); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "not sent: %v\n", err)
					}
				}
			}()
			return g.Wait()
		},
	}
}

// printThread prints messages not yet shown whenever the thread changes.
func printThread(ctx context.Context, cmd *cobra.Command, me string, th *realtime.Thread) error {
	changes, stop := th.Changes()
	defer stop()

	shown := make(map[string]bool)
	flush := func() {
		for _, m := range th.Messages() {
			if shown[m.ID.Hex()] {
				continue
			}
			shown[m.ID.Hex()] = true
			fmt.Fprintln(cmd.OutOrStdout(), formatMessage(me, m))
		}
	}
	flush()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			flush()
			if th.State() == realtime.Unsubscribed {
				fmt.Fprintln(cmd.ErrOrStderr(), "disconnected; reopen to catch up")
				return realtime.ErrUnsubscribed
			}
		}
	}
}

func newCountsCmd(a *app) *cobra.Command {
	var (
		watch    bool
		endpoint string
		p256dh   string
		authKey  string
		delay    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Show unread messages and pending ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				c, err := a.client.ComputeCounts(cmd.Context(), a.user)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatCounts(c))
				return nil
			}

			ctx, cancel := interruptible(cmd)
			defer cancel()

			w := realtime.NewWatcher(a.user, a.client, a.client, nil, terminalBadge{out: cmd.OutOrStdout()}, a.log)
			w.OnUpdate = func(c data.NotificationCounts) {
				fmt.Fprintln(cmd.OutOrStdout(), formatCounts(c))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				err := w.Run(gctx)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			})
			if endpoint != "" {
				perm := &stdinPermission{
					in:    cmd.InOrStdin(),
					out:   cmd.OutOrStdout(),
					grant: realtime.Grant{Endpoint: endpoint, P256dh: p256dh, Auth: authKey},
				}
				prompt := realtime.NewPushPrompt(perm, a.client, delay, a.log)
				g.Go(func() error {
					err := prompt.Run(gctx)
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and print every change")
	cmd.Flags().StringVar(&endpoint, "push-endpoint", "", "offer to register this Web Push endpoint")
	cmd.Flags().StringVar(&p256dh, "push-p256dh", "", "browser public key of the endpoint")
	cmd.Flags().StringVar(&authKey, "push-auth", "", "auth secret of the endpoint")
	cmd.Flags().DurationVar(&delay, "prompt-delay", realtime.DefaultPromptDelay, "wait before asking for push permission")
	return cmd
}

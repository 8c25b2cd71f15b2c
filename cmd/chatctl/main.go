// Command chatctl is a terminal client for the listing messaging service.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/auth"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/logger"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/remote"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the connection shared by every subcommand.
type app struct {
	v      *viper.Viper
	conn   *grpc.ClientConn
	client *remote.Client
	user   string
	log    zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:          "chatctl",
		Short:        "Talk to buyers and sellers from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.conn != nil {
				return a.conn.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("addr", "localhost:50051", "server address")
	flags.String("token", "", "bearer token (env CHATCTL_TOKEN)")
	flags.Bool("tls", false, "connect with TLS")
	flags.String("log-env", "production", "development for console logs")
	_ = a.v.BindPFlags(flags)
	a.v.SetEnvPrefix("chatctl")
	a.v.AutomaticEnv()

	root.AddCommand(
		newSendCmd(a),
		newInboxCmd(a),
		newOpenCmd(a),
		newCountsCmd(a),
	)
	return root
}

func (a *app) connect() error {
	token := a.v.GetString("token")
	if token == "" {
		return errors.New("a token is required (--token or CHATCTL_TOKEN)")
	}
	user, err := tokenUser(token)
	if err != nil {
		return err
	}

	creds := insecure.NewCredentials()
	if a.v.GetBool("tls") {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	conn, err := grpc.NewClient(a.v.GetString("addr"), grpc.WithTransportCredentials(creds))
	if err != nil {
		return fmt.Errorf("dial %s: %w", a.v.GetString("addr"), err)
	}

	a.log = logger.New(a.v.GetString("log-env"), os.Stderr).Level(zerolog.WarnLevel)
	a.conn = conn
	a.user = user
	a.client = remote.New(conn, token, a.log)
	return nil
}

// tokenUser reads the user id from the token without verifying it; the
// server does the verification.
func tokenUser(token string) (string, error) {
	claims := &auth.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	user := normalize.ID(claims.UserID)
	if user == "" {
		return "", auth.ErrNoUser
	}
	return user, nil
}

// interruptible returns a context cancelled on Ctrl-C.
func interruptible(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

// Command ibtws-cli is a small demonstration client for pkg/ibc: it dials a
// TWS/IB Gateway socket, prints the negotiated server version and managed
// accounts, and can stream top-of-book quotes for a symbol.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fourbytes/ibtws-go/pkg/ibc"
	"github.com/fourbytes/ibtws-go/pkg/ibccred"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

var (
	addr     string
	clientID int32
	verbose  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ibtws-cli",
		Short: "Demonstration client for the ibtws-go wire protocol library",
	}
	root.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:7497", "TWS/Gateway host:port")
	root.PersistentFlags().Int32Var(&clientID, "client-id", 0, "client id to register with StartApi")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newConnectCmd(), newWatchCmd(), newAuthCmd(), newCredCmd())
	return root
}

func newLogger() ibc.Logger {
	if !verbose {
		return nil
	}
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	return ibc.NewLogrusLogger(l)
}

func dial() (*ibc.Client, error) {
	opts := []ibc.Option{ibc.WithClientID(clientID)}
	if l := newLogger(); l != nil {
		opts = append(opts, ibc.WithLogger(l))
	}
	return ibc.Dial(ibc.NewConfig(addr, opts...))
}

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect, print the negotiated server version and accounts, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()
			fmt.Printf("server version: %d\n", c.ServerVersion())
			fmt.Printf("accounts: %v\n", c.Accounts())
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	var (
		exchange string
		currency string
		secType  string
	)
	cmd := &cobra.Command{
		Use:   "watch <symbol>",
		Short: "Stream top-of-book ticks for a symbol until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()

			contract := twsmsg.Contract{
				Symbol:   args[0],
				SecType:  secType,
				Exchange: exchange,
				Currency: currency,
			}
			ch, reqID, err := c.ReqMktData(contract, "", false, false)
			if err != nil {
				return fmt.Errorf("req mkt data: %w", err)
			}
			defer c.CancelMktData(reqID)

			for resp := range ch {
				switch t := resp.(type) {
				case *twsmsg.TickPriceMsg:
					fmt.Printf("tick %d price=%.4f size=%d\n", t.TickType, t.Price, t.Size)
				case *twsmsg.TickSizeMsg:
					fmt.Printf("tick %d size=%d\n", t.TickType, t.Size)
				default:
					fmt.Printf("%T: %+v\n", t, t)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exchange, "exchange", "SMART", "routing exchange")
	cmd.Flags().StringVar(&currency, "currency", "USD", "contract currency")
	cmd.Flags().StringVar(&secType, "sec-type", "STK", "security type")
	return cmd
}

func newAuthCmd() *cobra.Command {
	var (
		credFile   string
		passphrase string
		apiName    string
		apiVersion string
	)
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Run the extra-auth VerifyAndAuth handshake using a cached secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := ibccred.Load(credFile, passphrase)
			if err != nil {
				return fmt.Errorf("load cached secret: %w", err)
			}

			opts := []ibc.Option{ibc.WithClientID(clientID), ibc.WithExtraAuth(true)}
			if l := newLogger(); l != nil {
				opts = append(opts, ibc.WithLogger(l))
			}
			c, err := ibc.Dial(ibc.NewConfig(addr, opts...))
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.VerifyAndAuth(context.Background(), apiName, apiVersion, secret); err != nil {
				return fmt.Errorf("verify and auth: %w", err)
			}
			fmt.Println("verify and auth succeeded")
			return nil
		},
	}
	cmd.Flags().StringVar(&credFile, "cred-file", "", "path to a secret saved with 'ibtws-cli cred save'")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase protecting --cred-file")
	cmd.Flags().StringVar(&apiName, "api-name", "", "extra-auth API name issued out of band")
	cmd.Flags().StringVar(&apiVersion, "api-version", "1.0", "extra-auth API version")
	cmd.MarkFlagRequired("cred-file")
	cmd.MarkFlagRequired("passphrase")
	cmd.MarkFlagRequired("api-name")
	return cmd
}

func newCredCmd() *cobra.Command {
	cred := &cobra.Command{
		Use:   "cred",
		Short: "Manage the locally cached extra-auth secret",
	}
	cred.AddCommand(newCredSaveCmd())
	return cred
}

func newCredSaveCmd() *cobra.Command {
	var (
		credFile   string
		passphrase string
	)
	cmd := &cobra.Command{
		Use:   "save <secret-base64>",
		Short: "Encrypt and save the extra-auth secret key to --cred-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ibccred.Save(credFile, passphrase, args[0])
		},
	}
	cmd.Flags().StringVar(&credFile, "cred-file", "", "path to write the encrypted secret")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase to encrypt the secret with")
	cmd.MarkFlagRequired("cred-file")
	cmd.MarkFlagRequired("passphrase")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"tokenregistry/internal/platform/config"
)

// apiAudience is the aud claim of every caller token.
const apiAudience = "tokenregistry-api"

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "tokenregistry",
		Short: "Lockable, attachable token registry",
		Long: `tokenregistry hosts non-fungible token registries with time-bounded
transfer locks and master/slave attachment across registries. Lock expiry is
measured in blocks of a logical chain advanced by the server.

Every setting is read from TOKENREG_* environment variables; flags override them.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("jwt-signing-key", "", "HMAC key for caller tokens")
	_ = v.BindPFlag("server.log_level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("server.jwt_signing_key", root.PersistentFlags().Lookup("jwt-signing-key"))

	root.AddCommand(newServeCmd(v), newTokenCmd(v))
	return root
}

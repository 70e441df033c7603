package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sharedkit/pkg/hashing"
)

func newHashCmd(a *app) *cobra.Command {
	var (
		alg        string
		iterations int
		cost       int
	)

	cmd := &cobra.Command{
		Use:   "hash <password>",
		Short: "Hash a password with PBKDF2 or bcrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var h hashing.Hasher
			switch alg {
			case "pbkdf2":
				if iterations == 0 {
					iterations = a.settings.PBKDF2Iterations
				}
				h = hashing.NewPBKDF2(iterations)
			case "bcrypt":
				if cost == 0 {
					cost = a.settings.BcryptCost
				}
				h = hashing.NewBcrypt(cost)
			default:
				return fmt.Errorf("%w: %q", hashing.ErrUnsupportedAlg, alg)
			}

			encoded, err := h.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "pbkdf2", "algorithm: pbkdf2 or bcrypt")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "PBKDF2 iterations (defaults to PBKDF2_ITERATIONS)")
	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (defaults to BCRYPT_COST)")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <password> <hash>",
		Short: "Check a password against a PBKDF2 or bcrypt hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := hashing.Verify(args[0], args[1])
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			case errors.Is(err, hashing.ErrMismatch):
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return errChecksFailed
			default:
				a.log.Debug("verify failed", "error", err)
				return err
			}
		},
	}
}

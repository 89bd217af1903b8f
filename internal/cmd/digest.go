package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"traygen/digest"
)

// NewDigestCmd creates and returns the digest subcommand for the traygen
// CLI.
func NewDigestCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "digest FILE",
		Short: "Compute cryptographic digests of a file",
		Long: `Compute the digest of FILE using one of five algorithms (md5, sha1,
sha256, sha384, sha512) or all of them.

The file is streamed in fixed-size chunks, so arbitrarily large files can
be digested without loading them into memory.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runDigest(args[0], algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256",
		`Digest algorithm (md5, sha1, sha256, sha384, sha512, or "all")`)

	return cmd
}

func runDigest(path, algorithm string) {
	var algs []digest.Algorithm
	if strings.EqualFold(algorithm, "all") {
		algs = digest.Algorithms()
	} else {
		alg, err := digest.Parse(algorithm)
		if err != nil {
			log.Fatalf("Unknown algorithm: %v", err)
		}
		algs = []digest.Algorithm{alg}
	}

	for _, alg := range algs {
		sum, err := digest.File(path, alg)
		if err != nil {
			log.Fatalf("Failed to digest %s: %v", path, err)
		}
		fmt.Printf("%-6s  %s\n", strings.ToUpper(string(alg)), sum)
	}
}

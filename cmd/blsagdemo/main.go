// Command blsagdemo signs and verifies a bLSAG ring signature over a freshly generated random ring, logging the key
// image and the verification result.
package main

import (
	"crypto/sha3"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/blsag-go/blsag"
	"github.com/blsag-go/blsag/hazmat/group"
)

var (
	messageFlag = &cli.StringFlag{
		Name:  "message",
		Usage: "the message to sign",
		Value: "Hello World!",
	}

	ringSizeFlag = &cli.IntFlag{
		Name:  "ring-size",
		Usage: "number of public keys in the ring",
		Value: 8,
	}

	signerFlag = &cli.IntFlag{
		Name:  "signer-index",
		Usage: "position of the real signer within the ring",
		Value: 5,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "emit structured JSON logs instead of console output",
	}
)

func main() {
	app := &cli.App{
		Name:   "blsagdemo",
		Usage:  "sign and verify a bLSAG ring signature",
		Flags:  []cli.Flag{messageFlag, ringSizeFlag, signerFlag, jsonFlag},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool(jsonFlag.Name))
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	n := c.Int(ringSizeFlag.Name)
	signerIndex := c.Int(signerFlag.Name)
	if signerIndex < 0 || signerIndex >= n {
		return fmt.Errorf("signer index %d out of range for ring size %d", signerIndex, n)
	}

	ring, signerKey, err := randomRing(n, signerIndex)
	if err != nil {
		return fmt.Errorf("generating ring: %w", err)
	}
	logger.Infow("generated ring", "size", n, "signer_index", signerIndex)

	msg := blsag.Hash(sha3.Sum256([]byte(c.String(messageFlag.Name))))

	sig, err := blsag.Sign(msg, ring, signerIndex, signerKey)
	if err != nil {
		return fmt.Errorf("signing: %w", err)
	}
	logger.Infow("produced signature", "key_image", fmt.Sprintf("%x", sig.KeyImage))

	ok := blsag.Verify(msg, ring, sig.KeyImage, sig.C0, sig.R)
	logger.Infow("verified signature", "accepted", ok)

	if !ok {
		return fmt.Errorf("signature failed to verify")
	}
	return nil
}

// randomRing draws n random public keys and substitutes a freshly generated key pair at signerIndex, returning the
// ring and the secret scalar for that position.
func randomRing(n, signerIndex int) (blsag.Ring, blsag.Scalar, error) {
	ring := make(blsag.Ring, n)
	var signerKey blsag.Scalar

	for i := range ring {
		k, err := group.RandomScalar()
		if err != nil {
			return nil, blsag.Scalar{}, err
		}
		K, ok := group.BaseMul(k)
		if !ok {
			return nil, blsag.Scalar{}, fmt.Errorf("generated non-canonical scalar")
		}

		ring[i] = K
		if i == signerIndex {
			signerKey = k
		}
	}
	return ring, signerKey, nil
}

func newLogger(jsonFormat bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if jsonFormat {
		cfg.Encoding = "json"
	}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

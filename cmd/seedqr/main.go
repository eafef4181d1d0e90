// Command seedqr is the local CLI front end for the wallet seed phrase QR
// protection core: encrypt, decrypt, split, reconstruct, validate, and
// render QR PNGs. One flag.NewFlagSet per verb, log.Fatalf on operator
// error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"seedqr/internal/artifact"
	"seedqr/internal/cryptocore"
	"seedqr/internal/dispatch"
	"seedqr/internal/qrcode"
	"seedqr/internal/secret"
	"seedqr/internal/seedphrase"
	"seedqr/internal/shamir"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encrypt":
		cmdEncrypt(os.Args[2:])
	case "decrypt":
		cmdDecrypt(os.Args[2:])
	case "split":
		cmdSplit(os.Args[2:])
	case "reconstruct":
		cmdReconstruct(os.Args[2:])
	case "validate-seed":
		cmdValidateSeed(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seedqr <encrypt|decrypt|split|reconstruct|validate-seed> [flags]")
}

func readLine(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}

func cmdEncrypt(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	phrase := fs.String("phrase", "", "seed phrase to encrypt (omit to prompt)")
	decoyPhrase := fs.String("decoy-phrase", "", "optional decoy seed phrase, enables layered encryption")
	out := fs.String("out", "envelope.png", "output QR PNG path")
	hint := fs.String("hint", "", "optional decoy hint text")
	fs.Parse(args)

	if *phrase == "" {
		*phrase = readLine("seed phrase: ")
	}
	password := readLine("password: ")

	var payload artifact.QRPayload
	var err error

	if *decoyPhrase != "" {
		decoyPassword := readLine("decoy password: ")
		var hintPtr *string
		if *hint != "" {
			hintPtr = hint
		}
		layered, lerr := cryptocore.EncryptWithDecoy(
			secret.NewText(*phrase), password,
			secret.NewText(*decoyPhrase), decoyPassword,
			hintPtr,
		)
		if lerr != nil {
			log.Fatalf("[encrypt] layered: %v", lerr)
		}
		payload, err = artifact.WrapLayered(layered)
	} else {
		env, eerr := cryptocore.Encrypt(secret.NewText(*phrase), password)
		if eerr != nil {
			log.Fatalf("[encrypt] %v", eerr)
		}
		payload, err = artifact.WrapEncrypted(env)
	}
	if err != nil {
		log.Fatalf("[encrypt] wrap: %v", err)
	}

	png, err := qrcode.EncodePNG(payload, 0)
	if err != nil {
		log.Fatalf("[encrypt] render: %v", err)
	}
	if err := os.WriteFile(*out, png, 0o600); err != nil {
		log.Fatalf("[encrypt] write %s: %v", *out, err)
	}
	log.Printf("[encrypt] wrote %s (%s)", *out, humanize.Bytes(uint64(len(png))))
}

func cmdDecrypt(args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	in := fs.String("in", "", "path to QR JSON envelope (not the PNG; scanning happens externally)")
	fs.Parse(args)
	if *in == "" {
		fmt.Fprintln(os.Stderr, "decrypt: -in is required")
		os.Exit(2)
	}

	password := readLine("password: ")
	res, err := dispatch.DecryptDispatch(dispatch.FileSource(*in), func() (string, error) { return password, nil })
	if err != nil {
		log.Fatalf("[decrypt] %v", err)
	}
	defer res.Plaintext.Zero()

	if res.IsReal {
		fmt.Println(res.Plaintext.String())
	} else {
		log.Printf("[decrypt] note: this password unlocked the decoy layer")
		fmt.Println(res.Plaintext.String())
	}
}

func cmdSplit(args []string) {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	phrase := fs.String("phrase", "", "seed phrase to split (omit to prompt)")
	threshold := fs.Int("threshold", 2, "shares required to reconstruct")
	total := fs.Int("total", 3, "total shares to produce")
	outDir := fs.String("out-dir", ".", "directory to write share QR PNGs into")
	fs.Parse(args)

	if *phrase == "" {
		*phrase = readLine("seed phrase: ")
	}

	shares, err := shamir.Split([]byte(*phrase), *threshold, *total)
	if err != nil {
		log.Fatalf("[split] %v", err)
	}
	log.Print("[split] " + shamir.Summary(shares))

	for _, s := range shares {
		payload, err := artifact.WrapShamir(s)
		if err != nil {
			log.Fatalf("[split] wrap share %d: %v", s.ShareID, err)
		}
		png, err := qrcode.EncodePNGLowDensity(payload, 0)
		if err != nil {
			log.Fatalf("[split] render share %d: %v", s.ShareID, err)
		}
		path := fmt.Sprintf("%s/share-%d-of-%d.png", *outDir, s.ShareID, s.TotalShares)
		if err := os.WriteFile(path, png, 0o600); err != nil {
			log.Fatalf("[split] write %s: %v", path, err)
		}
		log.Printf("[split] wrote %s", path)
	}
}

func cmdReconstruct(args []string) {
	fs := flag.NewFlagSet("reconstruct", flag.ExitOnError)
	fs.Parse(args)
	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "reconstruct: provide one or more share JSON file paths")
		os.Exit(2)
	}

	sources := make([]dispatch.Source, len(paths))
	for i, p := range paths {
		sources[i] = dispatch.FileSource(p)
	}

	plaintext, err := dispatch.ReconstructDispatch(sources, 0)
	if err != nil {
		log.Fatalf("[reconstruct] %v", err)
	}
	fmt.Println(string(plaintext))
}

func cmdValidateSeed(args []string) {
	fs := flag.NewFlagSet("validate-seed", flag.ExitOnError)
	phrase := fs.String("phrase", "", "seed phrase to validate (omit to prompt)")
	fs.Parse(args)
	if *phrase == "" {
		*phrase = readLine("seed phrase: ")
	}

	v := seedphrase.New()
	res, err := v.Validate(*phrase)
	if err != nil {
		log.Fatalf("[validate-seed] %v", err)
	}

	fmt.Printf("word count: %d\n", res.WordCount)
	if res.NonstandardLen {
		fmt.Println("warning: nonstandard word count (expected 12/15/18/21/24)")
	}
	if len(res.UnknownWords) == 0 {
		fmt.Println("all words recognized")
		return
	}
	for _, w := range res.UnknownWords {
		suggestions := res.Suggestions[w]
		fmt.Printf("unknown word %q, did you mean: %s\n", w, strings.Join(suggestions, ", "))
	}
	os.Exit(1)
}

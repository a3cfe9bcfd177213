package names

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"bog/internal/crypto"
	"bog/internal/domain"
)

const (
	// RecordHeader tags a record as holding Ed25519 keys.
	RecordHeader = "#=Ed."

	publicLabel = "Public: "
	secretLabel = "SECRET: "

	// No record line comes close to this; it only bounds hostile input.
	maxRecordLine = 512
)

var (
	// ErrUnknownHeader is returned for a record that does not start with RecordHeader.
	ErrUnknownHeader = errors.New("unrecognized record header")

	// ErrMalformedRecord is returned for a missing, mislabeled or undecodable key line.
	ErrMalformedRecord = errors.New("malformed record")
)

type record struct {
	public    domain.PublicKey
	secret    domain.SecretKey
	hasSecret bool
}

func writeRecord(w io.Writer, rec record) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, RecordHeader)
	fmt.Fprintln(buf, publicLabel+base64.StdEncoding.EncodeToString(rec.public[:]))
	if rec.hasSecret {
		enc := base64.StdEncoding.EncodeToString(rec.secret[:])
		fmt.Fprintln(buf, secretLabel+enc)
	}
	return buf.Flush()
}

func readRecord(r io.Reader) (record, error) {
	var rec record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, maxRecordLine), maxRecordLine)

	lines := make([]string, 0, 3)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if len(lines) == 0 || lines[0] != RecordHeader {
		return rec, ErrUnknownHeader
	}
	if len(lines) < 2 || len(lines) > 3 {
		return rec, fmt.Errorf("%w: want 2 or 3 lines, got %d", ErrMalformedRecord, len(lines))
	}

	pub, err := decodeLine(lines[1], publicLabel, crypto.PublicKeySize)
	if err != nil {
		return rec, err
	}
	rec.public = domain.MustPublicKey(pub)

	if len(lines) == 3 {
		sec, err := decodeLine(lines[2], secretLabel, crypto.SecretKeySize)
		if err != nil {
			return rec, err
		}
		rec.secret = domain.MustSecretKey(sec)
		crypto.Wipe(sec)
		rec.hasSecret = true
	}
	return rec, nil
}

// decodeLine never echoes the line content, which may be secret.
func decodeLine(line, label string, size int) ([]byte, error) {
	field := strings.TrimSpace(label)
	enc, ok := strings.CutPrefix(line, label)
	if !ok {
		return nil, fmt.Errorf("%w: expected %q line", ErrMalformedRecord, field)
	}
	b, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not base64", ErrMalformedRecord, field)
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: %s want %d bytes, got %d", ErrMalformedRecord, field, size, len(b))
	}
	return b, nil
}

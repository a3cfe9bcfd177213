package store

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bog/internal/domain"
	"bog/internal/names"
)

// ErrUnknownName is returned by Lookup for a usename that was never enrolled.
var ErrUnknownName = errors.New("store: unknown usename")

// Enroll stores c's public record under cryptonames/<fingerprint> and points
// usenames/<u> at it. Enrolling an existing usename rebinds it. If the
// pointer cannot be written, a record created by this call is removed.
func (t *Tome) Enroll(u names.Usename, c names.Cryptoname) error {
	if u.IsZero() {
		return errors.New("store: enroll: empty usename")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var rec bytes.Buffer
	if err := c.Write(&rec); err != nil {
		return err
	}
	fp := c.Fingerprint()
	recPath := t.cryptonamePath(fp)
	_, statErr := os.Stat(recPath)
	created := errors.Is(statErr, os.ErrNotExist)

	if err := writeFile(recPath, rec.Bytes(), recordMode); err != nil {
		return fmt.Errorf("store: enroll %s: %w", fp, err)
	}
	if err := writeFile(t.usenamePath(u), []byte(fp.String()+"\n"), recordMode); err != nil {
		// other usenames may already point at a record we did not create
		if created {
			if rmErr := os.Remove(recPath); rmErr != nil {
				t.log.Warn("remove orphaned record failed", "path", recPath, "err", rmErr)
			}
		}
		return fmt.Errorf("store: enroll %q: %w", u.String(), err)
	}
	t.log.Info("enrolled", "usename", u.String(), "fingerprint", fp)
	return nil
}

// Lookup returns the cryptoname enrolled under u.
func (t *Tome) Lookup(u names.Usename) (names.Cryptoname, error) {
	if u.IsZero() {
		return names.Cryptoname{}, ErrUnknownName
	}
	ptr, err := readFile(t.usenamePath(u))
	if err != nil {
		return names.Cryptoname{}, err
	}
	if ptr == nil {
		return names.Cryptoname{}, fmt.Errorf("%w: %q", ErrUnknownName, u.String())
	}
	fp := domain.Fingerprint(strings.TrimSpace(string(ptr)))
	if fp == "" || strings.ContainsAny(string(fp), `/\.`) {
		return names.Cryptoname{}, fmt.Errorf("%w: bad pointer for %q", names.ErrMalformedRecord, u.String())
	}

	f, err := os.Open(t.cryptonamePath(fp))
	if errors.Is(err, os.ErrNotExist) {
		return names.Cryptoname{}, fmt.Errorf("%w: %q points at missing %s", ErrUnknownName, u.String(), fp)
	}
	if err != nil {
		return names.Cryptoname{}, err
	}
	defer f.Close()

	c, err := names.ReadCryptoname(f)
	if err != nil {
		return names.Cryptoname{}, fmt.Errorf("read cryptoname %s: %w", fp, err)
	}
	if c.Fingerprint() != fp {
		return names.Cryptoname{}, fmt.Errorf("%w: %s holds a different key", names.ErrMalformedRecord, fp)
	}
	return c, nil
}

// Usenames lists every enrolled usename, sorted.
func (t *Tome) Usenames() ([]names.Usename, error) {
	entries, err := os.ReadDir(t.UsenamesPath())
	if err != nil {
		return nil, err
	}
	out := make([]names.Usename, 0, len(entries))
	for _, e := range entries {
		// temp files start with a dot, which the encoding never produces
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(e.Name())
		if err != nil {
			t.log.Debug("skipping foreign file", "name", e.Name())
			continue
		}
		if u, ok := names.NewUsename(raw); ok {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i].Runes(), out[j].Runes()) < 0 })
	return out, nil
}

func (t *Tome) usenamePath(u names.Usename) string {
	return filepath.Join(t.UsenamesPath(), base64.RawURLEncoding.EncodeToString(u.Runes()))
}

func (t *Tome) cryptonamePath(fp domain.Fingerprint) string {
	return filepath.Join(t.CryptonamesPath(), fp.String())
}

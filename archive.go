package aviary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"

	"github.com/aviary-tools/aviary/codec"
	"github.com/aviary-tools/aviary/records"
)

// Archive is an opened export zip. It is safe for concurrent use: members
// are read through independent readers and decoding is pure.
type Archive struct {
	zr     *zip.Reader
	closer io.Closer
	codec  codec.Codec
}

// Option configures an Archive.
type Option func(*Archive)

// WithCodec selects the document codec used by the typed accessors.
// The default is codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(a *Archive) { a.codec = c }
}

// Open opens an export zip on disk.
func Open(path string, opts ...Option) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	a, err := NewReader(f, fi.Size(), opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.closer = f
	return a, nil
}

// NewReader opens an export zip from an arbitrary ReaderAt, for callers
// that hold the archive in memory or behind a network fetch.
func NewReader(r io.ReaderAt, size int64, opts ...Option) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	a := &Archive{zr: zr, codec: codec.Default}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Close releases the underlying file, if Open provided one.
func (a *Archive) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// ReadPart reads data/<name>.js and strips the JavaScript assignment
// prefix, returning the raw JSON payload.
func (a *Archive) ReadPart(name string) ([]byte, error) {
	member := "data/" + name + ".js"
	f, err := a.zr.Open(member)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, member)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", member, err)
	}
	return stripAssignment(name, buf)
}

// stripAssignment removes the writer's JavaScript prefix. Almost every
// member uses "window.YTD.<key>.part0 = "; the manifest is the exception.
func stripAssignment(name string, data []byte) ([]byte, error) {
	var prefix []byte
	if name == "manifest" {
		prefix = []byte("window.__THAR_CONFIG = ")
	} else {
		key := strings.ReplaceAll(name, "-", "_")
		prefix = []byte("window.YTD." + key + ".part0 = ")
	}
	if !bytes.HasPrefix(data, prefix) {
		return nil, fmt.Errorf("%w: data/%s.js", ErrBadPrefix, name)
	}
	return data[len(prefix):], nil
}

// Preload reads several members concurrently and returns their raw JSON
// payloads keyed by part name. One failed member fails the whole call.
func (a *Archive) Preload(ctx context.Context, names ...string) (map[string][]byte, error) {
	var mu sync.Mutex
	out := make(map[string][]byte, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := a.ReadPart(name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = raw
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodePart[T any](a *Archive, name string) ([]T, error) {
	raw, err := a.ReadPart(name)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := a.codec.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

// Manifest decodes data/manifest.js, the archive's table of contents.
func (a *Archive) Manifest() (*records.Manifest, error) {
	raw, err := a.ReadPart("manifest")
	if err != nil {
		return nil, err
	}
	var m records.Manifest
	if err := a.codec.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Account decodes data/account.js.
func (a *Archive) Account() ([]records.AccountObject, error) {
	return decodePart[records.AccountObject](a, "account")
}

// AccountTimezone decodes data/account-timezone.js.
func (a *Archive) AccountTimezone() ([]records.AccountTimezoneObject, error) {
	return decodePart[records.AccountTimezoneObject](a, "account-timezone")
}

// Tweets decodes data/tweets.js.
func (a *Archive) Tweets() ([]records.TweetObject, error) {
	return decodePart[records.TweetObject](a, "tweets")
}

// Likes decodes data/like.js.
func (a *Archive) Likes() ([]records.LikeObject, error) {
	return decodePart[records.LikeObject](a, "like")
}

// Blocks decodes data/block.js.
func (a *Archive) Blocks() ([]records.BlockingObject, error) {
	return decodePart[records.BlockingObject](a, "block")
}

// Mutes decodes data/mute.js.
func (a *Archive) Mutes() ([]records.MutingObject, error) {
	return decodePart[records.MutingObject](a, "mute")
}

// Followers decodes data/follower.js.
func (a *Archive) Followers() ([]records.FollowerObject, error) {
	return decodePart[records.FollowerObject](a, "follower")
}

// Following decodes data/following.js.
func (a *Archive) Following() ([]records.FollowingObject, error) {
	return decodePart[records.FollowingObject](a, "following")
}

// Verified decodes data/verified.js.
func (a *Archive) Verified() ([]records.VerifiedObject, error) {
	return decodePart[records.VerifiedObject](a, "verified")
}

// Profile decodes data/profile.js.
func (a *Archive) Profile() ([]records.ProfileObject, error) {
	return decodePart[records.ProfileObject](a, "profile")
}

// ScreenNameChanges decodes data/screen-name-change.js.
func (a *Archive) ScreenNameChanges() ([]records.ScreenNameChangeObject, error) {
	return decodePart[records.ScreenNameChangeObject](a, "screen-name-change")
}

// EmailAddressChanges decodes data/email-address-change.js.
func (a *Archive) EmailAddressChanges() ([]records.EmailAddressChangeObject, error) {
	return decodePart[records.EmailAddressChangeObject](a, "email-address-change")
}

// DeviceTokens decodes data/device-token.js.
func (a *Archive) DeviceTokens() ([]records.DeviceTokenObject, error) {
	return decodePart[records.DeviceTokenObject](a, "device-token")
}

// NiDevices decodes data/ni-devices.js.
func (a *Archive) NiDevices() ([]records.NiDeviceResponseObject, error) {
	return decodePart[records.NiDeviceResponseObject](a, "ni-devices")
}

// AdImpressions decodes data/ad-impressions.js.
func (a *Archive) AdImpressions() ([]records.AdObject, error) {
	return decodePart[records.AdObject](a, "ad-impressions")
}

// DirectMessages decodes data/direct-messages.js.
func (a *Archive) DirectMessages() ([]records.DMConversationObject, error) {
	return decodePart[records.DMConversationObject](a, "direct-messages")
}

// DirectMessageHeaders decodes data/direct-message-headers.js.
func (a *Archive) DirectMessageHeaders() ([]records.DMHeaderObject, error) {
	return decodePart[records.DMHeaderObject](a, "direct-message-headers")
}

// GroupDirectMessages decodes data/direct-messages-group.js.
func (a *Archive) GroupDirectMessages() ([]records.GroupConversationObject, error) {
	return decodePart[records.GroupConversationObject](a, "direct-messages-group")
}

// GroupDirectMessageHeaders decodes data/direct-message-group-headers.js.
func (a *Archive) GroupDirectMessageHeaders() ([]records.GroupHeaderObject, error) {
	return decodePart[records.GroupHeaderObject](a, "direct-message-group-headers")
}

package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestConfig_applyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty config gets defaults", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		cfg.applyDefaults()

		require.Equal(t, DefaultRegion, cfg.Region)
		require.Equal(t, int64(DefaultMaxObjectSize), cfg.MaxObjectSize)
	})

	t.Run("existing values preserved", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Region: "eu-west-1", MaxObjectSize: 1 << 20}
		cfg.applyDefaults()

		require.Equal(t, "eu-west-1", cfg.Region)
		require.Equal(t, int64(1<<20), cfg.MaxObjectSize)
	})
}

func TestConfig_validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid without bucket", cfg: Config{AccessKey: "a", SecretKey: "s"}},
		{name: "valid with bucket", cfg: Config{Bucket: "b", AccessKey: "a", SecretKey: "s"}},
		{name: "missing access key", cfg: Config{SecretKey: "s"}, wantErr: true},
		{name: "missing secret key", cfg: Config{AccessKey: "a"}, wantErr: true},
		{name: "negative size", cfg: Config{AccessKey: "a", SecretKey: "s", MaxObjectSize: -1}, wantErr: true},
		{name: "empty config", cfg: Config{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	require.False(t, Config{}.Enabled())
	require.False(t, Config{AccessKey: "a"}.Enabled())
	require.True(t, Config{AccessKey: "a", SecretKey: "s"}.Enabled())
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	s, err := New(Config{AccessKey: "a", SecretKey: "s", Endpoint: "http://localhost:9000", PathStyle: true})
	require.NoError(t, err)
	require.Equal(t, DefaultRegion, s.cfg.Region)
}

func TestS3Storage_FetchWithoutBucket(t *testing.T) {
	t.Parallel()

	s, err := New(Config{AccessKey: "a", SecretKey: "s"})
	require.NoError(t, err)

	_, err = s.Fetch(context.Background(), "", "bg.png")
	require.ErrorIs(t, err, ErrMissingBucket)
}

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		fallback error
		want     error
	}{
		{
			name:     "no such key code",
			err:      &smithy.GenericAPIError{Code: "NoSuchKey"},
			fallback: ErrFetchFailed,
			want:     ErrNotFound,
		},
		{
			name:     "access denied code",
			err:      &smithy.GenericAPIError{Code: "AccessDenied"},
			fallback: ErrFetchFailed,
			want:     ErrAccessDenied,
		},
		{
			name:     "typed no such key",
			err:      &types.NoSuchKey{},
			fallback: ErrFetchFailed,
			want:     ErrNotFound,
		},
		{
			name:     "unknown error uses fallback",
			err:      errors.New("boom"),
			fallback: ErrFetchFailed,
			want:     ErrFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, wrapS3Error(tt.err, tt.fallback), tt.want)
		})
	}
}

func TestReadLimited(t *testing.T) {
	t.Parallel()

	data, err := readLimited(strings.NewReader("abcd"), 4)
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), data)

	_, err = readLimited(strings.NewReader("abcde"), 4)
	require.ErrorIs(t, err, ErrObjectTooLarge)
}

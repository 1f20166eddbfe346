package jwtx_test

import (
	"testing"
	"time"

	"github.com/BishowDevkota/trekking-company/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const subject = "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"

func newPair(t *testing.T, secret string, opts jwtx.VerifyOptions) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()

	s, err := jwtx.NewSignerHS256([]byte(secret))
	require.NoError(t, err)
	v, err := jwtx.NewVerifierHS256([]byte(secret), opts)
	require.NoError(t, err)
	return s, v
}

func TestHS256RoundTrip(t *testing.T) {
	signer, verifier := newPair(t, "access-secret", jwtx.VerifyOptions{Issuer: "trekd", Use: jwtx.UseAccess})
	require.Equal(t, "HS256", signer.Alg())

	tok, err := signer.Sign(jwtx.NewAccessClaims(subject, "admin", "admin", "trekd", time.Minute, time.Now()))
	require.NoError(t, err)

	claims, err := verifier.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, subject, claims.Subject)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)
}

func TestHS256Rejections(t *testing.T) {
	signer, verifier := newPair(t, "access-secret", jwtx.VerifyOptions{Issuer: "trekd", Use: jwtx.UseAccess})
	otherSigner, _ := newPair(t, "refresh-secret", jwtx.VerifyOptions{})

	tests := []struct {
		name  string
		token func() string
		want  error
	}{
		{
			name: "wrong secret",
			token: func() string {
				tok, err := otherSigner.Sign(jwtx.NewAccessClaims(subject, "admin", "admin", "trekd", time.Minute, time.Now()))
				require.NoError(t, err)
				return tok
			},
			want: jwtx.ErrInvalidSig,
		},
		{
			name: "expired",
			token: func() string {
				tok, err := signer.Sign(jwtx.NewAccessClaims(subject, "admin", "admin", "trekd", 15*time.Minute, time.Now().Add(-16*time.Minute)))
				require.NoError(t, err)
				return tok
			},
			want: jwtx.ErrExpired,
		},
		{
			name: "wrong class",
			token: func() string {
				tok, err := signer.Sign(jwtx.NewRefreshClaims(subject, "trekd", time.Hour, time.Now()))
				require.NoError(t, err)
				return tok
			},
			want: jwtx.ErrWrongUse,
		},
		{
			name: "wrong issuer",
			token: func() string {
				tok, err := signer.Sign(jwtx.NewAccessClaims(subject, "admin", "admin", "elsewhere", time.Minute, time.Now()))
				require.NoError(t, err)
				return tok
			},
			want: jwtx.ErrIssuer,
		},
		{
			name: "different hmac size",
			token: func() string {
				c := jwtx.NewAccessClaims(subject, "admin", "admin", "trekd", time.Minute, time.Now())
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString([]byte("access-secret"))
				require.NoError(t, err)
				return tok
			},
			want: jwtx.ErrInvalidSig,
		},
		{
			name:  "garbage",
			token: func() string { return "not.a.jwt" },
			want:  jwtx.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHS256MissingExpiry(t *testing.T) {
	signer, verifier := newPair(t, "access-secret", jwtx.VerifyOptions{})

	tok, err := signer.Sign(jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}})
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
}

func TestHS256EmptySecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)

	_, err = jwtx.NewVerifierHS256([]byte{}, jwtx.VerifyOptions{})
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)
}

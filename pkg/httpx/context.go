package httpx

import (
	"context"

	"github.com/BishowDevkota/trekking-company/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyAdminID ctxKey = "admin_id"
	CtxKeyRole    ctxKey = "role"
	CtxKeyClaims  ctxKey = "claims"
)

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAdminID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// AdminID returns the subject of the verified access token, or "".
func AdminID(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyAdminID).(string)
	return v
}

// ClaimsFromContext returns the verified access token claims.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

func roleFromCtx(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyRole).(string)
	return v
}

package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/ddrmem/api/apiwindowv1"
	"github.com/fulldump/ddrmem/service"
)

func Build(s service.Servicer, version, apiKey, apiSecret string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		Authenticate(apiKey, apiSecret),
	)

	apiwindowv1.BuildV1Window(v1, s).
		WithInterceptors(
			injectServicer(s),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apiwindowv1.SetServicer(ctx, s))
		}
	}
}
